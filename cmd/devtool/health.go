package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

const slowResponseThreshold = time.Second

// healthProbes are checked in order; the first failure stops the check.
var healthProbes = []string{"/healthz", "/readyz", "/api/scenarios"}

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Check a running server (liveness, readiness, content API)"
}

func (c *HealthCheckCommand) Run(args []string) error {
	baseURL := os.Getenv(envAPIURL)
	if len(args) > 0 {
		baseURL = args[0]
	}
	if baseURL == "" {
		baseURL = defaultAPIURL
	}

	PrintHeader(fmt.Sprintf("Health Check (%s)", baseURL))

	client := &http.Client{Timeout: 5 * time.Second}
	for _, path := range healthProbes {
		duration, err := checkHealth(client, baseURL, path)
		if err != nil {
			PrintError("%s failed: %v", path, err)
			return err
		}
		if duration > slowResponseThreshold {
			PrintWarning("%s slow response time (%v)", path, duration)
		} else {
			PrintSuccess("%s ok (%v)", path, duration)
		}
	}
	return nil
}

func checkHealth(client *http.Client, baseURL, path string) (time.Duration, error) {
	url := strings.TrimRight(baseURL, "/") + path

	start := time.Now()
	resp, err := client.Get(url)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	duration := time.Since(start)

	if resp.StatusCode != http.StatusOK {
		return duration, fmt.Errorf("status code %d", resp.StatusCode)
	}
	return duration, nil
}
