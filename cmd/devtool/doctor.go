package main

import "fmt"

type DoctorCommand struct{}

func (c *DoctorCommand) Name() string {
	return "doctor"
}

func (c *DoctorCommand) Description() string {
	return "Diagnose environment issues (db + server)"
}

func (c *DoctorCommand) Run(args []string) error {
	PrintHeader("Running Doctor...")

	hasError := false

	dbCmd := &WaitForDBCommand{}
	if err := dbCmd.Run([]string{"-retries", "1"}); err != nil {
		PrintError("Database check failed: %v", err)
		hasError = true
	} else {
		PrintSuccess("Database OK")
	}

	healthCmd := &HealthCheckCommand{}
	if err := healthCmd.Run(args); err != nil {
		PrintError("Server check failed: %v", err)
		hasError = true
	} else {
		PrintSuccess("Server OK")
	}

	if hasError {
		return fmt.Errorf("doctor found issues")
	}

	PrintSuccess("All systems operational!")
	return nil
}
