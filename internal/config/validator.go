package config

import (
	"fmt"
	"slices"
)

// Validate checks values that would make the server fail at startup
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT value: %d out of range", c.Port)
	}
	if c.GetDBConnString() == "" {
		return fmt.Errorf("database connection is not configured")
	}
	if c.StaticDir == "" {
		return fmt.Errorf("STATIC_DIR must not be empty")
	}
	return nil
}

// ValidateWithWarnings validates the configuration and returns warnings
// for non-critical issues (like using default values)
func (c *Config) ValidateWithWarnings() ([]string, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var warnings []string

	if c.IsProduction() && c.SecretKey == InsecureDefaultSecretKey {
		warnings = append(warnings, WarnMsgInsecureSecretKey)
	}

	if c.DBPassword == ExampleDBPassword {
		warnings = append(warnings, WarnMsgExampleDBPassword)
	}

	if c.IsProduction() && slices.Contains(c.CORSAllowedOrigins, "*") {
		warnings = append(warnings, WarnMsgWildcardOrigin)
	}

	return warnings, nil
}
