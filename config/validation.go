package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded configuration is usable before the
// server starts. Only hard requirements fail validation; optional pieces
// (redis, S3) are checked where they are wired up.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.JWTSecret == "" {
		errors = append(errors, "JWT_SECRET must be set")
	}
	if cfg.DBDriver != "postgres" && cfg.DBDriver != "sqlite" {
		errors = append(errors, fmt.Sprintf("unsupported DB_DRIVER %q", cfg.DBDriver))
	}
	if cfg.ServerPort == "" {
		errors = append(errors, "SERVER_PORT must not be empty")
	}
	if cfg.S3BucketName != "" && cfg.AWSRegion == "" {
		errors = append(errors, "AWS_REGION is required when S3_BUCKET_NAME is set")
	}

	if len(errors) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errors, "; "))
	}
	return nil
}
