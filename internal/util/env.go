package util

import (
	"os"
)

// GetEnvWithDefault returns the value of an environment variable or a default
// value if the variable is unset or empty.
func GetEnvWithDefault(envVar, defaultValue string) string {
	if value := os.Getenv(envVar); value != "" {
		return value
	}
	return defaultValue
}
