package helpers

import (
	"os"
	"strconv"
)

// GetEnvOrDefault returns the value of the environment variable or a default value
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// StringToInt converts a string to an int, returning 0 when the string is not a number
func StringToInt(s string) int {
	value, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return value
}
