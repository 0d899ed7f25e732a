package config

import (
	"os"
	"strconv"
)

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// JWTSecret is read lazily so godotenv has already loaded by first use.
// The auth middleware and the login handler must use the same key.
func JWTSecret() []byte {
	return []byte(GetEnv("JWT_SECRET", "dev-secret-change-me"))
}

// WorkStart is the check-in cutoff after which attendance counts as late,
// format "15:04".
func WorkStart() string {
	return GetEnv("WORK_START", "09:30")
}
