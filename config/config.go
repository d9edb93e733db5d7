package config

import (
	"os"
	"strconv"
)

// GetEnv membaca environment variable dengan nilai default.
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// GetEnvAsInt membaca environment variable sebagai integer; nilai kosong atau
// tidak valid jatuh ke default.
func GetEnvAsInt(key string, fallback int) int {
	if value, err := strconv.Atoi(GetEnv(key, "")); err == nil {
		return value
	}
	return fallback
}
