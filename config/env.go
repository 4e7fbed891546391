package config

import "os"

// GetEnv reads a variable from the process environment. The .env file is
// loaded once in main via godotenv, so a plain lookup is enough here.
func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvOrDefault reads a variable and falls back to a default, warning so
// misconfigured deployments are visible in the logs.
func GetEnvOrDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		if Logger != nil {
			Logger.Warn(key + " not set, using default: " + fallback)
		}
		return fallback
	}
	return value
}
