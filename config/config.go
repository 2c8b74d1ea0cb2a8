package config

import (
	"os"
)

type Config struct {
	ServerPort  string
	DatabaseURL string

	// ProjectPrefix and ProjectSuffix drive the internal id the
	// repository computes at save time; both must be set for the
	// computation to happen. The suffix must be an integer, other
	// values are ignored.
	ProjectPrefix string
	ProjectSuffix string
}

func Load() *Config {
	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		ProjectPrefix: getEnv("PROJECT_PREFIX", ""),
		ProjectSuffix: getEnv("PROJECT_SUFFIX", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
