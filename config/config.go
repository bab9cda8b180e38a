package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv reads a .env file if one exists. The file is optional; without it
// the process environment is used as-is.
func LoadEnv() {
	_ = godotenv.Load()
}

func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
