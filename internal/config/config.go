package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	JWTSecret   string
	Port        string
	MetricsPort string
	Timezone    string
}

// Load reads configuration from the environment, with a .env file as an
// optional local override. JWT_SECRET has no default on purpose.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		DatabaseURL: getEnv("DATABASE_URL", "data/fitledger.db"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		Port:        getEnv("PORT", "8080"),
		MetricsPort: getEnv("METRICS_PORT", "9091"),
		Timezone:    getEnv("TZ", "UTC"),
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET must be set")
	}
	return cfg, nil
}

func getEnv(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
