package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	Env               string
	SurrealDBURL      string
	SurrealDBNS       string
	SurrealDBDatabase string
	SurrealDBUser     string
	SurrealDBPass     string
}

var AppConfig *Config

// Load reads the environment (plus an optional .env file) into AppConfig.
// Database settings are optional: the server still starts and serves the
// root and health endpoints when the store is unreachable.
func Load() {
	_ = godotenv.Load()

	AppConfig = &Config{
		Port:              GetEnv("PORT", "8000"),
		Env:               GetEnv("ENV", "development"),
		SurrealDBURL:      GetEnv("SURREALDB_URL", "ws://localhost:8001/rpc"),
		SurrealDBNS:       GetEnv("SURREALDB_NAMESPACE", "learnmate"),
		SurrealDBDatabase: GetEnv("SURREALDB_DATABASE", "learnmate"),
		SurrealDBUser:     GetEnv("SURREALDB_USER", ""),
		SurrealDBPass:     GetEnv("SURREALDB_PASS", ""),
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
