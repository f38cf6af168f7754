package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. An optional
// .env file is merged first without overriding variables already exported
// by the process.
//
// Recognized variables:
//
//	ADDRESS         HTTP bind address (e.g. ":8080")
//	DATABASE_DSN    PostgreSQL DSN
//	JWT_SECRET      HMAC secret for signing tokens
//	TOKEN_VALIDITY  bearer token lifetime, Go duration syntax (e.g. "168h")
//	APP_ENV         deployment environment name
func parseEnv(config *Config) {
	// Missing .env is fine; exported variables still apply.
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("JWT_SECRET"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("TOKEN_VALIDITY"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
	if v, ok := os.LookupEnv("APP_ENV"); ok {
		config.AppEnv = v
	}
}
