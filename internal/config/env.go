package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from environment variables. A .env
// file in the working directory is loaded first; a missing file is not an
// error (the common case on operator machines).
//
// Variables:
//
//	ADMIN_API_URL         base URL of the admin API
//	ADMIN_CREDENTIALS_DB  path of the local credentials database
//	ADMIN_LOG_LEVEL       debug | info | warn | error
//	ADMIN_REQUEST_TIMEOUT, ADMIN_REFRESH_BUFFER, ADMIN_IDLE_THRESHOLD
//	    durations in Go syntax ("15s", "2m"); invalid values are ignored
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ADMIN_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("ADMIN_CREDENTIALS_DB"); v != "" {
		cfg.CredentialsDB = v
	}
	if v := os.Getenv("ADMIN_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("ADMIN_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("ADMIN_REFRESH_BUFFER"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RefreshBuffer = d
		}
	}
	if v := os.Getenv("ADMIN_IDLE_THRESHOLD"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.IdleThreshold = d
		}
	}
}
