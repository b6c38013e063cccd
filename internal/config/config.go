package config

import "time"

// Config holds runtime settings for the admin console.
//
// Fields:
//   - APIBaseURL: root URL of the platform's admin API.
//   - RequestTimeout: per-request HTTP timeout.
//   - RefreshBuffer: how long before token expiry the proactive refresh fires.
//   - IdleThreshold: inactivity gap worth noting in logs.
//   - CredentialsDB: path of the local SQLite credentials database.
//   - LogLevel: debug | info | warn | error.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	RefreshBuffer  time.Duration
	IdleThreshold  time.Duration
	CredentialsDB  string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 15 * time.Second
	c.RefreshBuffer = 2 * time.Minute
	c.IdleThreshold = 15 * time.Minute
	c.CredentialsDB = "admin.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file if present), a JSON config
// file (if provided) and command-line flags. Later sources take precedence
// over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
