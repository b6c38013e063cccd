package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/tmorris/bizlink-admin/internal/flagx"
	"github.com/tmorris/bizlink-admin/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so intervals can be written either as strings like "2m" or
// as integer nanoseconds. After parsing, values are copied into the runtime
// Config.
type JsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	RefreshBuffer  timex.Duration `json:"refresh_buffer"`
	IdleThreshold  timex.Duration `json:"idle_threshold"`
	CredentialsDB  string         `json:"credentials_db"`
	LogLevel       string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c/-config flags (via flagx.JsonConfigFlags);
// when absent, no JSON is loaded. Only fields present in the file override
// the current values. Panics on read or unmarshal errors, mirroring the
// fail-fast behavior of the flags stage.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.RefreshBuffer.Duration > 0 {
		cfg.RefreshBuffer = time.Duration(jc.RefreshBuffer.Duration)
	}
	if jc.IdleThreshold.Duration > 0 {
		cfg.IdleThreshold = time.Duration(jc.IdleThreshold.Duration)
	}
	if jc.CredentialsDB != "" {
		cfg.CredentialsDB = jc.CredentialsDB
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
