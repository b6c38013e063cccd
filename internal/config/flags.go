package config

import (
	"flag"
	"os"
	"time"

	"github.com/tmorris/bizlink-admin/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the admin API (default from Config)
//	-d string   path of the local credentials database
//	-t int      request timeout in seconds
//	-b int      proactive refresh buffer in seconds
//	-l string   log level
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-b", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the admin API")
	fs.StringVar(&cfg.CredentialsDB, "d", cfg.CredentialsDB, "path of the local credentials database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug|info|warn|error)")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	buffer := fs.Int("b", int(cfg.RefreshBuffer.Seconds()), "proactive refresh buffer (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	cfg.RefreshBuffer = time.Duration(*buffer) * time.Second
}
