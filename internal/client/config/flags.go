package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/codelog/internal/flagx"
)

var knownFlags = []string{"-a", "-p", "-profile", "-db", "-log", "-log-level"}

// parseFlags overlays cfg with command-line flags.
//
//	-a string          backend server URL
//	-p string          API path prefix
//	-profile string    prod or dev
//	-db string         sqlite database path
//	-log string        console or text
//	-log-level string  debug, info, warn or error
//
// args are filtered with flagx.FilterArgs first, so -c/-config and anything
// unknown is ignored here.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("codelog", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "backend server URL")
	fs.StringVar(&cfg.APIPrefix, "p", cfg.APIPrefix, "API path prefix")
	fs.StringVar(&cfg.Profile, "profile", cfg.Profile, "prod or dev")
	fs.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "sqlite database path")
	fs.StringVar(&cfg.LogFormat, "log", cfg.LogFormat, "log format: console or text")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
