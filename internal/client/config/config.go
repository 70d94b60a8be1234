package config

import (
	"fmt"
	"strings"
	"time"
)

const (
	ProfileProd = "prod"
	ProfileDev  = "dev"

	LogFormatConsole = "console"
	LogFormatText    = "text"

	devPostingInterval = 60 * time.Second
)

// Config holds runtime settings for the CodeLog CLI.
//
// Fields:
//   - ServerURL, APIPrefix: the backend base URL is ServerURL+APIPrefix.
//   - Profile: "prod" or "dev"; dev shortens the posting interval to 60s.
//   - AllowedPostingInterval: how long after a post the next one is allowed
//     to be blocked; compared with the streak ttl.
//   - RequestTimeout: deadline of every backend call.
//   - MinPasswordLength: minimum accepted password length.
//   - DatabasePath: sqlite file holding the stored tokens.
//   - LogFormat, LogLevel: "console" (zap) or "text" (slog), and the level.
type Config struct {
	ServerURL              string
	APIPrefix              string
	Profile                string
	AllowedPostingInterval time.Duration
	RequestTimeout         time.Duration
	MinPasswordLength      int
	DatabasePath           string
	LogFormat              string
	LogLevel               string
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:5000"
	c.APIPrefix = "/api"
	c.Profile = ProfileProd
	c.AllowedPostingInterval = 8 * time.Hour
	c.RequestTimeout = 10 * time.Second
	c.MinPasswordLength = 6
	c.DatabasePath = "codelog.db"
	c.LogFormat = LogFormatConsole
	c.LogLevel = "warn"
}

// BaseURL is the URL every endpoint path is appended to.
func (c *Config) BaseURL() string {
	prefix := strings.Trim(c.APIPrefix, "/")
	base := strings.TrimRight(c.ServerURL, "/")
	if prefix == "" {
		return base
	}
	return base + "/" + prefix
}

// applyProfile checks the profile and applies its overrides.
func (c *Config) applyProfile() error {
	switch c.Profile {
	case ProfileProd:
	case ProfileDev:
		c.AllowedPostingInterval = devPostingInterval
	default:
		return fmt.Errorf("unknown profile %q (want %q or %q)", c.Profile, ProfileProd, ProfileDev)
	}
	return nil
}

func (c *Config) validate() error {
	switch {
	case c.ServerURL == "":
		return fmt.Errorf("server url must not be empty")
	case c.RequestTimeout <= 0:
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	case c.AllowedPostingInterval < 0:
		return fmt.Errorf("posting interval must not be negative, got %s", c.AllowedPostingInterval)
	case c.LogFormat != LogFormatConsole && c.LogFormat != LogFormatText:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}

// LoadConfig builds a Config from defaults, then the JSON file named by
// -c/-config (if any), then command-line flags. Later sources win.
// args are the program arguments without the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.applyProfile(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
