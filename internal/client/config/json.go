package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/codelog/internal/flagx"
	"github.com/dmitrijs2005/codelog/internal/timex"
)

// JsonConfig is a DTO used only for JSON unmarshalling. Pointer fields tell
// "absent" from "zero", so a file may set any subset of options. Durations
// use timex.Duration ("8h" or nanoseconds).
type JsonConfig struct {
	ServerURL              *string         `json:"server_url"`
	APIPrefix              *string         `json:"api_prefix"`
	Profile                *string         `json:"profile"`
	AllowedPostingInterval *timex.Duration `json:"allowed_posting_interval"`
	RequestTimeout         *timex.Duration `json:"request_timeout"`
	MinPasswordLength      *int            `json:"min_password_length"`
	DatabasePath           *string         `json:"database_path"`
	LogFormat              *string         `json:"log_format"`
	LogLevel               *string         `json:"log_level"`
}

// parseJson overlays cfg with the JSON file named by -c or -config. Without
// either flag it does nothing.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.ServerURL, jc.ServerURL)
	setString(&cfg.APIPrefix, jc.APIPrefix)
	setString(&cfg.Profile, jc.Profile)
	setString(&cfg.DatabasePath, jc.DatabasePath)
	setString(&cfg.LogFormat, jc.LogFormat)
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.AllowedPostingInterval != nil {
		cfg.AllowedPostingInterval = jc.AllowedPostingInterval.Duration
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.MinPasswordLength != nil {
		cfg.MinPasswordLength = *jc.MinPasswordLength
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
