package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "http://127.0.0.1:5000", c.ServerURL)
	assert.Equal(t, "/api", c.APIPrefix)
	assert.Equal(t, ProfileProd, c.Profile)
	assert.Equal(t, 8*time.Hour, c.AllowedPostingInterval)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, 6, c.MinPasswordLength)
}

func TestLoadConfig_NoArgsGivesDefaults(t *testing.T) {
	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(defaults(), cfg))
}

func TestLoadConfig_DevProfile(t *testing.T) {
	cfg, err := LoadConfig([]string{"-profile", "dev"})
	require.NoError(t, err)
	assert.Equal(t, 60*time.Second, cfg.AllowedPostingInterval)

	_, err = LoadConfig([]string{"-profile", "staging"})
	require.ErrorContains(t, err, "unknown profile")
}

func TestLoadConfig_InvalidLogFormat(t *testing.T) {
	_, err := LoadConfig([]string{"-log", "json"})
	require.ErrorContains(t, err, "unknown log format")
}

func TestBaseURL(t *testing.T) {
	tests := []struct {
		server, prefix, want string
	}{
		{"http://127.0.0.1:5000", "/api", "http://127.0.0.1:5000/api"},
		{"http://h:1/", "api/", "http://h:1/api"},
		{"https://codelog.dev", "", "https://codelog.dev"},
	}
	for _, tt := range tests {
		c := &Config{ServerURL: tt.server, APIPrefix: tt.prefix}
		assert.Equal(t, tt.want, c.BaseURL())
	}
}
