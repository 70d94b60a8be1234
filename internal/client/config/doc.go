// Package config loads runtime configuration for the CodeLog CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// The profile is applied last: "dev" sets the posting interval to 60s.
//
// # JSON schema
//
//	{
//	  "server_url": "http://127.0.0.1:5000",
//	  "api_prefix": "/api",
//	  "profile": "prod",
//	  "allowed_posting_interval": "8h",
//	  "request_timeout": "10s",
//	  "min_password_length": 6,
//	  "database_path": "codelog.db",
//	  "log_format": "console",
//	  "log_level": "warn"
//	}
//
// Every key is optional. Environment variables are not read.
package config
