package config

import (
	"fmt"
	"net/url"

	"go.uber.org/zap/zapcore"
)

var supportedServerVersions = map[int]bool{17: true, 18: true, 19: true}

// ValidateConfig performs validation on the complete configuration
func ValidateConfig(config *Config) error {
	if err := config.RPC.Validate(); err != nil {
		return fmt.Errorf("rpc config validation failed: %w", err)
	}

	if _, err := config.NetworkParams(); err != nil {
		return fmt.Errorf("network validation failed: %w", err)
	}

	if !supportedServerVersions[config.ServerVersion] {
		return fmt.Errorf("server_version validation failed: unsupported version %d (supported: 17, 18, 19)", config.ServerVersion)
	}

	if err := config.Log.Validate(); err != nil {
		return fmt.Errorf("log config validation failed: %w", err)
	}

	return nil
}

// Validate checks the endpoint and the credentials.
func (r *RPCConfig) Validate() error {
	if r.URL == "" {
		return fmt.Errorf("url is required")
	}
	u, err := url.Parse(r.URL)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", r.URL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("url %q has no host", r.URL)
	}
	if r.CookieFile != "" && (r.User != "" || r.Password != "") {
		return fmt.Errorf("cookie_file and user/password are mutually exclusive")
	}
	if r.Timeout < 0 {
		return fmt.Errorf("timeout cannot be negative")
	}
	return nil
}

func (l *LogConfig) Validate() error {
	if _, err := zapcore.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("invalid level: %w", err)
	}
	switch l.Format {
	case "console", "json":
	default:
		return fmt.Errorf("format must be console or json, got %q", l.Format)
	}
	return nil
}
