package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// FlagKeys maps CLI flag names to the configuration keys they override.
var FlagKeys = map[string]string{
	"rpc-url":        "rpc.url",
	"rpc-user":       "rpc.user",
	"rpc-password":   "rpc.password",
	"rpc-cookie":     "rpc.cookie_file",
	"wallet":         "rpc.wallet",
	"timeout":        "rpc.timeout",
	"network":        "network",
	"server-version": "server_version",
	"log-level":      "log.level",
	"log-format":     "log.format",
}

// LoadConfig loads configuration from multiple sources in priority order:
// 1. Default values
// 2. Configuration file (corepc.toml)
// 3. Environment variables (COREPC_ prefix)
// 4. Flags that were set on the command line
//
// An empty configPath falls back to DefaultConfigFile, which may be absent. An
// explicit path must exist. flags may be nil.
func LoadConfig(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	usedPath, err := loadConfigFile(v, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	v.SetEnvPrefix("COREPC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := bindFlags(v, flags); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.configPath = usedPath

	if err := ValidateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func loadConfigFile(v *viper.Viper, configPath string) (string, error) {
	explicit := configPath != ""
	if !explicit {
		configPath = DefaultConfigFile
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if explicit {
			return "", fmt.Errorf("config file does not exist: %s", configPath)
		}
		return "", nil
	}

	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return "", fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}
	return configPath, nil
}

// bindFlags binds only the flags present in both flags and FlagKeys, so a flag
// left at its default never shadows the file or the environment.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}
	for name, key := range FlagKeys {
		f := flags.Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("flag %s: %w", name, err)
		}
	}
	return nil
}
