package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tempDir, err := os.MkdirTemp("", "corepc_config_test")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	path := ConfigPathFromDir(tempDir)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
network = "mainnet"
server_version = 18

[rpc]
url = "http://node.local:8332"
user = "alice"
password = "secret"
wallet = "savings"
timeout = "5s"

[log]
level = "debug"
format = "json"
`)

	config, err := LoadConfig(path, nil)
	require.NoError(t, err)
	require.NotNil(t, config)

	assert.Equal(t, "http://node.local:8332", config.RPC.URL)
	assert.Equal(t, "alice", config.RPC.User)
	assert.Equal(t, "secret", config.RPC.Password)
	assert.Equal(t, "savings", config.RPC.Wallet)
	assert.Equal(t, 5*time.Second, config.RPC.Timeout)
	assert.Equal(t, "mainnet", config.Network)
	assert.Equal(t, 18, config.ServerVersion)
	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, path, config.GetConfigPath())

	params, err := config.NetworkParams()
	require.NoError(t, err)
	assert.Equal(t, &chaincfg.MainNetParams, params)
}

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	config, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:18443", config.RPC.URL)
	assert.Equal(t, 30*time.Second, config.RPC.Timeout)
	assert.Equal(t, "regtest", config.Network)
	assert.Equal(t, 19, config.ServerVersion)
	assert.Equal(t, "", config.GetConfigPath())
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"), nil)
	assert.ErrorContains(t, err, "config file does not exist")
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, `
network = "mainnet"

[rpc]
url = "http://node.local:8332"
`)
	t.Setenv("COREPC_NETWORK", "signet")
	t.Setenv("COREPC_RPC_URL", "http://other:38332")

	config, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "signet", config.Network)
	assert.Equal(t, "http://other:38332", config.RPC.URL)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("COREPC_SERVER_VERSION", "18")
	t.Setenv("COREPC_NETWORK", "testnet")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("server-version", 19, "")
	flags.String("network", "regtest", "")
	require.NoError(t, flags.Parse([]string{"--server-version=17"}))

	config, err := LoadConfig(writeConfig(t, ""), flags)
	require.NoError(t, err)
	assert.Equal(t, 17, config.ServerVersion)
	// Unset flags leave the environment alone.
	assert.Equal(t, "testnet", config.Network)
}

func TestConfigValidation(t *testing.T) {
	valid := func() *Config {
		return &Config{
			RPC:           RPCConfig{URL: "http://127.0.0.1:8332", Timeout: time.Second},
			Network:       "regtest",
			ServerVersion: 17,
			Log:           LogConfig{Level: "info", Format: "console"},
		}
	}
	require.NoError(t, ValidateConfig(valid()))

	tt := []struct {
		description string
		mutate      func(c *Config)
		expectedErr string
	}{
		{
			description: "missing url",
			mutate:      func(c *Config) { c.RPC.URL = "" },
			expectedErr: "rpc config validation failed: url is required",
		},
		{
			description: "bad scheme",
			mutate:      func(c *Config) { c.RPC.URL = "ftp://127.0.0.1" },
			expectedErr: "url scheme must be http or https",
		},
		{
			description: "cookie with password",
			mutate: func(c *Config) {
				c.RPC.CookieFile = "/tmp/.cookie"
				c.RPC.Password = "pw"
			},
			expectedErr: "mutually exclusive",
		},
		{
			description: "negative timeout",
			mutate:      func(c *Config) { c.RPC.Timeout = -time.Second },
			expectedErr: "timeout cannot be negative",
		},
		{
			description: "unknown network",
			mutate:      func(c *Config) { c.Network = "simnet" },
			expectedErr: "network validation failed: unknown network: simnet",
		},
		{
			description: "unsupported version",
			mutate:      func(c *Config) { c.ServerVersion = 20 },
			expectedErr: "unsupported version 20",
		},
		{
			description: "bad log level",
			mutate:      func(c *Config) { c.Log.Level = "loud" },
			expectedErr: "log config validation failed",
		},
		{
			description: "bad log format",
			mutate:      func(c *Config) { c.Log.Format = "xml" },
			expectedErr: "format must be console or json",
		},
	}
	for _, tc := range tt {
		t.Run(tc.description, func(t *testing.T) {
			c := valid()
			tc.mutate(c)
			assert.ErrorContains(t, ValidateConfig(c), tc.expectedErr)
		})
	}
}
