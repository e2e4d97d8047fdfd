package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
)

// DefaultConfigFile is looked up in the working directory when no path is given.
const DefaultConfigFile = "corepc.toml"

// Config is the complete corepc configuration.
type Config struct {
	RPC RPCConfig `toml:"rpc" mapstructure:"rpc"`

	// One of mainnet, testnet, regtest, signet. Addresses in replies are checked
	// against it.
	Network string `toml:"network" mapstructure:"network"`

	// Release series of the node (17, 18, 19). Picks the wire records used to
	// decode replies.
	ServerVersion int `toml:"server_version" mapstructure:"server_version"`

	Log LogConfig `toml:"log" mapstructure:"log"`

	configPath string `toml:"-" mapstructure:"-"`
}

// RPCConfig describes how to reach the node.
type RPCConfig struct {
	URL      string `toml:"url" mapstructure:"url"`
	User     string `toml:"user" mapstructure:"user"`
	Password string `toml:"password" mapstructure:"password"`
	// Takes precedence over user and password when set.
	CookieFile string `toml:"cookie_file" mapstructure:"cookie_file"`
	// Wallet to address calls to, for nodes with several wallets loaded.
	Wallet  string        `toml:"wallet" mapstructure:"wallet"`
	Timeout time.Duration `toml:"timeout" mapstructure:"timeout"`
}

type LogConfig struct {
	Level  string `toml:"level" mapstructure:"level"`
	Format string `toml:"format" mapstructure:"format"`
}

var networks = map[string]*chaincfg.Params{
	"mainnet": &chaincfg.MainNetParams,
	"testnet": &chaincfg.TestNet3Params,
	"regtest": &chaincfg.RegressionNetParams,
	"signet":  &chaincfg.SigNetParams,
}

// NetworkParams returns the chain parameters of the configured network.
func (c *Config) NetworkParams() (*chaincfg.Params, error) {
	params, ok := networks[c.Network]
	if !ok {
		return nil, fmt.Errorf("unknown network: %s", c.Network)
	}
	return params, nil
}

// GetConfigPath returns the file the configuration was read from, or "" when
// only defaults and the environment were used.
func (c *Config) GetConfigPath() string {
	return c.configPath
}

// ConfigPathFromDir returns the default config file inside configDir.
func ConfigPathFromDir(configDir string) string {
	return filepath.Join(configDir, DefaultConfigFile)
}
