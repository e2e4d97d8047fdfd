package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/LeJamon/gocorepc/internal/config"
	corelog "github.com/LeJamon/gocorepc/internal/log"
)

var (
	// Global flags
	configFile string

	// Set by loadConfig before any subcommand runs.
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "corepc",
	Short: "corepc - typed Bitcoin Core JSON-RPC replies",
	Long: `corepc decodes the JSON-RPC replies of Bitcoin Core v0.17, v0.18 and v0.19
into version independent types. Every numeric, hex and address field is
validated, and a failure names the field that broke.`,
	Version:           "0.1.0-dev",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "conf", "", "configuration file path (default ./"+config.DefaultConfigFile+" if present)")

	flags.String("rpc-url", "", "node JSON-RPC endpoint")
	flags.String("rpc-user", "", "rpcuser")
	flags.String("rpc-password", "", "rpcpassword")
	flags.String("rpc-cookie", "", "path to the node's .cookie file")
	flags.String("wallet", "", "wallet to address calls to")
	flags.Duration("timeout", 0, "per call timeout")
	flags.String("network", "", "mainnet, testnet, regtest or signet")
	flags.Int("server-version", 0, "Bitcoin Core release series: 17, 18 or 19")
	flags.String("log-level", "", "debug, info, warn or error")
	flags.String("log-format", "", "console or json")
}

// loadConfig layers defaults, the config file, COREPC_ variables and the flags
// given on the command line.
func loadConfig(cmd *cobra.Command, _ []string) error {
	c, err := config.LoadConfig(configFile, cmd.Flags())
	if err != nil {
		return err
	}
	l, err := corelog.New(c.Log.Level, c.Log.Format)
	if err != nil {
		return err
	}
	cfg = c
	logger = l.With(zap.Int("server_version", c.ServerVersion), zap.String("network", c.Network))
	if path := c.GetConfigPath(); path != "" {
		logger.Debug("loaded config", zap.String("path", path))
	}
	return nil
}
