package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LeJamon/gocorepc/internal/rpc/versions"
)

var methodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "List the methods typed for a server version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := versions.ForVersion(cfg.ServerVersion)
		if err != nil {
			return err
		}
		for _, method := range registry.List() {
			fmt.Fprintln(cmd.OutOrStdout(), method)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(methodsCmd)
}
