package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/LeJamon/gocorepc/internal/rpc"
	"github.com/LeJamon/gocorepc/internal/rpc/rpc_types"
	"github.com/LeJamon/gocorepc/internal/rpc/v17"
)

var (
	callRaw          bool
	callCheckVersion bool
)

var callCmd = &cobra.Command{
	Use:   "call <method> [params...]",
	Short: "Call a method on a live node and print the typed result",
	Long: `Send <method> to the node configured under [rpc] and convert the result with
the records of --server-version.

Each param that parses as JSON is sent as-is, anything else as a string, so
"getreceivedbyaddress bc1q... 6" sends a string and a number.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		method, params := args[0], parseParams(args[1:])
		caller := newCaller()
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		if callCheckVersion {
			if err := v17.NewVersionedClient(caller, uint32(cfg.ServerVersion)).CheckServerVersion(ctx); err != nil {
				return err
			}
		}

		var raw json.RawMessage
		if err := caller.Call(ctx, method, params, &raw); err != nil {
			return explainCallError(method, err)
		}
		logger.Debug("call returned", zap.String("method", method), zap.Int("bytes", len(raw)))

		if callRaw {
			return printJSON(cmd.OutOrStdout(), raw)
		}
		out, err := convertReply(method, raw)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), out)
	},
}

func init() {
	callCmd.Flags().BoolVar(&callRaw, "raw", false, "print the result without converting it")
	callCmd.Flags().BoolVar(&callCheckVersion, "check-version", false, "fail unless the node runs --server-version")
	rootCmd.AddCommand(callCmd)
}

// newCaller builds the HTTP transport from the loaded configuration.
func newCaller() *rpc.HTTPCaller {
	opts := []rpc.HTTPOption{rpc.WithLogger(logger)}
	if cfg.RPC.CookieFile != "" {
		opts = append(opts, rpc.WithCookieFile(cfg.RPC.CookieFile))
	} else {
		opts = append(opts, rpc.WithBasicAuth(cfg.RPC.User, cfg.RPC.Password))
	}
	if cfg.RPC.Timeout > 0 {
		opts = append(opts, rpc.WithHTTPClient(&http.Client{Timeout: cfg.RPC.Timeout}))
	}

	caller := rpc.NewHTTPCaller(cfg.RPC.URL, opts...)
	if cfg.RPC.Wallet != "" {
		caller = caller.ForWallet(cfg.RPC.Wallet)
	}
	return caller
}

func parseParams(args []string) []any {
	params := make([]any, 0, len(args))
	for _, arg := range args {
		if json.Valid([]byte(arg)) {
			params = append(params, json.RawMessage(arg))
			continue
		}
		params = append(params, arg)
	}
	return params
}

// explainCallError adds a hint to the server errors a wrong configuration causes.
func explainCallError(method string, err error) error {
	switch {
	case rpc_types.IsMethodNotFound(err):
		return fmt.Errorf("%w (the node does not know %s, check --server-version)", err, method)
	case rpc_types.IsWalletNotFound(err):
		return fmt.Errorf("%w (wallet %q is not loaded)", err, cfg.RPC.Wallet)
	}
	return err
}
