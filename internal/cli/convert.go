package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/LeJamon/gocorepc/internal/model"
	"github.com/LeJamon/gocorepc/internal/rpc/versions"
)

var convertCmd = &cobra.Command{
	Use:   "convert <method> [file|-]",
	Short: "Convert a recorded reply into its typed model",
	Long: `Read the JSON result of <method> from file, or from stdin when the file is
omitted or "-", convert it with the records of --server-version and print the
model as JSON.

The input is the bare result, or a full {"result": ..., "error": ..., "id": ...}
envelope.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		method := args[0]
		path := "-"
		if len(args) == 2 {
			path = args[1]
		}

		raw, err := readInput(cmd.InOrStdin(), path)
		if err != nil {
			return err
		}
		out, err := convertReply(method, raw)
		if err != nil {
			return err
		}
		logger.Debug("converted reply", zap.String("method", method), zap.String("source", path))
		return printJSON(cmd.OutOrStdout(), out)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return raw, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return raw, nil
}

// convertReply converts raw with the registry of the configured server version
// and checks any address left unchecked against the configured network.
func convertReply(method string, raw []byte) (any, error) {
	registry, err := versions.ForVersion(cfg.ServerVersion)
	if err != nil {
		return nil, err
	}
	out, err := registry.Convert(method, unwrapEnvelope(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if err := requireNetwork(out); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	return out, nil
}

func requireNetwork(out any) error {
	m, ok := out.(model.GetNewAddress)
	if !ok {
		return nil
	}
	params, err := cfg.NetworkParams()
	if err != nil {
		return err
	}
	_, err = m.Address.RequireNetwork(params)
	return err
}

// unwrapEnvelope returns the result member of a JSON-RPC reply, or raw itself
// when raw is not an envelope.
func unwrapEnvelope(raw []byte) json.RawMessage {
	var envelope struct {
		Result json.RawMessage `json:"result"`
		ID     json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Result != nil && envelope.ID != nil {
		return envelope.Result
	}
	return raw
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
