//go:build integration

package versions

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/LeJamon/gocorepc/internal/rpc"
	"github.com/LeJamon/gocorepc/internal/rpc/v17"
)

// Run with a node that has a loaded wallet:
//
//	COREPC_RPC_URL=http://127.0.0.1:18443 COREPC_RPC_USER=u COREPC_RPC_PASSWORD=p \
//	    go test -tags integration ./internal/rpc/versions/
func TestLiveNode(t *testing.T) {
	url := os.Getenv("COREPC_RPC_URL")
	if url == "" {
		t.Skip("COREPC_RPC_URL not set")
	}
	caller := rpc.NewHTTPCaller(url, rpc.WithBasicAuth(os.Getenv("COREPC_RPC_USER"), os.Getenv("COREPC_RPC_PASSWORD")))
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	info, err := v17.NewClient(caller).GetNetworkInfo(ctx)
	require.NoError(t, err)
	m, err := info.IntoModel()
	require.NoError(t, err)

	registry, err := ForVersion(int(m.MajorVersion()))
	require.NoError(t, err)
	t.Logf("node %s, using v%d records", m.Subversion, registry.Version())

	readOnly := []string{
		"getbalance",
		"getunconfirmedbalance",
		"getwalletinfo",
		"listaddressgroupings",
		"listlabels",
		"listlockunspent",
		"listreceivedbyaddress",
		"listsinceblock",
		"listtransactions",
		"listunspent",
		"listwallets",
		"getnetworkinfo",
	}
	for _, method := range readOnly {
		t.Run(method, func(t *testing.T) {
			var raw json.RawMessage
			require.NoError(t, caller.Call(ctx, method, nil, &raw))
			_, err := registry.Convert(method, raw)
			require.NoError(t, err)
		})
	}
}
