package v17

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/gocorepc/internal/amount"
	"github.com/LeJamon/gocorepc/internal/rpc"
	"github.com/LeJamon/gocorepc/internal/rpc/mock"
)

// reply makes a Call stub that decodes raw into the caller's result.
func reply(raw string) func(ctx context.Context, method string, params []any, result any) error {
	return func(_ context.Context, _ string, _ []any, result any) error {
		return json.Unmarshal([]byte(raw), result)
	}
}

func TestClientGetBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	caller := mock.NewMockCaller(ctrl)
	caller.EXPECT().Call(gomock.Any(), "getbalance", gomock.Len(0), gomock.Any()).DoAndReturn(reply(`1.25`))

	b, err := NewClient(caller).GetBalance(context.Background())
	require.NoError(t, err)
	balance, err := b.Balance()
	require.NoError(t, err)
	assert.Equal(t, amount.FromSat(125_000_000), balance)
}

func TestClientParams(t *testing.T) {
	addr, err := btcutil.DecodeAddress(testAddress, &chaincfg.MainNetParams)
	require.NoError(t, err)
	txid, err := chainhash.NewHashFromStr(testTxid)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	caller := mock.NewMockCaller(ctrl)
	gomock.InOrder(
		caller.EXPECT().Call(gomock.Any(), "sendtoaddress", []any{testAddress, 0.001}, gomock.Any()).DoAndReturn(reply(`"`+testTxid+`"`)),
		caller.EXPECT().Call(gomock.Any(), "gettransaction", []any{testTxid}, gomock.Any()).Return(nil),
		caller.EXPECT().Call(gomock.Any(), "unloadwallet", gomock.Nil(), nil).Return(nil),
	)

	c := NewClient(caller)
	sent, err := c.SendToAddress(context.Background(), addr, amount.FromSat(100_000))
	require.NoError(t, err)
	got, err := sent.Txid()
	require.NoError(t, err)
	assert.Equal(t, *txid, got)

	_, err = c.GetTransaction(context.Background(), *txid)
	require.NoError(t, err)
	require.NoError(t, c.UnloadWallet(context.Background(), ""))
}

func TestClientCheckServerVersion(t *testing.T) {
	tt := []struct {
		description string
		version     int64
		expectedErr error
	}{
		{description: "matching series", version: 170100},
		{description: "newer server", version: 180000, expectedErr: rpc.ErrUnexpectedServerVersion},
	}
	for _, tc := range tt {
		t.Run(tc.description, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			caller := mock.NewMockCaller(ctrl)
			caller.EXPECT().Call(gomock.Any(), "getnetworkinfo", gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, _ []any, result any) error {
					*result.(*GetNetworkInfo) = GetNetworkInfo{Version: tc.version, LocalServices: "0000000000000409"}
					return nil
				})

			err := NewClient(caller).CheckServerVersion(context.Background())
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestClientPropagatesCallerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	caller := mock.NewMockCaller(ctrl)
	caller.EXPECT().Call(gomock.Any(), "listunspent", gomock.Any(), gomock.Any()).Return(rpc.ErrTransport)

	_, err := NewClient(caller).ListUnspent(context.Background())
	assert.ErrorIs(t, err, rpc.ErrTransport)
}
