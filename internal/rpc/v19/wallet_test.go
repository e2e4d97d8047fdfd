package v19

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/gocorepc/internal/amount"
	"github.com/LeJamon/gocorepc/internal/convert"
	"github.com/LeJamon/gocorepc/internal/model"
	"github.com/LeJamon/gocorepc/internal/rpc"
	"github.com/LeJamon/gocorepc/internal/rpc/mock"
	"github.com/LeJamon/gocorepc/internal/rpc/v18"
)

const walletInfo = `{
	"walletname": "",
	"walletversion": 169900,
	"balance": 0.25,
	"unconfirmed_balance": 0,
	"immature_balance": 50,
	"txcount": 102,
	"keypoololdest": 1546300800,
	"keypoolsize": 1000,
	"keypoolsize_hd_internal": 1000,
	"paytxfee": 0,
	"hdseedid": "751e76e8199196d454941c45d1b3a323f1433bd6",
	"private_keys_enabled": true,
	"avoid_reuse": false,
	"scanning": %s
}`

func walletInfoWith(scanning string) string {
	return fmt.Sprintf(walletInfo, scanning)
}

func TestScanningDecode(t *testing.T) {
	tt := []struct {
		description string
		raw         string
		expected    *model.WalletScan
		expectedErr error
	}{
		{description: "not scanning", raw: `false`},
		{description: "null", raw: `null`},
		{description: "scanning", raw: `{"duration": 12, "progress": 0.5}`, expected: &model.WalletScan{Duration: 12 * time.Second, Progress: 0.5}},
		{description: "progress above one", raw: `{"duration": 12, "progress": 1.5}`, expectedErr: convert.ErrOutOfRange},
	}
	for _, tc := range tt {
		t.Run(tc.description, func(t *testing.T) {
			var g GetWalletInfo
			require.NoError(t, json.Unmarshal([]byte(walletInfoWith(tc.raw)), &g))
			m, err := g.IntoModel()
			if tc.expectedErr != nil {
				var wErr *GetWalletInfoError
				require.ErrorAs(t, err, &wErr)
				assert.Equal(t, GetWalletInfoFieldScanning, wErr.Field)
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, m.Scanning)
			require.NotNil(t, m.AvoidReuse)
			assert.False(t, *m.AvoidReuse)
		})
	}
}

func TestScanningRejectsTrue(t *testing.T) {
	var s Scanning
	assert.Error(t, json.Unmarshal([]byte(`true`), &s))
}

func TestScanningRoundTrip(t *testing.T) {
	for _, raw := range []string{`false`, `{"duration":3,"progress":0.25}`} {
		var s Scanning
		require.NoError(t, json.Unmarshal([]byte(raw), &s))
		encoded, err := json.Marshal(s)
		require.NoError(t, err)
		assert.JSONEq(t, raw, string(encoded))
	}
}

func TestWalletInfoAgreesWithV18(t *testing.T) {
	raw := walletInfoWith(`false`)
	var old v18.GetWalletInfo
	require.NoError(t, json.Unmarshal([]byte(raw), &old))
	prev, err := old.IntoModel()
	require.NoError(t, err)

	var cur GetWalletInfo
	require.NoError(t, json.Unmarshal([]byte(raw), &cur))
	next, err := cur.IntoModel()
	require.NoError(t, err)

	// Only the fields added in v0.19 differ.
	next.AvoidReuse = nil
	assert.Equal(t, prev, next)
}

func TestGetBalances(t *testing.T) {
	var g GetBalances
	require.NoError(t, json.Unmarshal([]byte(`{
		"mine": {"trusted": 1.5, "untrusted_pending": 0.1, "immature": 0, "used": 0.2},
		"watchonly": {"trusted": 3, "untrusted_pending": 0, "immature": 0}
	}`), &g))
	m, err := g.IntoModel()
	require.NoError(t, err)
	assert.Equal(t, amount.FromSat(150_000_000), m.Mine.Trusted)
	require.NotNil(t, m.Mine.Used)
	assert.Equal(t, amount.FromSat(20_000_000), *m.Mine.Used)
	require.NotNil(t, m.WatchOnly)
	assert.Nil(t, m.WatchOnly.Used)

	g.WatchOnly.Immature = -1
	_, err = g.IntoModel()
	var outer *GetBalancesError
	require.ErrorAs(t, err, &outer)
	assert.Equal(t, GetBalancesFieldWatchOnly, outer.Field)
	var inner *GetBalancesWatchOnlyError
	require.ErrorAs(t, err, &inner)
	assert.Equal(t, GetBalancesWatchOnlyFieldImmature, inner.Field)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, Version, r.Version())
	assert.Contains(t, r.List(), "getbalances")
	assert.Contains(t, r.List(), "listwalletdir")
	assert.NotContains(t, v18.NewRegistry().List(), "getbalances")

	out, err := r.Convert("getwalletinfo", json.RawMessage(walletInfoWith(`{"duration": 1, "progress": 0.1}`)))
	require.NoError(t, err)
	info := out.(model.GetWalletInfo)
	require.NotNil(t, info.Scanning)
	assert.Equal(t, time.Second, info.Scanning.Duration)

	_, err = r.Convert("getblockchaininfo", json.RawMessage(`{}`))
	assert.ErrorIs(t, err, rpc.ErrUnknownMethod)
}

func TestClientVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	caller := mock.NewMockCaller(ctrl)
	caller.EXPECT().Call(gomock.Any(), "getnetworkinfo", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ []any, result any) error {
			return json.Unmarshal([]byte(`{"version": 190100, "subversion": "/Satoshi:0.19.1/", "localservices": "0000000000000409"}`), result)
		})
	caller.EXPECT().Call(gomock.Any(), "getbalances", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ []any, result any) error {
			return json.Unmarshal([]byte(`{"mine": {"trusted": 1, "untrusted_pending": 0, "immature": 0}}`), result)
		})

	c := NewClient(caller)
	require.NoError(t, c.CheckServerVersion(context.Background()))
	b, err := c.GetBalances(context.Background())
	require.NoError(t, err)
	m, err := b.IntoModel()
	require.NoError(t, err)
	assert.Nil(t, m.WatchOnly)
}
