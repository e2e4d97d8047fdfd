package v18

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/gocorepc/internal/amount"
	"github.com/LeJamon/gocorepc/internal/convert"
	"github.com/LeJamon/gocorepc/internal/model"
	"github.com/LeJamon/gocorepc/internal/rpc/v17"
)

const (
	testTxid    = "5cd4ac3d6f3e5d2c1b0a99887766554433221100ffeeddccbbaa998877665544"
	testAddress = "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4"
	testScript  = "0014751e76e8199196d454941c45d1b3a323f1433bd6"
	testSeedID  = "751e76e8199196d454941c45d1b3a323f1433bd6"

	serializedTx = "02000000" + "01" +
		"0000000000000000000000000000000000000000000000000000000000000000" + "ffffffff" + "00" + "ffffffff" +
		"01" + "00e1f50500000000" + "16" + testScript +
		"00000000"
)

func decode[T any](t *testing.T, raw string) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal([]byte(raw), &out))
	return out
}

func TestGetAddressInfoNewFields(t *testing.T) {
	raw := `{
		"address": "` + testAddress + `",
		"scriptPubKey": "` + testScript + `",
		"ismine": true,
		"solvable": true,
		"desc": "wpkh([d6043800/0'/0'/7']0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798)#8fhd9pwu",
		"iswatchonly": false,
		"isscript": false,
		"ischange": false,
		"iswitness": true,
		"witness_version": 0,
		"witness_program": "` + testSeedID + `",
		"label": "savings",
		"hdkeypath": "m/0'/0'/7'",
		"hdseedid": "` + testSeedID + `",
		"hdmasterfingerprint": "d6043800",
		"labels": [{"name": "savings", "purpose": "receive"}]
	}`
	m, err := decode[GetAddressInfo](t, raw).IntoModel()
	require.NoError(t, err)
	require.NotNil(t, m.Solvable)
	assert.True(t, *m.Solvable)
	require.NotNil(t, m.Descriptor)
	require.NotNil(t, m.IsChange)
	assert.False(t, *m.IsChange)
	require.NotNil(t, m.HDMasterFingerprint)
	assert.Equal(t, "d6043800", m.HDMasterFingerprint.String())
	assert.Equal(t, "savings", m.Label)

	g := decode[GetAddressInfo](t, raw)
	g.HDMasterFingerprint = strPtr("d60438")
	_, err = g.IntoModel()
	var aErr *GetAddressInfoError
	require.ErrorAs(t, err, &aErr)
	assert.Equal(t, GetAddressInfoFieldHDMasterFingerprint, aErr.Field)
	assert.ErrorIs(t, err, convert.ErrWrongLength)
}

func TestDeprecatedAliasesIgnored(t *testing.T) {
	// A v0.17 style reply decoded as v0.18 drops the removed aliases.
	raw := `{"category": "receive", "amount": 1, "vout": 0, "account": "old"}`
	d, err := decode[GetTransactionDetail](t, raw).IntoModel()
	require.NoError(t, err)
	assert.Nil(t, d.Label)

	old, err := decode[v17.GetTransactionDetail](t, raw).IntoModel()
	require.NoError(t, err)
	require.NotNil(t, old.Label)
	assert.Equal(t, "old", *old.Label)
}

func TestInvolvesWatchOnly(t *testing.T) {
	d, err := decode[GetTransactionDetail](t, `{"involvesWatchonly": true, "category": "receive", "amount": 1, "vout": 0}`).IntoModel()
	require.NoError(t, err)
	require.NotNil(t, d.InvolvesWatchOnly)
	assert.True(t, *d.InvolvesWatchOnly)
}

func TestVersionsAgreeOnModel(t *testing.T) {
	raw := `{
		"walletname": "w",
		"walletversion": 169900,
		"balance": 1.5,
		"unconfirmed_balance": 0,
		"immature_balance": 0,
		"txcount": 4,
		"keypoololdest": 1546300800,
		"keypoolsize": 1000,
		"keypoolsize_hd_internal": 1000,
		"paytxfee": 0,
		"hdseedid": "` + testSeedID + `",
		"private_keys_enabled": true
	}`
	old, err := decode[v17.GetWalletInfo](t, raw).IntoModel()
	require.NoError(t, err)
	cur, err := decode[GetWalletInfo](t, raw).IntoModel()
	require.NoError(t, err)
	assert.Equal(t, old, cur)
	assert.Equal(t, amount.FromSat(150_000_000), cur.Balance)
}

func TestGetReceivedByLabel(t *testing.T) {
	m, err := GetReceivedByLabel(0.3).IntoModel()
	require.NoError(t, err)
	assert.Equal(t, amount.FromSat(30_000_000), m.Amount)

	_, err = GetReceivedByLabel(-1).IntoModel()
	var rErr *GetReceivedByLabelError
	require.ErrorAs(t, err, &rErr)
	assert.Equal(t, GetReceivedByLabelFieldAmount, rErr.Field)
}

func TestListWalletDir(t *testing.T) {
	m, err := decode[ListWalletDir](t, `{"wallets":[{"name":""},{"name":"savings"}]}`).IntoModel()
	require.NoError(t, err)
	assert.Equal(t, []string{"", "savings"}, m.Wallets)
}

func TestListUnspentLabel(t *testing.T) {
	m, err := ListUnspent{{
		Txid:         testTxid,
		Address:      strPtr(testAddress),
		Label:        "cold",
		ScriptPubKey: testScript,
		Amount:       0.5,
	}}.IntoModel()
	require.NoError(t, err)
	assert.Equal(t, "cold", m.Items[0].Label)
}

func TestRegistryOverrides(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, Version, r.Version())
	methods := r.List()
	assert.Contains(t, methods, "listwalletdir")
	assert.Contains(t, methods, "getreceivedbylabel")
	assert.Contains(t, methods, "getbalance")
	assert.NotContains(t, v17.NewRegistry().List(), "listwalletdir")

	out, err := r.Convert("gettransaction", json.RawMessage(`{
		"amount": 1, "confirmations": 1, "txid": "`+testTxid+`", "walletconflicts": [],
		"time": 1, "timereceived": 1, "bip125-replaceable": "no",
		"details": [{"involvesWatchonly": true, "category": "receive", "amount": 1, "vout": 0}],
		"hex": "`+serializedTx+`"
	}`))
	require.NoError(t, err)
	tx, ok := out.(model.GetTransaction)
	require.True(t, ok)
	require.NotNil(t, tx.Details[0].InvolvesWatchOnly)
}

func strPtr(s string) *string {
	return &s
}
