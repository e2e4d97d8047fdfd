package v17

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/gocorepc/internal/amount"
	"github.com/LeJamon/gocorepc/internal/convert"
	"github.com/LeJamon/gocorepc/internal/model"
)

const (
	testTxid     = "5cd4ac3d6f3e5d2c1b0a99887766554433221100ffeeddccbbaa998877665544"
	testAddress  = "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4"
	testP2PKH    = "1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN2"
	testP2SH     = "3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy"
	testPubKey   = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	testScript   = "0014751e76e8199196d454941c45d1b3a323f1433bd6"
	testSeedID   = "751e76e8199196d454941c45d1b3a323f1433bd6"
	testMultisig = "51210279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f8179851ae"

	// Version 2, one input spending the null outpoint, one 1 BTC output to testScript.
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

func TestGetBalance(t *testing.T) {
	m, err := GetBalance(0.00515).IntoModel()
	require.NoError(t, err)
	assert.Equal(t, amount.FromSat(515000), m.Balance)

	_, err = GetBalance(-0.0001).IntoModel()
	var balErr *GetBalanceError
	require.ErrorAs(t, err, &balErr)
	assert.Equal(t, GetBalanceFieldBalance, balErr.Field)
	assert.ErrorIs(t, err, convert.ErrOutOfRange)
}

func TestUnconfirmedBalanceProjection(t *testing.T) {
	b, err := GetUnconfirmedBalance(1.5).Balance()
	require.NoError(t, err)
	assert.Equal(t, uint64(150_000_000), b.Sat())
}

func TestAddMultisigAddress(t *testing.T) {
	m, err := AddMultisigAddress{Address: testP2SH, RedeemScript: testMultisig}.IntoModel()
	require.NoError(t, err)
	assert.Equal(t, testP2SH, m.Address.String())
	assert.Equal(t, testMultisig, m.RedeemScript.String())

	_, err = AddMultisigAddress{Address: testP2SH, RedeemScript: "zz"}.IntoModel()
	var maErr *AddMultisigAddressError
	require.ErrorAs(t, err, &maErr)
	assert.Equal(t, AddMultisigAddressFieldRedeemScript, maErr.Field)
	assert.ErrorIs(t, err, convert.ErrInvalidHex)
}

func TestBumpFee(t *testing.T) {
	b := decode[BumpFee](t, `{"txid":"`+testTxid+`","origfee":0.0001,"fee":0.0002,"errors":[]}`)
	m, err := b.IntoModel()
	require.NoError(t, err)
	assert.Equal(t, testTxid, m.Txid.String())
	assert.Equal(t, amount.FromSat(10_000), m.OriginalFee)
	assert.Equal(t, amount.FromSat(20_000), m.Fee)

	txid, err := b.ReplacementTxid()
	require.NoError(t, err)
	assert.Equal(t, m.Txid, txid)
}

func TestCreateWalletWarnings(t *testing.T) {
	m, err := CreateWallet{Name: "w", Warning: ""}.IntoModel()
	require.NoError(t, err)
	assert.Nil(t, m.Warnings)

	lm, err := LoadWallet{Name: "w", Warning: "legacy wallet"}.IntoModel()
	require.NoError(t, err)
	assert.Equal(t, []string{"legacy wallet"}, lm.Warnings)
	assert.Equal(t, "w", LoadWallet{Name: "w"}.WalletName())
}

func TestDumpPrivKey(t *testing.T) {
	_, err := DumpPrivKey("not a key").IntoModel()
	var dErr *DumpPrivKeyError
	require.ErrorAs(t, err, &dErr)
	assert.ErrorIs(t, err, convert.ErrInvalidPrivateKey)
}

func TestGetNewAddressIsUnchecked(t *testing.T) {
	m, err := GetNewAddress(testAddress).IntoModel()
	require.NoError(t, err)
	assert.Equal(t, []string{"mainnet"}, m.Address.Networks())

	_, err = GetNewAddress("nope").IntoModel()
	assert.ErrorIs(t, err, convert.ErrInvalidAddressSyntax)
}

func TestGetAddressesByLabelSortedKeys(t *testing.T) {
	g := GetAddressesByLabel{
		testP2SH:    {Purpose: "receive"},
		testP2PKH:   {Purpose: "send"},
		testAddress: {Purpose: "receive"},
	}
	m, err := g.IntoModel()
	require.NoError(t, err)
	require.Len(t, m.Addresses, 3)
	assert.Equal(t, testP2PKH, m.Addresses[0].Address.String())
	assert.Equal(t, model.AddressPurposeSend, m.Addresses[0].Purpose)
	assert.Equal(t, testP2SH, m.Addresses[1].Address.String())
	assert.Equal(t, testAddress, m.Addresses[2].Address.String())

	// Of two bad entries the first in address order is reported.
	bad := GetAddressesByLabel{
		"zzz": {Purpose: "receive"},
		"aaa": {Purpose: "receive"},
	}
	_, err = bad.IntoModel()
	var keyErr *convert.KeyError
	require.ErrorAs(t, err, &keyErr)
	assert.Equal(t, "aaa", keyErr.Key)

	_, err = GetAddressesByLabel{testP2PKH: {Purpose: "refund"}}.IntoModel()
	var gErr *GetAddressesByLabelError
	require.ErrorAs(t, err, &gErr)
	assert.Equal(t, GetAddressesByLabelFieldPurpose, gErr.Field)
	assert.ErrorIs(t, err, convert.ErrUnknownVariant)
}

func TestGetTransaction(t *testing.T) {
	raw := `{
		"amount": -0.5,
		"fee": -0.0001,
		"confirmations": 0,
		"txid": "` + testTxid + `",
		"walletconflicts": [],
		"time": 1546300800,
		"timereceived": 1546300800,
		"bip125-replaceable": "yes",
		"details": [
			{"account": "", "address": "` + testAddress + `", "category": "send", "amount": -0.5, "label": "rent", "vout": 1, "fee": -0.0001, "abandoned": false}
		],
		"hex": "` + serializedTx + `"
	}`
	m, err := decode[GetTransaction](t, raw).IntoModel()
	require.NoError(t, err)
	assert.Equal(t, int64(-50_000_000), m.Amount.Sat())
	require.NotNil(t, m.Fee)
	assert.Equal(t, int64(-10_000), m.Fee.Sat())
	assert.Nil(t, m.BlockHash)
	assert.Nil(t, m.BlockIndex)
	assert.Nil(t, m.BlockTime)
	assert.Equal(t, int64(1546300800), m.Time.Unix())
	assert.Equal(t, model.Bip125ReplaceableYes, m.Bip125Replaceable)
	require.Len(t, m.Details, 1)
	assert.Equal(t, model.TransactionCategorySend, m.Details[0].Category)
	require.NotNil(t, m.Details[0].Label)
	assert.Equal(t, "rent", *m.Details[0].Label)
	assert.Equal(t, uint32(1), m.Details[0].Vout)
	require.NotNil(t, m.Tx)
	assert.Len(t, m.Tx.TxOut, 1)
}

func TestGetTransactionStopsAtFirstBadField(t *testing.T) {
	g := GetTransaction{
		Amount: 1,
		// Hex is also bad but comes later.
		Txid:              strings.Repeat("ab", 30),
		Bip125Replaceable: "maybe",
		Hex:               "zz",
	}
	_, err := g.IntoModel()
	var txErr *GetTransactionError
	require.ErrorAs(t, err, &txErr)
	assert.Equal(t, GetTransactionFieldTxid, txErr.Field)

	var lenErr *convert.WrongLengthError
	require.ErrorAs(t, err, &lenErr)
	assert.Equal(t, 32, lenErr.Want)
	assert.Equal(t, 30, lenErr.Got)
}

func TestGetTransactionDetailFailure(t *testing.T) {
	g := GetTransaction{
		Txid:              testTxid,
		Bip125Replaceable: "no",
		Details: []GetTransactionDetail{
			{Category: "receive", Amount: 1},
			{Category: "burn", Amount: 1},
		},
		Hex: serializedTx,
	}
	_, err := g.IntoModel()
	assert.EqualError(t, err, "conversion of the `details` field failed: item 1: conversion of the `category` field failed: unknown variant \"burn\"")

	var detailErr *GetTransactionDetailError
	require.ErrorAs(t, err, &detailErr)
	assert.Equal(t, GetTransactionDetailFieldCategory, detailErr.Field)
}

func TestLabelFallsBackToAccount(t *testing.T) {
	account, label := "old", "new"
	tt := []struct {
		description string
		label       *string
		account     *string
		expected    *string
	}{
		{description: "label only", label: &label, expected: &label},
		{description: "account only", account: &account, expected: &account},
		{description: "both prefer label", label: &label, account: &account, expected: &label},
		{description: "neither"},
	}
	for _, tc := range tt {
		t.Run(tc.description, func(t *testing.T) {
			m, err := GetTransactionDetail{Category: "receive", Label: tc.label, Account: tc.account}.IntoModel()
			require.NoError(t, err)
			assert.Equal(t, tc.expected, m.Label)
		})
	}
}

func TestGetWalletInfoSeedIDAlias(t *testing.T) {
	base := GetWalletInfo{WalletName: "w", WalletVersion: 169900, PayTxFee: 0.0001}

	legacy := base
	legacy.HDMasterKeyID = strPtr(testSeedID)
	m, err := legacy.IntoModel()
	require.NoError(t, err)
	require.NotNil(t, m.HDSeedID)
	assert.Equal(t, testSeedID, m.HDSeedID.String())
	assert.Nil(t, m.AvoidReuse)
	assert.Nil(t, m.Scanning)
	assert.Equal(t, amount.FromSat(10_000), m.PayTxFee.PerKvB())

	// A bad alias value is reported under the alias's own name.
	legacy.HDMasterKeyID = strPtr("abcd")
	_, err = legacy.IntoModel()
	var wErr *GetWalletInfoError
	require.ErrorAs(t, err, &wErr)
	assert.Equal(t, GetWalletInfoFieldHDMasterKeyID, wErr.Field)

	both := base
	both.HDSeedID = strPtr("abcd")
	both.HDMasterKeyID = strPtr(testSeedID)
	_, err = both.IntoModel()
	require.ErrorAs(t, err, &wErr)
	assert.Equal(t, GetWalletInfoFieldHDSeedID, wErr.Field)
}

func TestGetAddressInfo(t *testing.T) {
	raw := `{
		"address": "` + testAddress + `",
		"scriptPubKey": "` + testScript + `",
		"ismine": true,
		"iswatchonly": false,
		"isscript": false,
		"iswitness": true,
		"witness_version": 0,
		"witness_program": "` + testSeedID + `",
		"pubkey": "` + testPubKey + `",
		"iscompressed": true,
		"account": "savings",
		"timestamp": 1546300800,
		"hdkeypath": "m/0'/0'/7'",
		"hdmasterkeyid": "` + testSeedID + `",
		"labels": [{"name": "savings", "purpose": "receive"}]
	}`
	m, err := decode[GetAddressInfo](t, raw).IntoModel()
	require.NoError(t, err)
	assert.Equal(t, testAddress, m.Address.String())
	require.NotNil(t, m.WitnessProgram)
	assert.Equal(t, byte(0), m.WitnessProgram.Version)
	require.NotNil(t, m.PubKey)
	assert.True(t, m.PubKey.IsCompressed())
	assert.Equal(t, "savings", m.Label)
	assert.Equal(t, "m/0'/0'/7'", m.HDKeyPath.String())
	require.NotNil(t, m.HDSeedID)
	assert.Nil(t, m.Solvable)
	assert.Nil(t, m.HDMasterFingerprint)
	require.Len(t, m.Labels, 1)
	assert.Equal(t, model.AddressPurposeReceive, m.Labels[0].Purpose)
}

func TestGetAddressInfoEmbeddedFailure(t *testing.T) {
	g := GetAddressInfo{
		Address:      testP2SH,
		ScriptPubKey: "a914751e76e8199196d454941c45d1b3a323f1433bd687",
		IsScript:     true,
		Embedded: &GetAddressInfoEmbedded{
			Address:      testAddress,
			ScriptPubKey: "76a914",
		},
	}
	_, err := g.IntoModel()

	var outer *GetAddressInfoError
	require.ErrorAs(t, err, &outer)
	assert.Equal(t, GetAddressInfoFieldEmbedded, outer.Field)

	var inner *GetAddressInfoEmbeddedError
	require.ErrorAs(t, outer.Err, &inner)
	assert.Equal(t, GetAddressInfoEmbeddedFieldScriptPubKey, inner.Field)
	assert.ErrorIs(t, err, convert.ErrInvalidScript)
}

func TestGetAddressInfoKeyHash(t *testing.T) {
	tt := []struct {
		description string
		program     string
		pubkey      *string
		expectedErr error
	}{
		{description: "program commits to pubkey", program: testSeedID, pubkey: strPtr(testPubKey)},
		{description: "program without pubkey", program: "00000000000000000000000000000000000000ff"},
		{
			description: "program of another key",
			program:     "00000000000000000000000000000000000000ff",
			pubkey:      strPtr(testPubKey),
			expectedErr: convert.ErrInvalidWitnessProgram,
		},
	}
	for _, tc := range tt {
		t.Run(tc.description, func(t *testing.T) {
			version := int64(0)
			g := GetAddressInfo{
				Address:        testAddress,
				ScriptPubKey:   testScript,
				IsWitness:      true,
				WitnessVersion: &version,
				WitnessProgram: strPtr(tc.program),
				PubKey:         tc.pubkey,
			}
			_, err := g.IntoModel()
			if tc.expectedErr == nil {
				require.NoError(t, err)
				return
			}
			var aErr *GetAddressInfoError
			require.ErrorAs(t, err, &aErr)
			assert.Equal(t, GetAddressInfoFieldPubKey, aErr.Field)
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func TestListAddressGroupingsDecode(t *testing.T) {
	raw := `[[["` + testP2PKH + `", 0.25, "change"], ["` + testAddress + `", 0]]]`
	l := decode[ListAddressGroupings](t, raw)
	require.Len(t, l, 1)
	require.Len(t, l[0], 2)
	assert.Nil(t, l[0][1].Label)

	m, err := l.IntoModel()
	require.NoError(t, err)
	assert.Equal(t, amount.FromSat(25_000_000), m.Groups[0][0].Amount)
	require.NotNil(t, m.Groups[0][0].Label)
	assert.Equal(t, "change", *m.Groups[0][0].Label)

	encoded, err := json.Marshal(l)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(encoded))

	var bad ListAddressGroupings
	assert.Error(t, json.Unmarshal([]byte(`[[["`+testP2PKH+`"]]]`), &bad))
}

func TestListAddressGroupingsLocation(t *testing.T) {
	l := ListAddressGroupings{
		{{Address: testP2PKH, Amount: 1}},
		{{Address: testAddress, Amount: 1}, {Address: testP2SH, Amount: -1}},
	}
	_, err := l.IntoModel()

	var group *ListAddressGroupingsError
	require.ErrorAs(t, err, &group)
	assert.Equal(t, 1, group.Index)
	var item *convert.IndexError
	require.ErrorAs(t, group.Err, &item)
	assert.Equal(t, 1, item.Index)

	var itemErr *ListAddressGroupingsItemError
	require.ErrorAs(t, err, &itemErr)
	assert.Equal(t, ListAddressGroupingsItemFieldAmount, itemErr.Field)
	assert.ErrorIs(t, err, convert.ErrOutOfRange)
}

func TestListLockUnspent(t *testing.T) {
	l := decode[ListLockUnspent](t, `[{"txid":"`+testTxid+`","vout":3}]`)
	m, err := l.IntoModel()
	require.NoError(t, err)
	require.Len(t, m.Outpoints, 1)
	assert.Equal(t, testTxid, m.Outpoints[0].Hash.String())
	assert.Equal(t, uint32(3), m.Outpoints[0].Index)

	_, err = ListLockUnspent{{Txid: testTxid, Vout: -1}}.IntoModel()
	var idx *ListLockUnspentError
	require.ErrorAs(t, err, &idx)
	assert.Equal(t, 0, idx.Index)
	var itemErr *ListLockUnspentItemError
	require.ErrorAs(t, err, &itemErr)
	assert.Equal(t, ListLockUnspentItemFieldVout, itemErr.Field)
}

func TestListUnspent(t *testing.T) {
	raw := `[{
		"txid": "` + testTxid + `",
		"vout": 0,
		"address": "` + testAddress + `",
		"account": "legacy",
		"scriptPubKey": "` + testScript + `",
		"amount": 0.1,
		"confirmations": 6,
		"spendable": true,
		"solvable": true,
		"safe": true
	}]`
	m, err := decode[ListUnspent](t, raw).IntoModel()
	require.NoError(t, err)
	require.Len(t, m.Items, 1)
	assert.Equal(t, "legacy", m.Items[0].Label)
	assert.Equal(t, uint32(6), m.Items[0].Confirmations)
	assert.Nil(t, m.Items[0].RedeemScript)
	require.NotNil(t, m.Items[0].Address)
	assert.Equal(t, testAddress, m.Items[0].Address.String())
}

func TestListUnspentWithoutAddress(t *testing.T) {
	// Bare multisig and P2PK outputs pay no address, so the server omits the key.
	raw := `[
		{"txid": "` + testTxid + `", "vout": 0, "address": "` + testAddress + `", "scriptPubKey": "` + testScript + `", "amount": 0.1, "confirmations": 6},
		{"txid": "` + testTxid + `", "vout": 1, "scriptPubKey": "` + testMultisig + `", "amount": 0.2, "confirmations": 6}
	]`
	m, err := decode[ListUnspent](t, raw).IntoModel()
	require.NoError(t, err)
	require.Len(t, m.Items, 2)
	assert.NotNil(t, m.Items[0].Address)
	assert.Nil(t, m.Items[1].Address)
	assert.Equal(t, amount.FromSat(20_000_000), m.Items[1].Amount)
}

func TestListUnspentLocation(t *testing.T) {
	_, err := ListUnspent{
		{Txid: testTxid, ScriptPubKey: testScript, Amount: 1},
		{Txid: testTxid, ScriptPubKey: testScript, Amount: -1},
	}.IntoModel()

	var seq *ListUnspentError
	require.ErrorAs(t, err, &seq)
	assert.Equal(t, 1, seq.Index)
	var itemErr *ListUnspentItemError
	require.ErrorAs(t, err, &itemErr)
	assert.Equal(t, ListUnspentItemFieldAmount, itemErr.Field)

	var other *ListTransactionsError
	assert.NotErrorAs(t, err, &other)
}

func TestListSinceBlock(t *testing.T) {
	l := ListSinceBlock{
		Transactions: []ListSinceBlockTransaction{{Category: "receive", Amount: 1, Txid: testTxid, Bip125Replaceable: "no"}},
		LastBlock:    testTxid,
	}
	m, err := l.IntoModel()
	require.NoError(t, err)
	assert.Len(t, m.Transactions, 1)
	assert.Nil(t, m.Removed)

	l.Removed = []ListSinceBlockTransaction{{Category: "receive", Txid: "00", Bip125Replaceable: "no"}}
	_, err = l.IntoModel()
	var sErr *ListSinceBlockError
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, ListSinceBlockFieldRemoved, sErr.Field)
}

func TestListTransactionsUnknownCategory(t *testing.T) {
	_, err := ListTransactions{{Category: "move", Txid: testTxid, Bip125Replaceable: "no"}}.IntoModel()
	var variant *convert.UnknownVariantError
	require.ErrorAs(t, err, &variant)
	assert.Equal(t, "move", variant.Raw)
}

func TestListReceivedByAddress(t *testing.T) {
	l := ListReceivedByAddress{{Address: testP2PKH, Account: strPtr("a"), Amount: 2, Confirmations: 1, Txids: []string{testTxid}}}
	m, err := l.IntoModel()
	require.NoError(t, err)
	assert.Equal(t, "a", m.Items[0].Label)
	assert.Len(t, m.Items[0].Txids, 1)
}

func TestGetNetworkInfo(t *testing.T) {
	raw := `{
		"version": 170100,
		"subversion": "/Satoshi:0.17.1/",
		"protocolversion": 70015,
		"localservices": "000000000000040d",
		"localrelay": true,
		"timeoffset": -2,
		"connections": 8,
		"networkactive": true,
		"networks": [{"name": "ipv4", "limited": false, "reachable": true, "proxy": "", "proxy_randomize_credentials": false}],
		"relayfee": 0.00001,
		"incrementalfee": 0.00001,
		"localaddresses": [{"address": "203.0.113.5", "port": 8333, "score": 1}],
		"warnings": ""
	}`
	m, err := decode[GetNetworkInfo](t, raw).IntoModel()
	require.NoError(t, err)
	assert.Equal(t, uint32(17), m.MajorVersion())
	assert.Equal(t, uint64(0x40d), m.LocalServices)
	assert.Equal(t, uint16(8333), m.LocalAddresses[0].Port)
	assert.Equal(t, amount.FromSat(1000), m.RelayFee.PerKvB())

	_, err = GetNetworkInfo{LocalAddresses: []GetNetworkInfoAddress{{Port: 70000}}, LocalServices: "00"}.IntoModel()
	var aErr *GetNetworkInfoAddressError
	require.ErrorAs(t, err, &aErr)
	assert.Equal(t, GetNetworkInfoAddressFieldPort, aErr.Field)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, Version, r.Version())
	assert.Contains(t, r.List(), "getbalance")
	assert.NotContains(t, r.List(), "getbalances")

	out, err := r.Convert("getbalance", json.RawMessage(`0.5`))
	require.NoError(t, err)
	assert.Equal(t, model.GetBalance{Balance: amount.FromSat(50_000_000)}, out)

	_, err = r.Convert("getbalance", json.RawMessage(`-1`))
	var balErr *GetBalanceError
	assert.ErrorAs(t, err, &balErr)
}

func strPtr(s string) *string {
	return &s
}
