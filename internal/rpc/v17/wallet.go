// Package v17 holds the wire records of Bitcoin Core v0.17 and their conversion
// into the version-independent model.
//
// A wire record mirrors one reply exactly, with raw strings and floats. Its
// IntoModel method validates each fallible field in declaration order and stops
// at the first failure, returning the record's own error type tagged with that
// field.
package v17

import (
	"sort"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/LeJamon/gocorepc/internal/amount"
	"github.com/LeJamon/gocorepc/internal/convert"
	"github.com/LeJamon/gocorepc/internal/model"
)

// Types for methods found under the `== Wallet ==` section of the API docs.

// AddMultisigAddress is the result of `addmultisigaddress`.
type AddMultisigAddress struct {
	Address      string `json:"address"`
	RedeemScript string `json:"redeemScript"`
}

type AddMultisigAddressField string

func (f AddMultisigAddressField) String() string { return string(f) }

const (
	AddMultisigAddressFieldAddress      AddMultisigAddressField = "address"
	AddMultisigAddressFieldRedeemScript AddMultisigAddressField = "redeemScript"
)

// AddMultisigAddressError is returned when an AddMultisigAddress fails to convert.
type AddMultisigAddressError = convert.FieldError[AddMultisigAddressField]

func (a AddMultisigAddress) IntoModel() (model.AddMultisigAddress, error) {
	address, err := convert.CheckedAddress(a.Address)
	if err != nil {
		return model.AddMultisigAddress{}, convert.Field(AddMultisigAddressFieldAddress, err)
	}
	redeemScript, err := convert.Script(a.RedeemScript)
	if err != nil {
		return model.AddMultisigAddress{}, convert.Field(AddMultisigAddressFieldRedeemScript, err)
	}
	return model.AddMultisigAddress{Address: address, RedeemScript: redeemScript}, nil
}

// BumpFee is the result of `bumpfee`. Both fees are in BTC.
type BumpFee struct {
	Txid        string   `json:"txid"`
	OriginalFee float64  `json:"origfee"`
	Fee         float64  `json:"fee"`
	Errors      []string `json:"errors"`
}

type BumpFeeField string

func (f BumpFeeField) String() string { return string(f) }

const (
	BumpFeeFieldTxid        BumpFeeField = "txid"
	BumpFeeFieldOriginalFee BumpFeeField = "origfee"
	BumpFeeFieldFee         BumpFeeField = "fee"
)

type BumpFeeError = convert.FieldError[BumpFeeField]

func (b BumpFee) IntoModel() (model.BumpFee, error) {
	txid, err := convert.Hash(b.Txid)
	if err != nil {
		return model.BumpFee{}, convert.Field(BumpFeeFieldTxid, err)
	}
	originalFee, err := convert.Amount(b.OriginalFee)
	if err != nil {
		return model.BumpFee{}, convert.Field(BumpFeeFieldOriginalFee, err)
	}
	fee, err := convert.Amount(b.Fee)
	if err != nil {
		return model.BumpFee{}, convert.Field(BumpFeeFieldFee, err)
	}
	return model.BumpFee{
		Txid:        txid,
		OriginalFee: originalFee,
		Fee:         fee,
		Errors:      b.Errors,
	}, nil
}

// ReplacementTxid returns the id of the replacement transaction.
func (b BumpFee) ReplacementTxid() (chainhash.Hash, error) {
	m, err := b.IntoModel()
	if err != nil {
		return chainhash.Hash{}, err
	}
	return m.Txid, nil
}

// CreateWallet is the result of `createwallet`.
type CreateWallet struct {
	// The full path when the wallet was created by path.
	Name    string `json:"name"`
	Warning string `json:"warning"`
}

func (c CreateWallet) IntoModel() (model.CreateWallet, error) {
	return model.CreateWallet{Name: c.Name, Warnings: warnings(c.Warning)}, nil
}

// WalletName returns the name of the created wallet.
func (c CreateWallet) WalletName() string {
	return c.Name
}

// DumpPrivKey is the result of `dumpprivkey`.
type DumpPrivKey string

type DumpPrivKeyField string

func (f DumpPrivKeyField) String() string { return string(f) }

const DumpPrivKeyFieldKey DumpPrivKeyField = "key"

type DumpPrivKeyError = convert.FieldError[DumpPrivKeyField]

func (d DumpPrivKey) IntoModel() (model.DumpPrivKey, error) {
	key, err := convert.PrivateKey(string(d))
	if err != nil {
		return model.DumpPrivKey{}, convert.Field(DumpPrivKeyFieldKey, err)
	}
	return model.DumpPrivKey{Key: key}, nil
}

// Key returns the dumped private key.
func (d DumpPrivKey) Key() (*btcutil.WIF, error) {
	m, err := d.IntoModel()
	if err != nil {
		return nil, err
	}
	return m.Key, nil
}

// DumpWallet is the result of `dumpwallet`.
type DumpWallet struct {
	// Absolute path of the dump on the server's filesystem.
	FileName string `json:"filename"`
}

func (d DumpWallet) IntoModel() (model.DumpWallet, error) {
	return model.DumpWallet{FileName: d.FileName}, nil
}

// GetAddressesByLabel is the result of `getaddressesbylabel`, keyed by address.
type GetAddressesByLabel map[string]AddressInformation

// AddressInformation is one value of GetAddressesByLabel.
type AddressInformation struct {
	Purpose string `json:"purpose"`
}

type GetAddressesByLabelField string

func (f GetAddressesByLabelField) String() string { return string(f) }

const (
	GetAddressesByLabelFieldAddress GetAddressesByLabelField = "address"
	GetAddressesByLabelFieldPurpose GetAddressesByLabelField = "purpose"
)

type GetAddressesByLabelError = convert.FieldError[GetAddressesByLabelField]

// IntoModel converts the entries in address order, so the first failure reported
// does not depend on map iteration.
func (g GetAddressesByLabel) IntoModel() (model.GetAddressesByLabel, error) {
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	addresses := make([]model.LabeledAddress, 0, len(keys))
	for _, k := range keys {
		address, err := convert.CheckedAddress(k)
		if err != nil {
			return model.GetAddressesByLabel{}, convert.Field(GetAddressesByLabelFieldAddress, convert.AtKey(k, err))
		}
		purpose, err := convert.Enum(g[k].Purpose, AddressPurposes)
		if err != nil {
			return model.GetAddressesByLabel{}, convert.Field(GetAddressesByLabelFieldPurpose, convert.AtKey(k, err))
		}
		addresses = append(addresses, model.LabeledAddress{Address: address, Purpose: purpose})
	}
	return model.GetAddressesByLabel{Addresses: addresses}, nil
}

// GetBalance is the result of `getbalance`, in BTC. It is never negative.
type GetBalance float64

type GetBalanceField string

func (f GetBalanceField) String() string { return string(f) }

const GetBalanceFieldBalance GetBalanceField = "balance"

type GetBalanceError = convert.FieldError[GetBalanceField]

func (g GetBalance) IntoModel() (model.GetBalance, error) {
	balance, err := convert.Amount(float64(g))
	if err != nil {
		return model.GetBalance{}, convert.Field(GetBalanceFieldBalance, err)
	}
	return model.GetBalance{Balance: balance}, nil
}

// Balance converts the reply straight to an amount.
func (g GetBalance) Balance() (amount.Amount, error) {
	m, err := g.IntoModel()
	if err != nil {
		return 0, err
	}
	return m.Balance, nil
}

// GetNewAddress is the result of `getnewaddress`.
type GetNewAddress string

type GetNewAddressField string

func (f GetNewAddressField) String() string { return string(f) }

const GetNewAddressFieldAddress GetNewAddressField = "address"

type GetNewAddressError = convert.FieldError[GetNewAddressField]

// IntoModel leaves the address unchecked; the caller picks the network.
func (g GetNewAddress) IntoModel() (model.GetNewAddress, error) {
	address, err := convert.UncheckedAddress(string(g))
	if err != nil {
		return model.GetNewAddress{}, convert.Field(GetNewAddressFieldAddress, err)
	}
	return model.GetNewAddress{Address: address}, nil
}

// Address converts the reply straight to an unchecked address.
func (g GetNewAddress) Address() (model.UncheckedAddress, error) {
	m, err := g.IntoModel()
	if err != nil {
		return model.UncheckedAddress{}, err
	}
	return m.Address, nil
}

// GetRawChangeAddress is the result of `getrawchangeaddress`.
type GetRawChangeAddress string

type GetRawChangeAddressField string

func (f GetRawChangeAddressField) String() string { return string(f) }

const GetRawChangeAddressFieldAddress GetRawChangeAddressField = "address"

type GetRawChangeAddressError = convert.FieldError[GetRawChangeAddressField]

func (g GetRawChangeAddress) IntoModel() (model.GetRawChangeAddress, error) {
	address, err := convert.CheckedAddress(string(g))
	if err != nil {
		return model.GetRawChangeAddress{}, convert.Field(GetRawChangeAddressFieldAddress, err)
	}
	return model.GetRawChangeAddress{Address: address}, nil
}

// Address converts the reply straight to an address.
func (g GetRawChangeAddress) Address() (model.Address, error) {
	m, err := g.IntoModel()
	if err != nil {
		return model.Address{}, err
	}
	return m.Address, nil
}

// GetReceivedByAddress is the result of `getreceivedbyaddress`, in BTC.
type GetReceivedByAddress float64

type GetReceivedByAddressField string

func (f GetReceivedByAddressField) String() string { return string(f) }

const GetReceivedByAddressFieldAmount GetReceivedByAddressField = "amount"

type GetReceivedByAddressError = convert.FieldError[GetReceivedByAddressField]

func (g GetReceivedByAddress) IntoModel() (model.GetReceivedByAddress, error) {
	received, err := convert.Amount(float64(g))
	if err != nil {
		return model.GetReceivedByAddress{}, convert.Field(GetReceivedByAddressFieldAmount, err)
	}
	return model.GetReceivedByAddress{Amount: received}, nil
}

// GetUnconfirmedBalance is the result of `getunconfirmedbalance`, in BTC. The
// server does not document it; it is read as a non-negative amount.
type GetUnconfirmedBalance float64

type GetUnconfirmedBalanceField string

func (f GetUnconfirmedBalanceField) String() string { return string(f) }

const GetUnconfirmedBalanceFieldBalance GetUnconfirmedBalanceField = "balance"

type GetUnconfirmedBalanceError = convert.FieldError[GetUnconfirmedBalanceField]

func (g GetUnconfirmedBalance) IntoModel() (model.GetUnconfirmedBalance, error) {
	balance, err := convert.Amount(float64(g))
	if err != nil {
		return model.GetUnconfirmedBalance{}, convert.Field(GetUnconfirmedBalanceFieldBalance, err)
	}
	return model.GetUnconfirmedBalance{Balance: balance}, nil
}

// Balance converts the reply straight to an amount.
func (g GetUnconfirmedBalance) Balance() (amount.Amount, error) {
	m, err := g.IntoModel()
	if err != nil {
		return 0, err
	}
	return m.Balance, nil
}

// ListLabels is the result of `listlabels`.
type ListLabels []string

func (l ListLabels) IntoModel() (model.ListLabels, error) {
	return model.ListLabels{Labels: []string(l)}, nil
}

// ListWallets is the result of `listwallets`.
type ListWallets []string

func (l ListWallets) IntoModel() (model.ListWallets, error) {
	return model.ListWallets{Wallets: []string(l)}, nil
}

// LoadWallet is the result of `loadwallet`.
type LoadWallet struct {
	Name    string `json:"name"`
	Warning string `json:"warning"`
}

func (l LoadWallet) IntoModel() (model.LoadWallet, error) {
	return model.LoadWallet{Name: l.Name, Warnings: warnings(l.Warning)}, nil
}

// WalletName returns the name of the loaded wallet.
func (l LoadWallet) WalletName() string {
	return l.Name
}

// SendToAddress is the result of `sendtoaddress`.
type SendToAddress string

type SendToAddressField string

func (f SendToAddressField) String() string { return string(f) }

const SendToAddressFieldTxid SendToAddressField = "txid"

type SendToAddressError = convert.FieldError[SendToAddressField]

func (s SendToAddress) IntoModel() (model.SendToAddress, error) {
	txid, err := convert.Hash(string(s))
	if err != nil {
		return model.SendToAddress{}, convert.Field(SendToAddressFieldTxid, err)
	}
	return model.SendToAddress{Txid: txid}, nil
}

// Txid converts the reply straight to a transaction id.
func (s SendToAddress) Txid() (chainhash.Hash, error) {
	m, err := s.IntoModel()
	if err != nil {
		return chainhash.Hash{}, err
	}
	return m.Txid, nil
}

// warnings turns the single warning string of v0.17 into a list. The server
// sends "" when there is nothing to report.
func warnings(w string) []string {
	if w == "" {
		return nil
	}
	return []string{w}
}
