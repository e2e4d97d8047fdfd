// Package v18 holds the wire records of Bitcoin Core v0.18. Records whose reply
// did not change since v0.17 are aliases of the v17 ones.
//
// v0.18 removed the deprecated `account` and `hdmasterkeyid` aliases, so every
// record that carried them is redefined here without them.
package v18

import (
	"github.com/LeJamon/gocorepc/internal/convert"
	"github.com/LeJamon/gocorepc/internal/model"
	"github.com/LeJamon/gocorepc/internal/rpc/v17"
)

// Types for methods found under the `== Wallet ==` section of the API docs.

type (
	AddMultisigAddress    = v17.AddMultisigAddress
	BumpFee               = v17.BumpFee
	CreateWallet          = v17.CreateWallet
	DumpPrivKey           = v17.DumpPrivKey
	DumpWallet            = v17.DumpWallet
	GetAddressesByLabel   = v17.GetAddressesByLabel
	GetBalance            = v17.GetBalance
	GetNewAddress         = v17.GetNewAddress
	GetRawChangeAddress   = v17.GetRawChangeAddress
	GetReceivedByAddress  = v17.GetReceivedByAddress
	GetUnconfirmedBalance = v17.GetUnconfirmedBalance
	ListAddressGroupings  = v17.ListAddressGroupings
	ListLabels            = v17.ListLabels
	ListLockUnspent       = v17.ListLockUnspent
	ListWallets           = v17.ListWallets
	LoadWallet            = v17.LoadWallet
	SendToAddress         = v17.SendToAddress

	GetNetworkInfo = v17.GetNetworkInfo
)

// GetReceivedByLabel is the result of `getreceivedbylabel`, in BTC.
type GetReceivedByLabel float64

type GetReceivedByLabelField string

func (f GetReceivedByLabelField) String() string { return string(f) }

const GetReceivedByLabelFieldAmount GetReceivedByLabelField = "amount"

type GetReceivedByLabelError = convert.FieldError[GetReceivedByLabelField]

func (g GetReceivedByLabel) IntoModel() (model.GetReceivedByLabel, error) {
	amt, err := convert.Amount(float64(g))
	if err != nil {
		return model.GetReceivedByLabel{}, convert.Field(GetReceivedByLabelFieldAmount, err)
	}
	return model.GetReceivedByLabel{Amount: amt}, nil
}

// ListWalletDir is the result of `listwalletdir`.
type ListWalletDir struct {
	Wallets []ListWalletDirWallet `json:"wallets"`
}

// ListWalletDirWallet is one wallet found in the wallet directory.
type ListWalletDirWallet struct {
	Name string `json:"name"`
}

func (l ListWalletDir) IntoModel() (model.ListWalletDir, error) {
	names := make([]string, 0, len(l.Wallets))
	for _, w := range l.Wallets {
		names = append(names, w.Name)
	}
	return model.ListWalletDir{Wallets: names}, nil
}
