// Package v19 holds the wire records of Bitcoin Core v0.19. Records whose reply
// did not change since v0.18 are aliases of the v18 ones.
package v19

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/LeJamon/gocorepc/internal/convert"
	"github.com/LeJamon/gocorepc/internal/model"
	"github.com/LeJamon/gocorepc/internal/rpc/v18"
)

// Types for methods found under the `== Wallet ==` section of the API docs.

type (
	AddMultisigAddress    = v18.AddMultisigAddress
	BumpFee               = v18.BumpFee
	CreateWallet          = v18.CreateWallet
	DumpPrivKey           = v18.DumpPrivKey
	DumpWallet            = v18.DumpWallet
	GetAddressesByLabel   = v18.GetAddressesByLabel
	GetAddressInfo        = v18.GetAddressInfo
	GetBalance            = v18.GetBalance
	GetNewAddress         = v18.GetNewAddress
	GetRawChangeAddress   = v18.GetRawChangeAddress
	GetReceivedByAddress  = v18.GetReceivedByAddress
	GetReceivedByLabel    = v18.GetReceivedByLabel
	GetTransaction        = v18.GetTransaction
	GetUnconfirmedBalance = v18.GetUnconfirmedBalance
	ListAddressGroupings  = v18.ListAddressGroupings
	ListLabels            = v18.ListLabels
	ListLockUnspent       = v18.ListLockUnspent
	ListReceivedByAddress = v18.ListReceivedByAddress
	ListSinceBlock        = v18.ListSinceBlock
	ListTransactions      = v18.ListTransactions
	ListUnspent           = v18.ListUnspent
	ListWalletDir         = v18.ListWalletDir
	ListWallets           = v18.ListWallets
	LoadWallet            = v18.LoadWallet
	SendToAddress         = v18.SendToAddress

	GetNetworkInfo = v18.GetNetworkInfo
)

// GetBalances is the result of `getbalances`.
type GetBalances struct {
	Mine GetBalancesMine `json:"mine"`
	// Only when the wallet has watch-only addresses.
	WatchOnly *GetBalancesWatchOnly `json:"watchonly,omitempty"`
}

// GetBalancesMine is the `mine` field of GetBalances.
type GetBalancesMine struct {
	Trusted          float64 `json:"trusted"`
	UntrustedPending float64 `json:"untrusted_pending"`
	Immature         float64 `json:"immature"`
	// Only when the wallet has avoid_reuse set.
	Used *float64 `json:"used,omitempty"`
}

// GetBalancesWatchOnly is the `watchonly` field of GetBalances.
type GetBalancesWatchOnly struct {
	Trusted          float64 `json:"trusted"`
	UntrustedPending float64 `json:"untrusted_pending"`
	Immature         float64 `json:"immature"`
}

type GetBalancesField string

func (f GetBalancesField) String() string { return string(f) }

const (
	GetBalancesFieldMine      GetBalancesField = "mine"
	GetBalancesFieldWatchOnly GetBalancesField = "watchonly"
)

type GetBalancesError = convert.FieldError[GetBalancesField]

type GetBalancesMineField string

func (f GetBalancesMineField) String() string { return string(f) }

const (
	GetBalancesMineFieldTrusted          GetBalancesMineField = "trusted"
	GetBalancesMineFieldUntrustedPending GetBalancesMineField = "untrusted_pending"
	GetBalancesMineFieldImmature         GetBalancesMineField = "immature"
	GetBalancesMineFieldUsed             GetBalancesMineField = "used"
)

type GetBalancesMineError = convert.FieldError[GetBalancesMineField]

type GetBalancesWatchOnlyField string

func (f GetBalancesWatchOnlyField) String() string { return string(f) }

const (
	GetBalancesWatchOnlyFieldTrusted          GetBalancesWatchOnlyField = "trusted"
	GetBalancesWatchOnlyFieldUntrustedPending GetBalancesWatchOnlyField = "untrusted_pending"
	GetBalancesWatchOnlyFieldImmature         GetBalancesWatchOnlyField = "immature"
)

type GetBalancesWatchOnlyError = convert.FieldError[GetBalancesWatchOnlyField]

func (g GetBalances) IntoModel() (model.GetBalances, error) {
	mine, err := g.Mine.IntoModel()
	if err != nil {
		return model.GetBalances{}, convert.Field(GetBalancesFieldMine, err)
	}
	out := model.GetBalances{Mine: mine}
	if g.WatchOnly != nil {
		watchOnly, err := g.WatchOnly.IntoModel()
		if err != nil {
			return model.GetBalances{}, convert.Field(GetBalancesFieldWatchOnly, err)
		}
		out.WatchOnly = &watchOnly
	}
	return out, nil
}

func (m GetBalancesMine) IntoModel() (model.Balances, error) {
	var out model.Balances
	var err error

	if out.Trusted, err = convert.Amount(m.Trusted); err != nil {
		return model.Balances{}, convert.Field(GetBalancesMineFieldTrusted, err)
	}
	if out.UntrustedPending, err = convert.Amount(m.UntrustedPending); err != nil {
		return model.Balances{}, convert.Field(GetBalancesMineFieldUntrustedPending, err)
	}
	if out.Immature, err = convert.Amount(m.Immature); err != nil {
		return model.Balances{}, convert.Field(GetBalancesMineFieldImmature, err)
	}
	if out.Used, err = convert.OptionalAmount(m.Used); err != nil {
		return model.Balances{}, convert.Field(GetBalancesMineFieldUsed, err)
	}
	return out, nil
}

func (w GetBalancesWatchOnly) IntoModel() (model.Balances, error) {
	var out model.Balances
	var err error

	if out.Trusted, err = convert.Amount(w.Trusted); err != nil {
		return model.Balances{}, convert.Field(GetBalancesWatchOnlyFieldTrusted, err)
	}
	if out.UntrustedPending, err = convert.Amount(w.UntrustedPending); err != nil {
		return model.Balances{}, convert.Field(GetBalancesWatchOnlyFieldUntrustedPending, err)
	}
	if out.Immature, err = convert.Amount(w.Immature); err != nil {
		return model.Balances{}, convert.Field(GetBalancesWatchOnlyFieldImmature, err)
	}
	return out, nil
}

// GetWalletInfo is the result of `getwalletinfo`.
type GetWalletInfo struct {
	WalletName         string  `json:"walletname"`
	WalletVersion      int64   `json:"walletversion"`
	Balance            float64 `json:"balance"`
	UnconfirmedBalance float64 `json:"unconfirmed_balance"`
	ImmatureBalance    float64 `json:"immature_balance"`
	TxCount            int64   `json:"txcount"`
	KeypoolOldest      int64   `json:"keypoololdest"`
	KeypoolSize        int64   `json:"keypoolsize"`
	// Only when the wallet uses a separate internal keypool.
	KeypoolSizeHDInternal *int64 `json:"keypoolsize_hd_internal,omitempty"`
	// Only for encrypted wallets; 0 when locked.
	UnlockedUntil *int64 `json:"unlocked_until,omitempty"`
	// BTC per 1000 vbytes.
	PayTxFee           float64  `json:"paytxfee"`
	HDSeedID           *string  `json:"hdseedid,omitempty"`
	PrivateKeysEnabled bool     `json:"private_keys_enabled"`
	AvoidReuse         bool     `json:"avoid_reuse"`
	Scanning           Scanning `json:"scanning"`
}

// Scanning is the `scanning` field of GetWalletInfo: the literal false when no
// rescan runs, or an object describing the rescan in progress. null also decodes
// as no rescan.
type Scanning struct {
	Active bool
	// Seconds.
	Duration int64
	// Between 0 and 1.
	Progress float64
}

func (s *Scanning) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("false")) || bytes.Equal(data, []byte("null")) {
		*s = Scanning{}
		return nil
	}
	var raw struct {
		Duration int64   `json:"duration"`
		Progress float64 `json:"progress"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("scanning: want false or an object: %w", err)
	}
	*s = Scanning{Active: true, Duration: raw.Duration, Progress: raw.Progress}
	return nil
}

func (s Scanning) MarshalJSON() ([]byte, error) {
	if !s.Active {
		return []byte("false"), nil
	}
	return json.Marshal(struct {
		Duration int64   `json:"duration"`
		Progress float64 `json:"progress"`
	}{s.Duration, s.Progress})
}

func (s Scanning) IntoModel() (*model.WalletScan, error) {
	if !s.Active {
		return nil, nil
	}
	if s.Duration < 0 {
		return nil, fmt.Errorf("%w: duration %d", convert.ErrOutOfRange, s.Duration)
	}
	if s.Progress < 0 || s.Progress > 1 {
		return nil, fmt.Errorf("%w: progress %v", convert.ErrOutOfRange, s.Progress)
	}
	return &model.WalletScan{
		Duration: time.Duration(s.Duration) * time.Second,
		Progress: s.Progress,
	}, nil
}

type GetWalletInfoField string

func (f GetWalletInfoField) String() string { return string(f) }

const (
	GetWalletInfoFieldWalletVersion         GetWalletInfoField = "walletversion"
	GetWalletInfoFieldBalance               GetWalletInfoField = "balance"
	GetWalletInfoFieldUnconfirmedBalance    GetWalletInfoField = "unconfirmed_balance"
	GetWalletInfoFieldImmatureBalance       GetWalletInfoField = "immature_balance"
	GetWalletInfoFieldTxCount               GetWalletInfoField = "txcount"
	GetWalletInfoFieldKeypoolSize           GetWalletInfoField = "keypoolsize"
	GetWalletInfoFieldKeypoolSizeHDInternal GetWalletInfoField = "keypoolsize_hd_internal"
	GetWalletInfoFieldPayTxFee              GetWalletInfoField = "paytxfee"
	GetWalletInfoFieldHDSeedID              GetWalletInfoField = "hdseedid"
	GetWalletInfoFieldScanning              GetWalletInfoField = "scanning"
)

type GetWalletInfoError = convert.FieldError[GetWalletInfoField]

func (g GetWalletInfo) IntoModel() (model.GetWalletInfo, error) {
	var out model.GetWalletInfo
	var err error

	if out.WalletVersion, err = convert.Uint32(g.WalletVersion); err != nil {
		return model.GetWalletInfo{}, convert.Field(GetWalletInfoFieldWalletVersion, err)
	}
	if out.Balance, err = convert.Amount(g.Balance); err != nil {
		return model.GetWalletInfo{}, convert.Field(GetWalletInfoFieldBalance, err)
	}
	if out.UnconfirmedBalance, err = convert.Amount(g.UnconfirmedBalance); err != nil {
		return model.GetWalletInfo{}, convert.Field(GetWalletInfoFieldUnconfirmedBalance, err)
	}
	if out.ImmatureBalance, err = convert.Amount(g.ImmatureBalance); err != nil {
		return model.GetWalletInfo{}, convert.Field(GetWalletInfoFieldImmatureBalance, err)
	}
	if out.TxCount, err = convert.Uint32(g.TxCount); err != nil {
		return model.GetWalletInfo{}, convert.Field(GetWalletInfoFieldTxCount, err)
	}
	if out.KeypoolSize, err = convert.Uint32(g.KeypoolSize); err != nil {
		return model.GetWalletInfo{}, convert.Field(GetWalletInfoFieldKeypoolSize, err)
	}
	if out.KeypoolSizeHDInternal, err = convert.OptionalUint32(g.KeypoolSizeHDInternal); err != nil {
		return model.GetWalletInfo{}, convert.Field(GetWalletInfoFieldKeypoolSizeHDInternal, err)
	}
	if out.PayTxFee, err = convert.FeeRate(g.PayTxFee); err != nil {
		return model.GetWalletInfo{}, convert.Field(GetWalletInfoFieldPayTxFee, err)
	}
	if out.HDSeedID, err = convert.OptionalHash160(g.HDSeedID); err != nil {
		return model.GetWalletInfo{}, convert.Field(GetWalletInfoFieldHDSeedID, err)
	}
	if out.Scanning, err = g.Scanning.IntoModel(); err != nil {
		return model.GetWalletInfo{}, convert.Field(GetWalletInfoFieldScanning, err)
	}

	out.WalletName = g.WalletName
	out.KeypoolOldest = convert.UnixTime(g.KeypoolOldest)
	out.UnlockedUntil = convert.OptionalUnixTime(g.UnlockedUntil)
	out.PrivateKeysEnabled = g.PrivateKeysEnabled
	out.AvoidReuse = &g.AvoidReuse
	return out, nil
}
