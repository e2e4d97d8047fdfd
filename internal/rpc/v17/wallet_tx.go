package v17

import (
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/wire"

	"github.com/LeJamon/gocorepc/internal/convert"
	"github.com/LeJamon/gocorepc/internal/model"
)

// GetTransaction is the result of `gettransaction`.
type GetTransaction struct {
	// Negative for sends.
	Amount float64 `json:"amount"`
	// Negative, and only present for the send category.
	Fee *float64 `json:"fee,omitempty"`
	// Negative when the transaction conflicts with the chain that many blocks ago.
	Confirmations int64 `json:"confirmations"`
	Generated     *bool `json:"generated,omitempty"`
	// Block fields are absent until the transaction confirms.
	BlockHash         *string                `json:"blockhash,omitempty"`
	BlockIndex        *int64                 `json:"blockindex,omitempty"`
	BlockTime         *int64                 `json:"blocktime,omitempty"`
	Txid              string                 `json:"txid"`
	WalletConflicts   []string               `json:"walletconflicts"`
	Time              int64                  `json:"time"`
	TimeReceived      int64                  `json:"timereceived"`
	Comment           *string                `json:"comment,omitempty"`
	Bip125Replaceable string                 `json:"bip125-replaceable"`
	Details           []GetTransactionDetail `json:"details"`
	Hex               string                 `json:"hex"`
}

type GetTransactionField string

func (f GetTransactionField) String() string { return string(f) }

const (
	GetTransactionFieldAmount            GetTransactionField = "amount"
	GetTransactionFieldFee               GetTransactionField = "fee"
	GetTransactionFieldBlockHash         GetTransactionField = "blockhash"
	GetTransactionFieldBlockIndex        GetTransactionField = "blockindex"
	GetTransactionFieldTxid              GetTransactionField = "txid"
	GetTransactionFieldWalletConflicts   GetTransactionField = "walletconflicts"
	GetTransactionFieldBip125Replaceable GetTransactionField = "bip125-replaceable"
	GetTransactionFieldDetails           GetTransactionField = "details"
	GetTransactionFieldHex               GetTransactionField = "hex"
)

type GetTransactionError = convert.FieldError[GetTransactionField]

func (g GetTransaction) IntoModel() (model.GetTransaction, error) {
	var out model.GetTransaction
	var err error

	if out.Amount, err = convert.SignedAmount(g.Amount); err != nil {
		return model.GetTransaction{}, convert.Field(GetTransactionFieldAmount, err)
	}
	if out.Fee, err = convert.OptionalSignedAmount(g.Fee); err != nil {
		return model.GetTransaction{}, convert.Field(GetTransactionFieldFee, err)
	}
	if out.BlockHash, err = convert.OptionalHash(g.BlockHash); err != nil {
		return model.GetTransaction{}, convert.Field(GetTransactionFieldBlockHash, err)
	}
	if out.BlockIndex, err = convert.OptionalUint32(g.BlockIndex); err != nil {
		return model.GetTransaction{}, convert.Field(GetTransactionFieldBlockIndex, err)
	}
	if out.Txid, err = convert.Hash(g.Txid); err != nil {
		return model.GetTransaction{}, convert.Field(GetTransactionFieldTxid, err)
	}
	if out.WalletConflicts, err = convert.Hashes(g.WalletConflicts); err != nil {
		return model.GetTransaction{}, convert.Field(GetTransactionFieldWalletConflicts, err)
	}
	if out.Bip125Replaceable, err = convert.Enum(g.Bip125Replaceable, Bip125Replaceables); err != nil {
		return model.GetTransaction{}, convert.Field(GetTransactionFieldBip125Replaceable, err)
	}
	out.Details = make([]model.GetTransactionDetail, 0, len(g.Details))
	for i, d := range g.Details {
		detail, err := d.IntoModel()
		if err != nil {
			return model.GetTransaction{}, convert.Field(GetTransactionFieldDetails, convert.AtIndex(i, err))
		}
		out.Details = append(out.Details, detail)
	}
	if out.Tx, err = convert.Transaction(g.Hex); err != nil {
		return model.GetTransaction{}, convert.Field(GetTransactionFieldHex, err)
	}

	out.Confirmations = g.Confirmations
	out.Generated = g.Generated
	out.BlockTime = convert.OptionalUnixTime(g.BlockTime)
	out.Time = convert.UnixTime(g.Time)
	out.TimeReceived = convert.UnixTime(g.TimeReceived)
	out.Comment = g.Comment
	return out, nil
}

// GetTransactionDetail is one entry of the `details` field of GetTransaction.
type GetTransactionDetail struct {
	// DEPRECATED. Alias of label.
	Account *string `json:"account,omitempty"`
	// Absent for outputs that pay no address.
	Address  *string `json:"address,omitempty"`
	Category string  `json:"category"`
	// Negative for sends.
	Amount float64 `json:"amount"`
	Label  *string `json:"label,omitempty"`
	Vout   int64   `json:"vout"`
	// Negative, and only present for the send category.
	Fee       *float64 `json:"fee,omitempty"`
	Abandoned *bool    `json:"abandoned,omitempty"`
}

type GetTransactionDetailField string

func (f GetTransactionDetailField) String() string { return string(f) }

const (
	GetTransactionDetailFieldAddress  GetTransactionDetailField = "address"
	GetTransactionDetailFieldCategory GetTransactionDetailField = "category"
	GetTransactionDetailFieldAmount   GetTransactionDetailField = "amount"
	GetTransactionDetailFieldVout     GetTransactionDetailField = "vout"
	GetTransactionDetailFieldFee      GetTransactionDetailField = "fee"
)

type GetTransactionDetailError = convert.FieldError[GetTransactionDetailField]

func (d GetTransactionDetail) IntoModel() (model.GetTransactionDetail, error) {
	var out model.GetTransactionDetail
	var err error

	if out.Address, err = convert.OptionalCheckedAddress(d.Address); err != nil {
		return model.GetTransactionDetail{}, convert.Field(GetTransactionDetailFieldAddress, err)
	}
	if out.Category, err = convert.Enum(d.Category, TransactionCategories); err != nil {
		return model.GetTransactionDetail{}, convert.Field(GetTransactionDetailFieldCategory, err)
	}
	if out.Amount, err = convert.SignedAmount(d.Amount); err != nil {
		return model.GetTransactionDetail{}, convert.Field(GetTransactionDetailFieldAmount, err)
	}
	if out.Vout, err = convert.Uint32(d.Vout); err != nil {
		return model.GetTransactionDetail{}, convert.Field(GetTransactionDetailFieldVout, err)
	}
	if out.Fee, err = convert.OptionalSignedAmount(d.Fee); err != nil {
		return model.GetTransactionDetail{}, convert.Field(GetTransactionDetailFieldFee, err)
	}

	out.Label = labelOrAccount(d.Label, d.Account)
	out.Abandoned = d.Abandoned
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
	PayTxFee float64 `json:"paytxfee"`
	HDSeedID *string `json:"hdseedid,omitempty"`
	// DEPRECATED. Alias of hdseedid, removed in v0.18.
	HDMasterKeyID      *string `json:"hdmasterkeyid,omitempty"`
	PrivateKeysEnabled bool    `json:"private_keys_enabled"`
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
	GetWalletInfoFieldHDMasterKeyID         GetWalletInfoField = "hdmasterkeyid"
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
	if g.HDSeedID != nil {
		if out.HDSeedID, err = convert.OptionalHash160(g.HDSeedID); err != nil {
			return model.GetWalletInfo{}, convert.Field(GetWalletInfoFieldHDSeedID, err)
		}
	} else if out.HDSeedID, err = convert.OptionalHash160(g.HDMasterKeyID); err != nil {
		return model.GetWalletInfo{}, convert.Field(GetWalletInfoFieldHDMasterKeyID, err)
	}

	out.WalletName = g.WalletName
	out.KeypoolOldest = convert.UnixTime(g.KeypoolOldest)
	out.UnlockedUntil = convert.OptionalUnixTime(g.UnlockedUntil)
	out.PrivateKeysEnabled = g.PrivateKeysEnabled
	return out, nil
}

// ListAddressGroupings is the result of `listaddressgroupings`.
type ListAddressGroupings [][]ListAddressGroupingsItem

// ListAddressGroupingsItem is one address of a grouping. The server encodes it
// as the array [address, amount, label] where label is optional.
type ListAddressGroupingsItem struct {
	Address string
	Amount  float64
	Label   *string
}

func (l *ListAddressGroupingsItem) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) < 2 || len(raw) > 3 {
		return fmt.Errorf("address grouping: want 2 or 3 elements, got %d", len(raw))
	}
	if err := json.Unmarshal(raw[0], &l.Address); err != nil {
		return fmt.Errorf("address grouping address: %w", err)
	}
	if err := json.Unmarshal(raw[1], &l.Amount); err != nil {
		return fmt.Errorf("address grouping amount: %w", err)
	}
	l.Label = nil
	if len(raw) == 3 {
		var label string
		if err := json.Unmarshal(raw[2], &label); err != nil {
			return fmt.Errorf("address grouping label: %w", err)
		}
		l.Label = &label
	}
	return nil
}

func (l ListAddressGroupingsItem) MarshalJSON() ([]byte, error) {
	raw := []any{l.Address, l.Amount}
	if l.Label != nil {
		raw = append(raw, *l.Label)
	}
	return json.Marshal(raw)
}

type ListAddressGroupingsItemField string

func (f ListAddressGroupingsItemField) String() string { return string(f) }

const (
	ListAddressGroupingsItemFieldAddress ListAddressGroupingsItemField = "address"
	ListAddressGroupingsItemFieldAmount  ListAddressGroupingsItemField = "amount"
)

type ListAddressGroupingsItemError = convert.FieldError[ListAddressGroupingsItemField]

// ListAddressGroupingsError locates a failure by group index. Its cause is a
// *convert.IndexError locating the item within the group.
type ListAddressGroupingsError = convert.SequenceError[ListAddressGroupings]

func (l ListAddressGroupings) IntoModel() (model.ListAddressGroupings, error) {
	out := model.ListAddressGroupings{Groups: make([][]model.AddressGrouping, 0, len(l))}
	for i, group := range l {
		g := make([]model.AddressGrouping, 0, len(group))
		for j, item := range group {
			m, err := item.IntoModel()
			if err != nil {
				return model.ListAddressGroupings{}, convert.AtItem[ListAddressGroupings](i, convert.AtIndex(j, err))
			}
			g = append(g, m)
		}
		out.Groups = append(out.Groups, g)
	}
	return out, nil
}

func (l ListAddressGroupingsItem) IntoModel() (model.AddressGrouping, error) {
	address, err := convert.CheckedAddress(l.Address)
	if err != nil {
		return model.AddressGrouping{}, convert.Field(ListAddressGroupingsItemFieldAddress, err)
	}
	amt, err := convert.Amount(l.Amount)
	if err != nil {
		return model.AddressGrouping{}, convert.Field(ListAddressGroupingsItemFieldAmount, err)
	}
	return model.AddressGrouping{Address: address, Amount: amt, Label: l.Label}, nil
}

// ListLockUnspent is the result of `listlockunspent`.
type ListLockUnspent []ListLockUnspentItem

// ListLockUnspentItem is one locked output.
type ListLockUnspentItem struct {
	Txid string `json:"txid"`
	Vout int64  `json:"vout"`
}

type ListLockUnspentItemField string

func (f ListLockUnspentItemField) String() string { return string(f) }

const (
	ListLockUnspentItemFieldTxid ListLockUnspentItemField = "txid"
	ListLockUnspentItemFieldVout ListLockUnspentItemField = "vout"
)

type ListLockUnspentItemError = convert.FieldError[ListLockUnspentItemField]

// ListLockUnspentError locates the locked output that failed.
type ListLockUnspentError = convert.SequenceError[ListLockUnspent]

func (l ListLockUnspent) IntoModel() (model.ListLockUnspent, error) {
	out := model.ListLockUnspent{Outpoints: make([]wire.OutPoint, 0, len(l))}
	for i, item := range l {
		txid, err := convert.Hash(item.Txid)
		if err != nil {
			return model.ListLockUnspent{}, convert.AtItem[ListLockUnspent](i, convert.Field(ListLockUnspentItemFieldTxid, err))
		}
		vout, err := convert.Uint32(item.Vout)
		if err != nil {
			return model.ListLockUnspent{}, convert.AtItem[ListLockUnspent](i, convert.Field(ListLockUnspentItemFieldVout, err))
		}
		out.Outpoints = append(out.Outpoints, *wire.NewOutPoint(&txid, vout))
	}
	return out, nil
}

// ListReceivedByAddress is the result of `listreceivedbyaddress`.
type ListReceivedByAddress []ListReceivedByAddressItem

// ListReceivedByAddressItem is one address of ListReceivedByAddress.
type ListReceivedByAddressItem struct {
	// Only present, and true, when imported addresses were involved.
	InvolvesWatchOnly bool   `json:"involvesWatchonly,omitempty"`
	Address           string `json:"address"`
	// DEPRECATED. Alias of label.
	Account       *string  `json:"account,omitempty"`
	Amount        float64  `json:"amount"`
	Confirmations int64    `json:"confirmations"`
	Label         *string  `json:"label,omitempty"`
	Txids         []string `json:"txids"`
}

type ListReceivedByAddressItemField string

func (f ListReceivedByAddressItemField) String() string { return string(f) }

const (
	ListReceivedByAddressItemFieldAddress       ListReceivedByAddressItemField = "address"
	ListReceivedByAddressItemFieldAmount        ListReceivedByAddressItemField = "amount"
	ListReceivedByAddressItemFieldConfirmations ListReceivedByAddressItemField = "confirmations"
	ListReceivedByAddressItemFieldTxids         ListReceivedByAddressItemField = "txids"
)

type ListReceivedByAddressItemError = convert.FieldError[ListReceivedByAddressItemField]

// ListReceivedByAddressError locates the address that failed.
type ListReceivedByAddressError = convert.SequenceError[ListReceivedByAddress]

func (l ListReceivedByAddress) IntoModel() (model.ListReceivedByAddress, error) {
	out := model.ListReceivedByAddress{Items: make([]model.ListReceivedByAddressItem, 0, len(l))}
	for i, item := range l {
		m, err := item.IntoModel()
		if err != nil {
			return model.ListReceivedByAddress{}, convert.AtItem[ListReceivedByAddress](i, err)
		}
		out.Items = append(out.Items, m)
	}
	return out, nil
}

func (l ListReceivedByAddressItem) IntoModel() (model.ListReceivedByAddressItem, error) {
	var out model.ListReceivedByAddressItem
	var err error

	if out.Address, err = convert.CheckedAddress(l.Address); err != nil {
		return model.ListReceivedByAddressItem{}, convert.Field(ListReceivedByAddressItemFieldAddress, err)
	}
	if out.Amount, err = convert.Amount(l.Amount); err != nil {
		return model.ListReceivedByAddressItem{}, convert.Field(ListReceivedByAddressItemFieldAmount, err)
	}
	if out.Confirmations, err = convert.Uint32(l.Confirmations); err != nil {
		return model.ListReceivedByAddressItem{}, convert.Field(ListReceivedByAddressItemFieldConfirmations, err)
	}
	if out.Txids, err = convert.Hashes(l.Txids); err != nil {
		return model.ListReceivedByAddressItem{}, convert.Field(ListReceivedByAddressItemFieldTxids, err)
	}

	out.InvolvesWatchOnly = l.InvolvesWatchOnly
	if label := labelOrAccount(l.Label, l.Account); label != nil {
		out.Label = *label
	}
	return out, nil
}

// ListSinceBlock is the result of `listsinceblock`.
type ListSinceBlock struct {
	Transactions []ListSinceBlockTransaction `json:"transactions"`
	// Only present when include_removed is set.
	Removed   []ListSinceBlockTransaction `json:"removed,omitempty"`
	LastBlock string                      `json:"lastblock"`
}

type ListSinceBlockField string

func (f ListSinceBlockField) String() string { return string(f) }

const (
	ListSinceBlockFieldTransactions ListSinceBlockField = "transactions"
	ListSinceBlockFieldRemoved      ListSinceBlockField = "removed"
	ListSinceBlockFieldLastBlock    ListSinceBlockField = "lastblock"
)

type ListSinceBlockError = convert.FieldError[ListSinceBlockField]

func (l ListSinceBlock) IntoModel() (model.ListSinceBlock, error) {
	var out model.ListSinceBlock
	var err error

	if out.Transactions, err = sinceBlockTransactions(l.Transactions); err != nil {
		return model.ListSinceBlock{}, convert.Field(ListSinceBlockFieldTransactions, err)
	}
	if out.Removed, err = sinceBlockTransactions(l.Removed); err != nil {
		return model.ListSinceBlock{}, convert.Field(ListSinceBlockFieldRemoved, err)
	}
	if out.LastBlock, err = convert.Hash(l.LastBlock); err != nil {
		return model.ListSinceBlock{}, convert.Field(ListSinceBlockFieldLastBlock, err)
	}
	return out, nil
}

func sinceBlockTransactions(txs []ListSinceBlockTransaction) ([]model.ListSinceBlockTransaction, error) {
	if txs == nil {
		return nil, nil
	}
	out := make([]model.ListSinceBlockTransaction, 0, len(txs))
	for i, tx := range txs {
		m, err := tx.IntoModel()
		if err != nil {
			return nil, convert.AtIndex(i, err)
		}
		out = append(out, m)
	}
	return out, nil
}

// ListSinceBlockTransaction is one transaction of ListSinceBlock.
type ListSinceBlockTransaction struct {
	// DEPRECATED. Alias of label.
	Account *string `json:"account,omitempty"`
	Address *string `json:"address,omitempty"`
	// send has negative amounts, receive positive ones.
	Category string   `json:"category"`
	Amount   float64  `json:"amount"`
	Vout     int64    `json:"vout"`
	Fee      *float64 `json:"fee,omitempty"`
	// Negative when the transaction conflicts with the chain that many blocks ago.
	Confirmations     int64   `json:"confirmations"`
	BlockHash         *string `json:"blockhash,omitempty"`
	BlockIndex        *int64  `json:"blockindex,omitempty"`
	BlockTime         *int64  `json:"blocktime,omitempty"`
	Txid              string  `json:"txid"`
	Time              int64   `json:"time"`
	TimeReceived      int64   `json:"timereceived"`
	Bip125Replaceable string  `json:"bip125-replaceable"`
	Abandoned         *bool   `json:"abandoned,omitempty"`
	Comment           *string `json:"comment,omitempty"`
	Label             *string `json:"label,omitempty"`
	To                *string `json:"to,omitempty"`
}

type ListSinceBlockTransactionField string

func (f ListSinceBlockTransactionField) String() string { return string(f) }

const (
	ListSinceBlockTransactionFieldAddress           ListSinceBlockTransactionField = "address"
	ListSinceBlockTransactionFieldCategory          ListSinceBlockTransactionField = "category"
	ListSinceBlockTransactionFieldAmount            ListSinceBlockTransactionField = "amount"
	ListSinceBlockTransactionFieldVout              ListSinceBlockTransactionField = "vout"
	ListSinceBlockTransactionFieldFee               ListSinceBlockTransactionField = "fee"
	ListSinceBlockTransactionFieldBlockHash         ListSinceBlockTransactionField = "blockhash"
	ListSinceBlockTransactionFieldBlockIndex        ListSinceBlockTransactionField = "blockindex"
	ListSinceBlockTransactionFieldTxid              ListSinceBlockTransactionField = "txid"
	ListSinceBlockTransactionFieldBip125Replaceable ListSinceBlockTransactionField = "bip125-replaceable"
)

type ListSinceBlockTransactionError = convert.FieldError[ListSinceBlockTransactionField]

func (t ListSinceBlockTransaction) IntoModel() (model.ListSinceBlockTransaction, error) {
	var out model.ListSinceBlockTransaction
	var err error

	if out.Address, err = convert.OptionalCheckedAddress(t.Address); err != nil {
		return model.ListSinceBlockTransaction{}, convert.Field(ListSinceBlockTransactionFieldAddress, err)
	}
	if out.Category, err = convert.Enum(t.Category, TransactionCategories); err != nil {
		return model.ListSinceBlockTransaction{}, convert.Field(ListSinceBlockTransactionFieldCategory, err)
	}
	if out.Amount, err = convert.SignedAmount(t.Amount); err != nil {
		return model.ListSinceBlockTransaction{}, convert.Field(ListSinceBlockTransactionFieldAmount, err)
	}
	if out.Vout, err = convert.Uint32(t.Vout); err != nil {
		return model.ListSinceBlockTransaction{}, convert.Field(ListSinceBlockTransactionFieldVout, err)
	}
	if out.Fee, err = convert.OptionalSignedAmount(t.Fee); err != nil {
		return model.ListSinceBlockTransaction{}, convert.Field(ListSinceBlockTransactionFieldFee, err)
	}
	if out.BlockHash, err = convert.OptionalHash(t.BlockHash); err != nil {
		return model.ListSinceBlockTransaction{}, convert.Field(ListSinceBlockTransactionFieldBlockHash, err)
	}
	if out.BlockIndex, err = convert.OptionalUint32(t.BlockIndex); err != nil {
		return model.ListSinceBlockTransaction{}, convert.Field(ListSinceBlockTransactionFieldBlockIndex, err)
	}
	if out.Txid, err = convert.Hash(t.Txid); err != nil {
		return model.ListSinceBlockTransaction{}, convert.Field(ListSinceBlockTransactionFieldTxid, err)
	}
	if out.Bip125Replaceable, err = convert.Enum(t.Bip125Replaceable, Bip125Replaceables); err != nil {
		return model.ListSinceBlockTransaction{}, convert.Field(ListSinceBlockTransactionFieldBip125Replaceable, err)
	}

	out.Confirmations = t.Confirmations
	out.BlockTime = convert.OptionalUnixTime(t.BlockTime)
	out.Time = convert.UnixTime(t.Time)
	out.TimeReceived = convert.UnixTime(t.TimeReceived)
	out.Abandoned = t.Abandoned
	out.Comment = t.Comment
	out.Label = labelOrAccount(t.Label, t.Account)
	out.To = t.To
	return out, nil
}

// ListTransactions is the result of `listtransactions`.
type ListTransactions []ListTransactionsItem

// ListTransactionsItem is one transaction of ListTransactions.
type ListTransactionsItem struct {
	// DEPRECATED. Alias of label.
	Account  *string  `json:"account,omitempty"`
	Address  *string  `json:"address,omitempty"`
	Category string   `json:"category"`
	Amount   float64  `json:"amount"`
	Label    *string  `json:"label,omitempty"`
	Vout     int64    `json:"vout"`
	Fee      *float64 `json:"fee,omitempty"`
	// Negative when the transaction conflicts with the chain.
	Confirmations     int64   `json:"confirmations"`
	Trusted           *bool   `json:"trusted,omitempty"`
	BlockHash         *string `json:"blockhash,omitempty"`
	BlockIndex        *int64  `json:"blockindex,omitempty"`
	BlockTime         *int64  `json:"blocktime,omitempty"`
	Txid              string  `json:"txid"`
	Time              int64   `json:"time"`
	TimeReceived      int64   `json:"timereceived"`
	Comment           *string `json:"comment,omitempty"`
	Bip125Replaceable string  `json:"bip125-replaceable"`
	Abandoned         *bool   `json:"abandoned,omitempty"`
}

type ListTransactionsItemField string

func (f ListTransactionsItemField) String() string { return string(f) }

const (
	ListTransactionsItemFieldAddress           ListTransactionsItemField = "address"
	ListTransactionsItemFieldCategory          ListTransactionsItemField = "category"
	ListTransactionsItemFieldAmount            ListTransactionsItemField = "amount"
	ListTransactionsItemFieldVout              ListTransactionsItemField = "vout"
	ListTransactionsItemFieldFee               ListTransactionsItemField = "fee"
	ListTransactionsItemFieldBlockHash         ListTransactionsItemField = "blockhash"
	ListTransactionsItemFieldBlockIndex        ListTransactionsItemField = "blockindex"
	ListTransactionsItemFieldTxid              ListTransactionsItemField = "txid"
	ListTransactionsItemFieldBip125Replaceable ListTransactionsItemField = "bip125-replaceable"
)

type ListTransactionsItemError = convert.FieldError[ListTransactionsItemField]

// ListTransactionsError locates the transaction that failed.
type ListTransactionsError = convert.SequenceError[ListTransactions]

func (l ListTransactions) IntoModel() (model.ListTransactions, error) {
	out := model.ListTransactions{Transactions: make([]model.ListTransactionsItem, 0, len(l))}
	for i, item := range l {
		m, err := item.IntoModel()
		if err != nil {
			return model.ListTransactions{}, convert.AtItem[ListTransactions](i, err)
		}
		out.Transactions = append(out.Transactions, m)
	}
	return out, nil
}

func (t ListTransactionsItem) IntoModel() (model.ListTransactionsItem, error) {
	var out model.ListTransactionsItem
	var err error

	if out.Address, err = convert.OptionalCheckedAddress(t.Address); err != nil {
		return model.ListTransactionsItem{}, convert.Field(ListTransactionsItemFieldAddress, err)
	}
	if out.Category, err = convert.Enum(t.Category, TransactionCategories); err != nil {
		return model.ListTransactionsItem{}, convert.Field(ListTransactionsItemFieldCategory, err)
	}
	if out.Amount, err = convert.SignedAmount(t.Amount); err != nil {
		return model.ListTransactionsItem{}, convert.Field(ListTransactionsItemFieldAmount, err)
	}
	if out.Vout, err = convert.Uint32(t.Vout); err != nil {
		return model.ListTransactionsItem{}, convert.Field(ListTransactionsItemFieldVout, err)
	}
	if out.Fee, err = convert.OptionalSignedAmount(t.Fee); err != nil {
		return model.ListTransactionsItem{}, convert.Field(ListTransactionsItemFieldFee, err)
	}
	if out.BlockHash, err = convert.OptionalHash(t.BlockHash); err != nil {
		return model.ListTransactionsItem{}, convert.Field(ListTransactionsItemFieldBlockHash, err)
	}
	if out.BlockIndex, err = convert.OptionalUint32(t.BlockIndex); err != nil {
		return model.ListTransactionsItem{}, convert.Field(ListTransactionsItemFieldBlockIndex, err)
	}
	if out.Txid, err = convert.Hash(t.Txid); err != nil {
		return model.ListTransactionsItem{}, convert.Field(ListTransactionsItemFieldTxid, err)
	}
	if out.Bip125Replaceable, err = convert.Enum(t.Bip125Replaceable, Bip125Replaceables); err != nil {
		return model.ListTransactionsItem{}, convert.Field(ListTransactionsItemFieldBip125Replaceable, err)
	}

	out.Label = labelOrAccount(t.Label, t.Account)
	out.Confirmations = t.Confirmations
	out.Trusted = t.Trusted
	out.BlockTime = convert.OptionalUnixTime(t.BlockTime)
	out.Time = convert.UnixTime(t.Time)
	out.TimeReceived = convert.UnixTime(t.TimeReceived)
	out.Comment = t.Comment
	out.Abandoned = t.Abandoned
	return out, nil
}

// ListUnspent is the result of `listunspent`.
type ListUnspent []ListUnspentItem

// ListUnspentItem is one unspent output of ListUnspent.
type ListUnspentItem struct {
	Txid    string  `json:"txid"`
	Vout    int64   `json:"vout"`
	Address *string `json:"address,omitempty"`
	Label   *string `json:"label,omitempty"`
	// DEPRECATED. Alias of label.
	Account       *string `json:"account,omitempty"`
	ScriptPubKey  string  `json:"scriptPubKey"`
	Amount        float64 `json:"amount"`
	Confirmations int64   `json:"confirmations"`
	// Only for P2SH outputs.
	RedeemScript *string `json:"redeemScript,omitempty"`
	Spendable    bool    `json:"spendable"`
	Solvable     bool    `json:"solvable"`
	Safe         bool    `json:"safe"`
}

type ListUnspentItemField string

func (f ListUnspentItemField) String() string { return string(f) }

const (
	ListUnspentItemFieldTxid          ListUnspentItemField = "txid"
	ListUnspentItemFieldVout          ListUnspentItemField = "vout"
	ListUnspentItemFieldAddress       ListUnspentItemField = "address"
	ListUnspentItemFieldScriptPubKey  ListUnspentItemField = "scriptPubKey"
	ListUnspentItemFieldAmount        ListUnspentItemField = "amount"
	ListUnspentItemFieldConfirmations ListUnspentItemField = "confirmations"
	ListUnspentItemFieldRedeemScript  ListUnspentItemField = "redeemScript"
)

type ListUnspentItemError = convert.FieldError[ListUnspentItemField]

// ListUnspentError locates the output that failed.
type ListUnspentError = convert.SequenceError[ListUnspent]

func (l ListUnspent) IntoModel() (model.ListUnspent, error) {
	out := model.ListUnspent{Items: make([]model.ListUnspentItem, 0, len(l))}
	for i, item := range l {
		m, err := item.IntoModel()
		if err != nil {
			return model.ListUnspent{}, convert.AtItem[ListUnspent](i, err)
		}
		out.Items = append(out.Items, m)
	}
	return out, nil
}

func (u ListUnspentItem) IntoModel() (model.ListUnspentItem, error) {
	var out model.ListUnspentItem
	var err error

	if out.Txid, err = convert.Hash(u.Txid); err != nil {
		return model.ListUnspentItem{}, convert.Field(ListUnspentItemFieldTxid, err)
	}
	if out.Vout, err = convert.Uint32(u.Vout); err != nil {
		return model.ListUnspentItem{}, convert.Field(ListUnspentItemFieldVout, err)
	}
	if out.Address, err = convert.OptionalCheckedAddress(u.Address); err != nil {
		return model.ListUnspentItem{}, convert.Field(ListUnspentItemFieldAddress, err)
	}
	if out.ScriptPubKey, err = convert.Script(u.ScriptPubKey); err != nil {
		return model.ListUnspentItem{}, convert.Field(ListUnspentItemFieldScriptPubKey, err)
	}
	if out.Amount, err = convert.Amount(u.Amount); err != nil {
		return model.ListUnspentItem{}, convert.Field(ListUnspentItemFieldAmount, err)
	}
	if out.Confirmations, err = convert.Uint32(u.Confirmations); err != nil {
		return model.ListUnspentItem{}, convert.Field(ListUnspentItemFieldConfirmations, err)
	}
	if out.RedeemScript, err = convert.OptionalScript(u.RedeemScript); err != nil {
		return model.ListUnspentItem{}, convert.Field(ListUnspentItemFieldRedeemScript, err)
	}

	if label := labelOrAccount(u.Label, u.Account); label != nil {
		out.Label = *label
	}
	out.Spendable = u.Spendable
	out.Solvable = u.Solvable
	out.Safe = u.Safe
	return out, nil
}
