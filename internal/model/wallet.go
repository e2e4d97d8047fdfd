package model

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/LeJamon/gocorepc/internal/amount"
)

// Types for methods found under the `== Wallet ==` section of the API docs.

// AddMultisigAddress is the result of `addmultisigaddress`.
type AddMultisigAddress struct {
	Address      Address
	RedeemScript Script
}

// BumpFee is the result of `bumpfee`.
type BumpFee struct {
	Txid        chainhash.Hash
	OriginalFee amount.Amount
	Fee         amount.Amount
	Errors      []string
}

// CreateWallet is the result of `createwallet`.
type CreateWallet struct {
	Name     string
	Warnings []string
}

// DumpPrivKey is the result of `dumpprivkey`.
type DumpPrivKey struct {
	Key *btcutil.WIF
}

// DumpWallet is the result of `dumpwallet`.
type DumpWallet struct {
	FileName string
}

// GetAddressesByLabel is the result of `getaddressesbylabel`, sorted by address.
type GetAddressesByLabel struct {
	Addresses []LabeledAddress
}

// LabeledAddress is one entry of GetAddressesByLabel.
type LabeledAddress struct {
	Address Address
	Purpose AddressPurpose
}

// GetAddressInfo is the result of `getaddressinfo`.
type GetAddressInfo struct {
	Address      Address
	ScriptPubKey Script
	IsMine       bool
	IsWatchOnly  bool
	// Nil for servers that predate the field.
	Solvable   *bool
	Descriptor *string
	IsScript   bool
	IsChange   *bool
	IsWitness  bool
	// Set only for witness addresses.
	WitnessProgram *WitnessProgram
	ScriptType     *ScriptType
	// Redeem or witness script, when known.
	RedeemScript Script
	PubKeys      []PublicKey
	SigsRequired *uint32
	PubKey       *PublicKey
	Embedded     *GetAddressInfoEmbedded
	IsCompressed *bool
	Label        string
	Timestamp    *time.Time
	HDKeyPath    DerivationPath
	HDSeedID     *Hash160
	// Nil for servers that predate the field.
	HDMasterFingerprint *Fingerprint
	Labels              []AddressLabel
}

// GetAddressInfoEmbedded is the embedded address of a P2SH or P2WSH address. It
// carries no wallet metadata.
type GetAddressInfoEmbedded struct {
	Address        Address
	ScriptPubKey   Script
	IsScript       bool
	IsWitness      bool
	WitnessProgram *WitnessProgram
	ScriptType     *ScriptType
	RedeemScript   Script
	PubKeys        []PublicKey
	SigsRequired   *uint32
	PubKey         *PublicKey
	IsCompressed   *bool
	Label          string
	Labels         []AddressLabel
}

// AddressLabel is one label of an address.
type AddressLabel struct {
	Name    string
	Purpose AddressPurpose
}

// GetBalance is the result of `getbalance`.
type GetBalance struct {
	Balance amount.Amount
}

// GetBalances is the result of `getbalances`.
type GetBalances struct {
	Mine Balances
	// Nil unless the wallet has watch-only addresses.
	WatchOnly *Balances
}

// Balances is one ownership category of GetBalances.
type Balances struct {
	Trusted          amount.Amount
	UntrustedPending amount.Amount
	Immature         amount.Amount
	// Only present when the wallet has avoid_reuse set.
	Used *amount.Amount
}

// GetNewAddress is the result of `getnewaddress`.
type GetNewAddress struct {
	Address UncheckedAddress
}

// GetRawChangeAddress is the result of `getrawchangeaddress`.
type GetRawChangeAddress struct {
	Address Address
}

// GetReceivedByAddress is the result of `getreceivedbyaddress`.
type GetReceivedByAddress struct {
	Amount amount.Amount
}

// GetReceivedByLabel is the result of `getreceivedbylabel`.
type GetReceivedByLabel struct {
	Amount amount.Amount
}

// GetTransaction is the result of `gettransaction`.
type GetTransaction struct {
	Amount        amount.SignedAmount
	Fee           *amount.SignedAmount
	Confirmations int64
	Generated     *bool
	// Block fields are nil for unconfirmed transactions.
	BlockHash         *chainhash.Hash
	BlockIndex        *uint32
	BlockTime         *time.Time
	Txid              chainhash.Hash
	WalletConflicts   []chainhash.Hash
	Time              time.Time
	TimeReceived      time.Time
	Comment           *string
	Bip125Replaceable Bip125Replaceable
	Details           []GetTransactionDetail
	Tx                *wire.MsgTx
}

// GetTransactionDetail is one entry of GetTransaction.Details.
type GetTransactionDetail struct {
	InvolvesWatchOnly *bool
	// Nil for outputs with no address, such as OP_RETURN.
	Address   *Address
	Category  TransactionCategory
	Amount    amount.SignedAmount
	Label     *string
	Vout      uint32
	Fee       *amount.SignedAmount
	Abandoned *bool
}

// GetUnconfirmedBalance is the result of `getunconfirmedbalance`.
type GetUnconfirmedBalance struct {
	Balance amount.Amount
}

// GetWalletInfo is the result of `getwalletinfo`.
type GetWalletInfo struct {
	WalletName            string
	WalletVersion         uint32
	Balance               amount.Amount
	UnconfirmedBalance    amount.Amount
	ImmatureBalance       amount.Amount
	TxCount               uint32
	KeypoolOldest         time.Time
	KeypoolSize           uint32
	KeypoolSizeHDInternal *uint32
	// Nil unless the wallet is encrypted.
	UnlockedUntil      *time.Time
	PayTxFee           amount.FeeRate
	HDSeedID           *Hash160
	PrivateKeysEnabled bool
	// Nil for servers that predate the field.
	AvoidReuse *bool
	// Nil when no scan is running or the server predates the field.
	Scanning *WalletScan
}

// WalletScan describes a rescan in progress.
type WalletScan struct {
	Duration time.Duration
	Progress float64
}

// ListAddressGroupings is the result of `listaddressgroupings`.
type ListAddressGroupings struct {
	Groups [][]AddressGrouping
}

// AddressGrouping is one address of a grouping.
type AddressGrouping struct {
	Address Address
	Amount  amount.Amount
	Label   *string
}

// ListLabels is the result of `listlabels`.
type ListLabels struct {
	Labels []string
}

// ListLockUnspent is the result of `listlockunspent`.
type ListLockUnspent struct {
	Outpoints []wire.OutPoint
}

// ListReceivedByAddress is the result of `listreceivedbyaddress`.
type ListReceivedByAddress struct {
	Items []ListReceivedByAddressItem
}

// ListReceivedByAddressItem is one address of ListReceivedByAddress.
type ListReceivedByAddressItem struct {
	InvolvesWatchOnly bool
	Address           Address
	Amount            amount.Amount
	Confirmations     uint32
	Label             string
	Txids             []chainhash.Hash
}

// ListSinceBlock is the result of `listsinceblock`.
type ListSinceBlock struct {
	Transactions []ListSinceBlockTransaction
	Removed      []ListSinceBlockTransaction
	LastBlock    chainhash.Hash
}

// ListSinceBlockTransaction is one transaction of ListSinceBlock.
type ListSinceBlockTransaction struct {
	Address           *Address
	Category          TransactionCategory
	Amount            amount.SignedAmount
	Vout              uint32
	Fee               *amount.SignedAmount
	Confirmations     int64
	BlockHash         *chainhash.Hash
	BlockIndex        *uint32
	BlockTime         *time.Time
	Txid              chainhash.Hash
	Time              time.Time
	TimeReceived      time.Time
	Bip125Replaceable Bip125Replaceable
	Abandoned         *bool
	Comment           *string
	Label             *string
	To                *string
}

// ListTransactions is the result of `listtransactions`.
type ListTransactions struct {
	Transactions []ListTransactionsItem
}

// ListTransactionsItem is one transaction of ListTransactions.
type ListTransactionsItem struct {
	Address           *Address
	Category          TransactionCategory
	Amount            amount.SignedAmount
	Label             *string
	Vout              uint32
	Fee               *amount.SignedAmount
	Confirmations     int64
	Trusted           *bool
	BlockHash         *chainhash.Hash
	BlockIndex        *uint32
	BlockTime         *time.Time
	Txid              chainhash.Hash
	Time              time.Time
	TimeReceived      time.Time
	Comment           *string
	Bip125Replaceable Bip125Replaceable
	Abandoned         *bool
}

// ListUnspent is the result of `listunspent`.
type ListUnspent struct {
	Items []ListUnspentItem
}

// ListUnspentItem is one output of ListUnspent.
type ListUnspentItem struct {
	Txid          chainhash.Hash
	Vout          uint32
	// Nil for outputs that pay no address, such as bare multisig.
	Address       *Address
	Label         string
	ScriptPubKey  Script
	Amount        amount.Amount
	Confirmations uint32
	RedeemScript  Script
	Spendable     bool
	Solvable      bool
	Safe          bool
}

// ListWallets is the result of `listwallets`.
type ListWallets struct {
	Wallets []string
}

// ListWalletDir is the result of `listwalletdir`.
type ListWalletDir struct {
	Wallets []string
}

// LoadWallet is the result of `loadwallet`.
type LoadWallet struct {
	Name     string
	Warnings []string
}

// SendToAddress is the result of `sendtoaddress`.
type SendToAddress struct {
	Txid chainhash.Hash
}
