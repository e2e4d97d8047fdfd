package v17

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/LeJamon/gocorepc/internal/amount"
	"github.com/LeJamon/gocorepc/internal/rpc"
)

// Client issues the v0.17 methods and returns their wire records. Call IntoModel
// on a result to validate it.
type Client struct {
	caller  rpc.Caller
	version uint32
}

func NewClient(c rpc.Caller) *Client {
	return NewVersionedClient(c, Version)
}

// NewVersionedClient is for clients of later versions that reuse the v0.17
// methods but expect a different server version.
func NewVersionedClient(c rpc.Caller, major uint32) *Client {
	return &Client{caller: c, version: major}
}

func (c *Client) Caller() rpc.Caller {
	return c.caller
}

// CheckServerVersion fails with rpc.ErrUnexpectedServerVersion unless the server's
// release series is the one this client was built for.
func (c *Client) CheckServerVersion(ctx context.Context) error {
	info, err := c.GetNetworkInfo(ctx)
	if err != nil {
		return err
	}
	m, err := info.IntoModel()
	if err != nil {
		return err
	}
	if got := m.MajorVersion(); got != c.version {
		return fmt.Errorf("%w: want v%d, server runs v%d (%s)", rpc.ErrUnexpectedServerVersion, c.version, got, m.Subversion)
	}
	return nil
}

func (c *Client) GetNetworkInfo(ctx context.Context) (GetNetworkInfo, error) {
	return rpc.Invoke[GetNetworkInfo](ctx, c.caller, "getnetworkinfo")
}

func (c *Client) AddMultisigAddress(ctx context.Context, required int, keys []string) (AddMultisigAddress, error) {
	return rpc.Invoke[AddMultisigAddress](ctx, c.caller, "addmultisigaddress", required, keys)
}

func (c *Client) BumpFee(ctx context.Context, txid chainhash.Hash) (BumpFee, error) {
	return rpc.Invoke[BumpFee](ctx, c.caller, "bumpfee", txid.String())
}

func (c *Client) CreateWallet(ctx context.Context, name string) (CreateWallet, error) {
	return rpc.Invoke[CreateWallet](ctx, c.caller, "createwallet", name)
}

func (c *Client) DumpPrivKey(ctx context.Context, addr btcutil.Address) (DumpPrivKey, error) {
	return rpc.Invoke[DumpPrivKey](ctx, c.caller, "dumpprivkey", addr.EncodeAddress())
}

// DumpWallet writes the wallet's keys to filename on the server's filesystem.
func (c *Client) DumpWallet(ctx context.Context, filename string) (DumpWallet, error) {
	return rpc.Invoke[DumpWallet](ctx, c.caller, "dumpwallet", filename)
}

func (c *Client) GetAddressesByLabel(ctx context.Context, label string) (GetAddressesByLabel, error) {
	return rpc.Invoke[GetAddressesByLabel](ctx, c.caller, "getaddressesbylabel", label)
}

func (c *Client) GetAddressInfo(ctx context.Context, addr btcutil.Address) (GetAddressInfo, error) {
	return rpc.Invoke[GetAddressInfo](ctx, c.caller, "getaddressinfo", addr.EncodeAddress())
}

func (c *Client) GetBalance(ctx context.Context) (GetBalance, error) {
	return rpc.Invoke[GetBalance](ctx, c.caller, "getbalance")
}

func (c *Client) GetNewAddress(ctx context.Context) (GetNewAddress, error) {
	return rpc.Invoke[GetNewAddress](ctx, c.caller, "getnewaddress")
}

func (c *Client) GetRawChangeAddress(ctx context.Context) (GetRawChangeAddress, error) {
	return rpc.Invoke[GetRawChangeAddress](ctx, c.caller, "getrawchangeaddress")
}

func (c *Client) GetReceivedByAddress(ctx context.Context, addr btcutil.Address) (GetReceivedByAddress, error) {
	return rpc.Invoke[GetReceivedByAddress](ctx, c.caller, "getreceivedbyaddress", addr.EncodeAddress())
}

func (c *Client) GetTransaction(ctx context.Context, txid chainhash.Hash) (GetTransaction, error) {
	return rpc.Invoke[GetTransaction](ctx, c.caller, "gettransaction", txid.String())
}

func (c *Client) GetUnconfirmedBalance(ctx context.Context) (GetUnconfirmedBalance, error) {
	return rpc.Invoke[GetUnconfirmedBalance](ctx, c.caller, "getunconfirmedbalance")
}

func (c *Client) GetWalletInfo(ctx context.Context) (GetWalletInfo, error) {
	return rpc.Invoke[GetWalletInfo](ctx, c.caller, "getwalletinfo")
}

func (c *Client) ListAddressGroupings(ctx context.Context) (ListAddressGroupings, error) {
	return rpc.Invoke[ListAddressGroupings](ctx, c.caller, "listaddressgroupings")
}

func (c *Client) ListLabels(ctx context.Context) (ListLabels, error) {
	return rpc.Invoke[ListLabels](ctx, c.caller, "listlabels")
}

func (c *Client) ListLockUnspent(ctx context.Context) (ListLockUnspent, error) {
	return rpc.Invoke[ListLockUnspent](ctx, c.caller, "listlockunspent")
}

func (c *Client) ListReceivedByAddress(ctx context.Context) (ListReceivedByAddress, error) {
	return rpc.Invoke[ListReceivedByAddress](ctx, c.caller, "listreceivedbyaddress")
}

func (c *Client) ListSinceBlock(ctx context.Context) (ListSinceBlock, error) {
	return rpc.Invoke[ListSinceBlock](ctx, c.caller, "listsinceblock")
}

func (c *Client) ListTransactions(ctx context.Context) (ListTransactions, error) {
	return rpc.Invoke[ListTransactions](ctx, c.caller, "listtransactions")
}

func (c *Client) ListUnspent(ctx context.Context) (ListUnspent, error) {
	return rpc.Invoke[ListUnspent](ctx, c.caller, "listunspent")
}

func (c *Client) ListWallets(ctx context.Context) (ListWallets, error) {
	return rpc.Invoke[ListWallets](ctx, c.caller, "listwallets")
}

func (c *Client) LoadWallet(ctx context.Context, filename string) (LoadWallet, error) {
	return rpc.Invoke[LoadWallet](ctx, c.caller, "loadwallet", filename)
}

// SendToAddress pays amt to addr from the wallet.
func (c *Client) SendToAddress(ctx context.Context, addr btcutil.Address, amt amount.Amount) (SendToAddress, error) {
	return rpc.Invoke[SendToAddress](ctx, c.caller, "sendtoaddress", addr.EncodeAddress(), amt.BTC())
}

// UnloadWallet unloads the wallet the caller is bound to, or name when it is set.
func (c *Client) UnloadWallet(ctx context.Context, name string) error {
	var params []any
	if name != "" {
		params = append(params, name)
	}
	return c.caller.Call(ctx, "unloadwallet", params, nil)
}
