package v18

import (
	"context"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/LeJamon/gocorepc/internal/rpc"
	"github.com/LeJamon/gocorepc/internal/rpc/v17"
)

// Client issues the v0.18 methods. Methods whose reply did not change come from
// the embedded v17 client.
type Client struct {
	*v17.Client
}

func NewClient(c rpc.Caller) *Client {
	return NewVersionedClient(c, Version)
}

func NewVersionedClient(c rpc.Caller, major uint32) *Client {
	return &Client{Client: v17.NewVersionedClient(c, major)}
}

func (c *Client) GetAddressInfo(ctx context.Context, addr btcutil.Address) (GetAddressInfo, error) {
	return rpc.Invoke[GetAddressInfo](ctx, c.Caller(), "getaddressinfo", addr.EncodeAddress())
}

func (c *Client) GetReceivedByLabel(ctx context.Context, label string) (GetReceivedByLabel, error) {
	return rpc.Invoke[GetReceivedByLabel](ctx, c.Caller(), "getreceivedbylabel", label)
}

func (c *Client) GetTransaction(ctx context.Context, txid chainhash.Hash) (GetTransaction, error) {
	return rpc.Invoke[GetTransaction](ctx, c.Caller(), "gettransaction", txid.String())
}

func (c *Client) GetWalletInfo(ctx context.Context) (GetWalletInfo, error) {
	return rpc.Invoke[GetWalletInfo](ctx, c.Caller(), "getwalletinfo")
}

func (c *Client) ListReceivedByAddress(ctx context.Context) (ListReceivedByAddress, error) {
	return rpc.Invoke[ListReceivedByAddress](ctx, c.Caller(), "listreceivedbyaddress")
}

func (c *Client) ListSinceBlock(ctx context.Context) (ListSinceBlock, error) {
	return rpc.Invoke[ListSinceBlock](ctx, c.Caller(), "listsinceblock")
}

func (c *Client) ListTransactions(ctx context.Context) (ListTransactions, error) {
	return rpc.Invoke[ListTransactions](ctx, c.Caller(), "listtransactions")
}

func (c *Client) ListUnspent(ctx context.Context) (ListUnspent, error) {
	return rpc.Invoke[ListUnspent](ctx, c.Caller(), "listunspent")
}

func (c *Client) ListWalletDir(ctx context.Context) (ListWalletDir, error) {
	return rpc.Invoke[ListWalletDir](ctx, c.Caller(), "listwalletdir")
}
