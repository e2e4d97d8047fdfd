package v19

import (
	"context"

	"github.com/LeJamon/gocorepc/internal/rpc"
	"github.com/LeJamon/gocorepc/internal/rpc/v18"
)

// Client issues the v0.19 methods on top of the v18 client.
type Client struct {
	*v18.Client
}

func NewClient(c rpc.Caller) *Client {
	return &Client{Client: v18.NewVersionedClient(c, Version)}
}

func (c *Client) GetBalances(ctx context.Context) (GetBalances, error) {
	return rpc.Invoke[GetBalances](ctx, c.Caller(), "getbalances")
}

func (c *Client) GetWalletInfo(ctx context.Context) (GetWalletInfo, error) {
	return rpc.Invoke[GetWalletInfo](ctx, c.Caller(), "getwalletinfo")
}
