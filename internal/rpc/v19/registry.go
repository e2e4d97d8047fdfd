package v19

import (
	"github.com/LeJamon/gocorepc/internal/model"
	"github.com/LeJamon/gocorepc/internal/rpc"
	"github.com/LeJamon/gocorepc/internal/rpc/v18"
)

const Version = 19

// NewRegistry holds every v0.18 binding plus the v0.19 overrides.
func NewRegistry() *rpc.Registry {
	r := v18.NewRegistry().Extend(Version)
	rpc.Register[model.GetBalances, GetBalances](r, "getbalances")
	rpc.Register[model.GetWalletInfo, GetWalletInfo](r, "getwalletinfo")
	return r
}
