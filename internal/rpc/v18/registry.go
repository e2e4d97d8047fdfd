package v18

import (
	"github.com/LeJamon/gocorepc/internal/model"
	"github.com/LeJamon/gocorepc/internal/rpc"
	"github.com/LeJamon/gocorepc/internal/rpc/v17"
)

const Version = 18

// NewRegistry holds every v0.17 binding plus the v0.18 overrides.
func NewRegistry() *rpc.Registry {
	r := v17.NewRegistry().Extend(Version)
	rpc.Register[model.GetAddressInfo, GetAddressInfo](r, "getaddressinfo")
	rpc.Register[model.GetReceivedByLabel, GetReceivedByLabel](r, "getreceivedbylabel")
	rpc.Register[model.GetTransaction, GetTransaction](r, "gettransaction")
	rpc.Register[model.GetWalletInfo, GetWalletInfo](r, "getwalletinfo")
	rpc.Register[model.ListReceivedByAddress, ListReceivedByAddress](r, "listreceivedbyaddress")
	rpc.Register[model.ListSinceBlock, ListSinceBlock](r, "listsinceblock")
	rpc.Register[model.ListTransactions, ListTransactions](r, "listtransactions")
	rpc.Register[model.ListUnspent, ListUnspent](r, "listunspent")
	rpc.Register[model.ListWalletDir, ListWalletDir](r, "listwalletdir")
	return r
}
