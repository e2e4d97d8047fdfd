package v17

import (
	"github.com/LeJamon/gocorepc/internal/model"
	"github.com/LeJamon/gocorepc/internal/rpc"
)

// Version is the release series of the records in this package.
const Version = 17

// NewRegistry binds every v0.17 method that has a reply to convert.
// Later versions start from it with Extend and override the methods whose reply
// changed.
func NewRegistry() *rpc.Registry {
	r := rpc.NewRegistry(Version)
	rpc.Register[model.GetNetworkInfo, GetNetworkInfo](r, "getnetworkinfo")

	rpc.Register[model.AddMultisigAddress, AddMultisigAddress](r, "addmultisigaddress")
	rpc.Register[model.BumpFee, BumpFee](r, "bumpfee")
	rpc.Register[model.CreateWallet, CreateWallet](r, "createwallet")
	rpc.Register[model.DumpPrivKey, DumpPrivKey](r, "dumpprivkey")
	rpc.Register[model.DumpWallet, DumpWallet](r, "dumpwallet")
	rpc.Register[model.GetAddressesByLabel, GetAddressesByLabel](r, "getaddressesbylabel")
	rpc.Register[model.GetAddressInfo, GetAddressInfo](r, "getaddressinfo")
	rpc.Register[model.GetBalance, GetBalance](r, "getbalance")
	rpc.Register[model.GetNewAddress, GetNewAddress](r, "getnewaddress")
	rpc.Register[model.GetRawChangeAddress, GetRawChangeAddress](r, "getrawchangeaddress")
	rpc.Register[model.GetReceivedByAddress, GetReceivedByAddress](r, "getreceivedbyaddress")
	rpc.Register[model.GetTransaction, GetTransaction](r, "gettransaction")
	rpc.Register[model.GetUnconfirmedBalance, GetUnconfirmedBalance](r, "getunconfirmedbalance")
	rpc.Register[model.GetWalletInfo, GetWalletInfo](r, "getwalletinfo")
	rpc.Register[model.ListAddressGroupings, ListAddressGroupings](r, "listaddressgroupings")
	rpc.Register[model.ListLabels, ListLabels](r, "listlabels")
	rpc.Register[model.ListLockUnspent, ListLockUnspent](r, "listlockunspent")
	rpc.Register[model.ListReceivedByAddress, ListReceivedByAddress](r, "listreceivedbyaddress")
	rpc.Register[model.ListSinceBlock, ListSinceBlock](r, "listsinceblock")
	rpc.Register[model.ListTransactions, ListTransactions](r, "listtransactions")
	rpc.Register[model.ListUnspent, ListUnspent](r, "listunspent")
	rpc.Register[model.ListWallets, ListWallets](r, "listwallets")
	rpc.Register[model.LoadWallet, LoadWallet](r, "loadwallet")
	rpc.Register[model.SendToAddress, SendToAddress](r, "sendtoaddress")
	return r
}
