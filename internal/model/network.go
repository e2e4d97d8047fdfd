package model

import (
	"time"

	"github.com/LeJamon/gocorepc/internal/amount"
)

// Types for methods found under the `== Network ==` section of the API docs.

// GetNetworkInfo is the result of `getnetworkinfo`.
type GetNetworkInfo struct {
	Version         uint32
	Subversion      string
	ProtocolVersion uint32
	LocalServices   uint64
	LocalRelay      bool
	TimeOffset      time.Duration
	Connections     uint32
	NetworkActive   bool
	Networks        []GetNetworkInfoNetwork
	RelayFee        amount.FeeRate
	IncrementalFee  amount.FeeRate
	LocalAddresses  []GetNetworkInfoAddress
	Warnings        string
}

// MajorVersion returns the release series of the server, for example 17 for v0.17.1.
func (g GetNetworkInfo) MajorVersion() uint32 {
	return g.Version / 10000
}

// GetNetworkInfoNetwork is the status of one network type (ipv4, ipv6, onion).
type GetNetworkInfoNetwork struct {
	Name                      string
	Limited                   bool
	Reachable                 bool
	Proxy                     string
	ProxyRandomizeCredentials bool
}

// GetNetworkInfoAddress is one local address the node listens on.
type GetNetworkInfoAddress struct {
	Address string
	Port    uint16
	Score   uint32
}
