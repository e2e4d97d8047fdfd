package model

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
)

// ErrWrongNetwork is returned when an address is required to belong to a network it
// was not encoded for.
var ErrWrongNetwork = errors.New("address is not valid for network")

// KnownNetworks lists the networks an unchecked address is parsed against, in the
// order they are tried.
var KnownNetworks = []*chaincfg.Params{
	&chaincfg.MainNetParams,
	&chaincfg.TestNet3Params,
	&chaincfg.RegressionNetParams,
	&chaincfg.SigNetParams,
}

// UncheckedAddress is an address that parsed for at least one known network but
// has not been matched against the network a caller expects.
type UncheckedAddress struct {
	raw  string
	addr btcutil.Address
	nets []*chaincfg.Params
}

// NewUncheckedAddress wraps a decoded address together with the networks its
// encoding is valid for. nets must not be empty.
func NewUncheckedAddress(raw string, addr btcutil.Address, nets []*chaincfg.Params) UncheckedAddress {
	return UncheckedAddress{raw: raw, addr: addr, nets: nets}
}

func (u UncheckedAddress) String() string {
	return u.raw
}

// Networks returns the names of the networks the address encoding is valid for.
func (u UncheckedAddress) Networks() []string {
	names := make([]string, 0, len(u.nets))
	for _, n := range u.nets {
		names = append(names, n.Name)
	}
	return names
}

// IsValidForNetwork reports whether the address encoding is valid on params.
func (u UncheckedAddress) IsValidForNetwork(params *chaincfg.Params) bool {
	for _, n := range u.nets {
		if n.Net == params.Net {
			return true
		}
	}
	return false
}

// RequireNetwork checks the address against params.
func (u UncheckedAddress) RequireNetwork(params *chaincfg.Params) (Address, error) {
	if !u.IsValidForNetwork(params) {
		return Address{}, fmt.Errorf("%w %s: %s", ErrWrongNetwork, params.Name, u.raw)
	}
	addr, err := btcutil.DecodeAddress(u.raw, params)
	if err != nil {
		return Address{}, fmt.Errorf("%w %s: %w", ErrWrongNetwork, params.Name, err)
	}
	return Address{addr: addr}, nil
}

// AssumeChecked treats the address as valid for the network of the server that
// returned it.
func (u UncheckedAddress) AssumeChecked() Address {
	return Address{addr: u.addr}
}

func (u UncheckedAddress) MarshalText() ([]byte, error) {
	return []byte(u.raw), nil
}

// Address is an address taken as valid for the network of the node that produced it.
type Address struct {
	addr btcutil.Address
}

// NewAddress wraps an address already known to belong to the right network.
func NewAddress(addr btcutil.Address) Address {
	return Address{addr: addr}
}

// Underlying returns the btcutil representation. It is nil for the zero Address.
func (a Address) Underlying() btcutil.Address {
	return a.addr
}

func (a Address) IsZero() bool {
	return a.addr == nil
}

func (a Address) String() string {
	if a.addr == nil {
		return ""
	}
	return a.addr.EncodeAddress()
}

// ScriptPubKey returns the output script paying to the address.
func (a Address) ScriptPubKey() (Script, error) {
	if a.addr == nil {
		return nil, errors.New("empty address")
	}
	s, err := txscript.PayToAddrScript(a.addr)
	if err != nil {
		return nil, err
	}
	return Script(s), nil
}

// Equal reports whether both addresses encode the same string.
func (a Address) Equal(other Address) bool {
	return a.String() == other.String()
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}
