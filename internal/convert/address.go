package convert

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/LeJamon/gocorepc/internal/model"
)

// UncheckedAddress parses an address for syntax only. The result records every
// known network the encoding is valid for.
func UncheckedAddress(s string) (model.UncheckedAddress, error) {
	var (
		first   btcutil.Address
		nets    []*chaincfg.Params
		lastErr error
	)
	for _, params := range model.KnownNetworks {
		addr, err := btcutil.DecodeAddress(s, params)
		if err != nil {
			lastErr = err
			continue
		}
		// DecodeAddress also takes raw hex public keys, which are not addresses.
		if _, ok := addr.(*btcutil.AddressPubKey); ok {
			return model.UncheckedAddress{}, fmt.Errorf("%w: %q is a public key", ErrInvalidAddressSyntax, s)
		}
		// DecodeAddress accepts base58 prefixes of other networks for some types.
		if !addr.IsForNet(params) {
			continue
		}
		if first == nil {
			first = addr
		}
		nets = append(nets, params)
	}
	if first == nil {
		if lastErr == nil {
			return model.UncheckedAddress{}, fmt.Errorf("%w: %q matches no known network", ErrInvalidAddressSyntax, s)
		}
		return model.UncheckedAddress{}, fmt.Errorf("%w: %q: %w", ErrInvalidAddressSyntax, s, lastErr)
	}
	return model.NewUncheckedAddress(s, first, nets), nil
}

// CheckedAddress parses an address and assumes it is valid for the network of the
// server that returned it. The server is trusted to only return addresses of its
// own network.
func CheckedAddress(s string) (model.Address, error) {
	u, err := UncheckedAddress(s)
	if err != nil {
		return model.Address{}, err
	}
	return u.AssumeChecked(), nil
}

// OptionalCheckedAddress parses an optional address.
func OptionalCheckedAddress(s *string) (*model.Address, error) {
	if s == nil {
		return nil, nil
	}
	a, err := CheckedAddress(*s)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
