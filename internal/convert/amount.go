package convert

import (
	"fmt"
	"math"
	"time"

	"github.com/LeJamon/gocorepc/internal/amount"
)

// Amount converts a non-negative BTC value into satoshis.
func Amount(btc float64) (amount.Amount, error) {
	return amount.FromBTC(btc)
}

// SignedAmount converts a BTC value that may be negative into satoshis.
func SignedAmount(btc float64) (amount.SignedAmount, error) {
	return amount.SignedFromBTC(btc)
}

// OptionalAmount converts an optional BTC value. Absence is not an error.
func OptionalAmount(btc *float64) (*amount.Amount, error) {
	if btc == nil {
		return nil, nil
	}
	a, err := Amount(*btc)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// OptionalSignedAmount converts an optional signed BTC value.
func OptionalSignedAmount(btc *float64) (*amount.SignedAmount, error) {
	if btc == nil {
		return nil, nil
	}
	a, err := SignedAmount(*btc)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// FeeRate converts a rate quoted in BTC per 1000 vbytes into the per-vbyte
// domain rate. The only failure is that of the inner amount.
func FeeRate(btcPerKvB float64) (amount.FeeRate, error) {
	perKvB, err := Amount(btcPerKvB)
	if err != nil {
		return 0, err
	}
	return amount.FeeRateFromPerKvB(perKvB), nil
}

// Uint32 narrows a wire integer into a uint32.
func Uint32(v int64) (uint32, error) {
	if v < 0 || v > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d does not fit in uint32", ErrOutOfRange, v)
	}
	return uint32(v), nil
}

// Uint16 narrows a wire integer into a uint16, as used for ports.
func Uint16(v int64) (uint16, error) {
	if v < 0 || v > math.MaxUint16 {
		return 0, fmt.Errorf("%w: %d does not fit in uint16", ErrOutOfRange, v)
	}
	return uint16(v), nil
}

// OptionalUint32 narrows an optional wire integer.
func OptionalUint32(v *int64) (*uint32, error) {
	if v == nil {
		return nil, nil
	}
	u, err := Uint32(*v)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UnixTime converts seconds since the epoch. It cannot fail.
func UnixTime(secs int64) time.Time {
	return time.Unix(secs, 0).UTC()
}

// OptionalUnixTime converts optional seconds since the epoch.
func OptionalUnixTime(secs *int64) *time.Time {
	if secs == nil {
		return nil
	}
	t := UnixTime(*secs)
	return &t
}
