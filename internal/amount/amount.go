package amount

import (
	"errors"
	"fmt"
	"math"

	"github.com/btcsuite/btcd/btcutil"
)

// SatoshiPerBitcoin is the number of subunits in one whole coin.
const SatoshiPerBitcoin = btcutil.SatoshiPerBitcoin

var (
	// ErrOutOfRange is returned when a value cannot be held by the target amount type.
	ErrOutOfRange = errors.New("amount out of range")
	// ErrInvalidDecimal is returned when a value is not a finite, exact number of satoshis.
	ErrInvalidDecimal = errors.New("invalid decimal amount")
)

// Amount is a non-negative quantity of satoshis.
type Amount uint64

// SignedAmount is a quantity of satoshis that may be negative, for example a
// send-category transaction amount or a fee.
type SignedAmount int64

// FromSat returns an amount of the given number of satoshis.
func FromSat(sat uint64) Amount {
	return Amount(sat)
}

// FromBTC converts a whole-coin floating value into satoshis. It never rounds:
// a value that is not an exact number of satoshis fails with ErrInvalidDecimal.
func FromBTC(btc float64) (Amount, error) {
	sat, err := satoshis(btc)
	if err != nil {
		return 0, err
	}
	if sat < 0 {
		return 0, fmt.Errorf("%w: %v BTC is negative", ErrOutOfRange, btc)
	}
	return Amount(sat), nil
}

// SignedFromBTC is FromBTC for fields that may be negative.
func SignedFromBTC(btc float64) (SignedAmount, error) {
	sat, err := satoshis(btc)
	if err != nil {
		return 0, err
	}
	return SignedAmount(sat), nil
}

func satoshis(btc float64) (int64, error) {
	if math.IsNaN(btc) || math.IsInf(btc, 0) {
		return 0, fmt.Errorf("%w: %v is not finite", ErrInvalidDecimal, btc)
	}
	scaled := math.Round(btc * SatoshiPerBitcoin)
	// 2^63 is exactly representable; anything at or beyond it overflows int64.
	if scaled >= math.MaxInt64 || scaled < math.MinInt64 {
		return 0, fmt.Errorf("%w: %v BTC", ErrOutOfRange, btc)
	}
	sat := int64(scaled)
	if float64(sat)/SatoshiPerBitcoin != btc {
		return 0, fmt.Errorf("%w: %v BTC is not a whole number of satoshis", ErrInvalidDecimal, btc)
	}
	return sat, nil
}

func (a Amount) Sat() uint64 {
	return uint64(a)
}

// BTC renders the amount back into the whole-coin unit used on the wire.
func (a Amount) BTC() float64 {
	return float64(a) / SatoshiPerBitcoin
}

// Signed returns the amount as a signed amount. It fails when the amount
// exceeds the signed range.
func (a Amount) Signed() (SignedAmount, error) {
	if a > math.MaxInt64 {
		return 0, ErrOutOfRange
	}
	return SignedAmount(a), nil
}

func (a Amount) IsZero() bool {
	return a == 0
}

// String formats the amount in BTC with all eight decimals, for example
// "0.00515000 BTC".
func (a Amount) String() string {
	if a > math.MaxInt64 {
		return fmt.Sprintf("%d sat", uint64(a))
	}
	return btcutil.Amount(a).Format(btcutil.AmountBTC)
}

func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (s SignedAmount) Sat() int64 {
	return int64(s)
}

func (s SignedAmount) BTC() float64 {
	return float64(s) / SatoshiPerBitcoin
}

// Abs returns the magnitude of the amount.
func (s SignedAmount) Abs() Amount {
	if s < 0 {
		return Amount(-uint64(s))
	}
	return Amount(s)
}

func (s SignedAmount) IsNegative() bool {
	return s < 0
}

func (s SignedAmount) String() string {
	return btcutil.Amount(s).Format(btcutil.AmountBTC)
}

func (s SignedAmount) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
