package amount

import "fmt"

// FeeRate is a fee per virtual byte, held in millisatoshis so that a rate quoted
// per 1000 vbytes converts without losing precision.
type FeeRate uint64

// FeeRateFromPerKvB converts a rate of amount per 1000 vbytes into a per-vbyte rate.
func FeeRateFromPerKvB(perKvB Amount) FeeRate {
	// sat/kvB / 1000 = sat/vB, which is numerically msat/vB.
	return FeeRate(perKvB)
}

// MilliSatPerVByte returns the rate in millisatoshis per vbyte.
func (r FeeRate) MilliSatPerVByte() uint64 {
	return uint64(r)
}

// SatPerVByte returns the rate in satoshis per vbyte.
func (r FeeRate) SatPerVByte() float64 {
	return float64(r) / 1000
}

// PerKvB returns the rate as an amount per 1000 vbytes, the unit used on the wire.
func (r FeeRate) PerKvB() Amount {
	return Amount(r)
}

// Fee returns the fee for a transaction of the given virtual size, rounded down
// to whole satoshis.
func (r FeeRate) Fee(vsize uint64) Amount {
	return Amount(uint64(r) * vsize / 1000)
}

func (r FeeRate) String() string {
	return fmt.Sprintf("%.3f sat/vB", r.SatPerVByte())
}

func (r FeeRate) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
