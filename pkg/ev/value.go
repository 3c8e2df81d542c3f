// Package ev provides exact rational arithmetic for exposure values.
//
// Exposure bias is stored in EXIF as a signed rational (e.g. -2/3 EV), and
// cameras are not consistent about the representation: the same bias may be
// written as 1/2 or 2/4 or 5/10. Matching therefore has to compare reduced
// rationals, never floats. Value wraps math/big.Rat to guarantee that.
package ev

import (
	"math/big"
)

// Value is an exposure bias in EV units, held as an exact rational.
// The zero Value is 0 EV. Values are immutable.
type Value struct {
	r *big.Rat
}

var zeroRat = new(big.Rat)

// New creates a Value from a numerator/denominator pair.
// Returns ok=false if the denominator is zero.
func New(num, den int64) (Value, bool) {
	if den == 0 {
		return Value{}, false
	}
	return Value{r: big.NewRat(num, den)}, true
}

// FromInt creates an integral Value.
func FromInt(n int64) Value {
	return Value{r: big.NewRat(n, 1)}
}

func (v Value) rat() *big.Rat {
	if v.r == nil {
		return zeroRat
	}
	return v.r
}

// Equal reports whether two values denote the same rational,
// regardless of representation (1/2 equals 2/4).
func (v Value) Equal(o Value) bool {
	return v.rat().Cmp(o.rat()) == 0
}

// Sub returns v - o as a new Value.
func (v Value) Sub(o Value) Value {
	return Value{r: new(big.Rat).Sub(v.rat(), o.rat())}
}

// IsZero reports whether the value equals 0 EV.
func (v Value) IsZero() bool {
	return v.rat().Sign() == 0
}

// Num returns the numerator of the reduced form.
func (v Value) Num() int64 {
	return v.rat().Num().Int64()
}

// Den returns the denominator of the reduced form. Always positive.
func (v Value) Den() int64 {
	return v.rat().Denom().Int64()
}

// String renders the reduced form: "n/d", or just "n" when integral.
func (v Value) String() string {
	return v.rat().RatString()
}
