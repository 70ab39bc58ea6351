// File: decimal.go
// Title: Immutable Decimal Value
// Description: Decimal wraps an apd.Decimal as an immutable value type.
//              Parsing is exact; rounding only happens through a Context.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core decimal operations
// - 2025-07-26 v0.1.1: Enhanced String() method with auto-rounding for financial values
// - 2025-08-18 v0.2.0: Replaced big.Rat representation with apd; arithmetic moved
//                       onto Context

package mathx

import (
	"math"
	"math/big"
	"strings"

	"github.com/cockroachdb/apd/v3"

	mdwerrors "github.com/msto63/tabfun/foundation/core/errors"
)

// Decimal is an immutable base-10 number. The zero value is 0.
type Decimal struct {
	value *apd.Decimal
}

// NewDecimal parses s exactly, without rounding.
// NaN is rejected; "Infinity" is accepted.
func NewDecimal(s string) (Decimal, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Decimal{}, mdwerrors.MathxInvalidDecimal(s)
	}

	d, _, err := apd.NewFromString(trimmed)
	if err != nil {
		return Decimal{}, mdwerrors.MathxInvalidDecimal(s)
	}
	if d.Form == apd.NaN || d.Form == apd.NaNSignaling {
		return Decimal{}, mdwerrors.MathxInvalidDecimal(s)
	}
	return Decimal{value: d}, nil
}

// MustNewDecimal is like NewDecimal but panics on error
func MustNewDecimal(s string) Decimal {
	d, err := NewDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// NewDecimalFromInt returns i as a Decimal
func NewDecimalFromInt(i int64) Decimal {
	return Decimal{value: apd.New(i, 0)}
}

// NewDecimalFromFloat returns the shortest decimal that round-trips to f
func NewDecimalFromFloat(f float64) (Decimal, error) {
	if math.IsNaN(f) {
		return Decimal{}, mdwerrors.MathxInvalidInput("float", f, "a number")
	}
	if math.IsInf(f, 0) {
		return infinity(f < 0), nil
	}

	d, err := new(apd.Decimal).SetFloat64(f)
	if err != nil {
		return Decimal{}, mdwerrors.MathxArithmetic("float", err)
	}
	return Decimal{value: d}, nil
}

func newDecimalFromBig(b *big.Int) Decimal {
	d, _, err := apd.NewFromString(b.String())
	if err != nil {
		// big.Int text is always a valid decimal integer
		panic(err)
	}
	return Decimal{value: d}
}

func infinity(negative bool) Decimal {
	d := &apd.Decimal{Form: apd.Infinite, Negative: negative}
	return Decimal{value: d}
}

// Zero returns 0
func Zero() Decimal {
	return Decimal{}
}

// One returns 1
func One() Decimal {
	return NewDecimalFromInt(1)
}

// dec returns the payload; callers must not modify it
func (d Decimal) dec() *apd.Decimal {
	if d.value == nil {
		return new(apd.Decimal)
	}
	return d.value
}

// String renders d in plain notation, keeping its exponent
func (d Decimal) String() string {
	return d.dec().Text('f')
}

// Sign returns -1, 0 or +1
func (d Decimal) Sign() int {
	return d.dec().Sign()
}

// IsZero reports whether d is zero
func (d Decimal) IsZero() bool {
	return d.dec().IsZero()
}

// IsInfinite reports whether d is an infinity
func (d Decimal) IsInfinite() bool {
	return d.dec().Form == apd.Infinite
}

// Cmp compares d and other numerically
func (d Decimal) Cmp(other Decimal) int {
	return d.dec().Cmp(other.dec())
}

// Equal reports numeric equality, so 1.0 equals 1
func (d Decimal) Equal(other Decimal) bool {
	return d.Cmp(other) == 0
}

// Neg returns -d
func (d Decimal) Neg() Decimal {
	r := new(apd.Decimal)
	r.Neg(d.dec())
	return Decimal{value: r}
}

// Abs returns |d|
func (d Decimal) Abs() Decimal {
	r := new(apd.Decimal)
	r.Abs(d.dec())
	return Decimal{value: r}
}

// Reduce strips trailing zeros; a negative zero becomes 0
func (d Decimal) Reduce() Decimal {
	r := new(apd.Decimal)
	r.Reduce(d.dec())
	if r.IsZero() {
		r.SetInt64(0)
	}
	return Decimal{value: r}
}

// Truncate drops the fractional part
func (d Decimal) Truncate() Decimal {
	if d.IsInfinite() {
		return d
	}
	integ, frac := new(apd.Decimal), new(apd.Decimal)
	d.dec().Modf(integ, frac)
	return Decimal{value: integ}
}

// Float64 returns the nearest float64
func (d Decimal) Float64() (float64, error) {
	f, err := d.dec().Float64()
	if err != nil {
		return 0, mdwerrors.MathxArithmetic("float64", err)
	}
	return f, nil
}

// Int64 truncates d and returns it as an int64
func (d Decimal) Int64() (int64, error) {
	if d.IsInfinite() {
		return 0, mdwerrors.MathxInvalidInput("int64", d.String(), "a finite number")
	}
	i, err := d.Truncate().dec().Int64()
	if err != nil {
		return 0, mdwerrors.MathxInvalidInput("int64", d.String(), "an integer within int64 range")
	}
	return i, nil
}

// bigInt truncates d into a big.Int
func (d Decimal) bigInt() (*big.Int, error) {
	if d.IsInfinite() {
		return nil, mdwerrors.MathxInvalidInput("integer", d.String(), "a finite number")
	}
	b, ok := new(big.Int).SetString(d.Truncate().String(), 10)
	if !ok {
		return nil, mdwerrors.MathxInvalidInput("integer", d.String(), "an integer")
	}
	return b, nil
}
