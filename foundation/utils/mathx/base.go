// File: base.go
// Title: Numeral Base Conversion
// Description: Renders decimals in base 16 or base 8 with a bounded
//              fractional expansion.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial implementation

package mathx

import (
	"strings"

	"github.com/cockroachdb/apd/v3"

	mdwerrors "github.com/msto63/tabfun/foundation/core/errors"
)

const baseDigits = "0123456789abcdef"

var basePrefixes = map[int]string{
	16: "0x",
	8:  "0o",
}

// ToBase renders x in base 16 or 8 with its 0x or 0o prefix. A fractional
// part is expanded digit by digit until it terminates or the text, prefix
// included, reaches 2+precision characters.
func (c *Context) ToBase(x Decimal, base int) (string, error) {
	prefix, ok := basePrefixes[base]
	if !ok {
		return "", mdwerrors.MathxInvalidInput("toBase", base, "base 8 or 16")
	}
	if x.IsInfinite() {
		return "", mdwerrors.MathxInvalidInput("toBase", x.String(), "a finite number")
	}

	var b strings.Builder
	if x.Sign() < 0 {
		b.WriteByte('-')
		x = x.Abs()
	}

	integ, frac := new(apd.Decimal), new(apd.Decimal)
	x.dec().Modf(integ, frac)

	whole, err := Decimal{value: integ}.bigInt()
	if err != nil {
		return "", err
	}
	start := b.Len()
	b.WriteString(prefix)
	b.WriteString(whole.Text(base))

	if frac.IsZero() {
		return b.String(), nil
	}

	b.WriteByte('.')
	limit := 2 + c.Precision()
	radix := apd.New(int64(base), 0)
	scaled, digit := new(apd.Decimal), new(apd.Decimal)
	for !frac.IsZero() && b.Len()-start < limit {
		if _, err := c.ctx.Mul(scaled, frac, radix); err != nil {
			return "", mdwerrors.MathxArithmetic("toBase", err)
		}
		frac = new(apd.Decimal)
		scaled.Modf(digit, frac)
		n, err := digit.Int64()
		if err != nil {
			return "", mdwerrors.MathxArithmetic("toBase", err)
		}
		b.WriteByte(baseDigits[n])
	}
	return strings.TrimSuffix(b.String(), "."), nil
}

// ToHex renders x in base 16
func (c *Context) ToHex(x Decimal) (string, error) {
	return c.ToBase(x, 16)
}

// ToOct renders x in base 8
func (c *Context) ToOct(x Decimal) (string, error) {
	return c.ToBase(x, 8)
}
