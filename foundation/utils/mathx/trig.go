// File: trig.go
// Title: Fixed-Precision Trigonometry and Exponentials
// Description: Trigonometric functions evaluated in float64 and rounded to the
//              context precision, angle conversions, Pythagorean addition and
//              the exp/log helpers scaled by 256.
// Author: msto63
// Version: v0.1.1
// Created: 2025-08-18
// Modified: 2025-08-22
//
// Change History:
// - 2025-08-18 v0.1.0: Initial implementation
// - 2025-08-22 v0.1.1: Exact mod 360 in Tand, reduced Degrees and Radians

package mathx

import (
	"math"

	"github.com/cockroachdb/apd/v3"

	mdwerrors "github.com/msto63/tabfun/foundation/core/errors"
)

const degToRad = math.Pi / 180

// logScale is the multiplier of Mlog and divisor of Mexp
var logScale = NewDecimalFromInt(256)

// trigResult rounds a float64 result to precision-2 fractional places and
// the context precision, then strips trailing zeros
func (c *Context) trigResult(operation string, f float64) (Decimal, error) {
	if math.IsNaN(f) {
		return Decimal{}, mdwerrors.MathxInvalidInput(operation, f, "a finite result")
	}
	if math.IsInf(f, 0) {
		return infinity(f < 0), nil
	}

	d, err := new(apd.Decimal).SetFloat64(f)
	if err != nil {
		return Decimal{}, mdwerrors.MathxArithmetic(operation, err)
	}

	places := int32(c.precision) - 2
	if places < 0 {
		places = 0
	}
	r, err := c.quantize(operation, d, places)
	if err != nil {
		return Decimal{}, err
	}
	return r.Reduce(), nil
}

func (c *Context) trig(operation string, fn func(float64) float64, x Decimal, scale float64) (Decimal, error) {
	f, err := x.Float64()
	if err != nil {
		return Decimal{}, err
	}
	return c.trigResult(operation, fn(f*scale))
}

// Sin returns the sine of x radians
func (c *Context) Sin(x Decimal) (Decimal, error) {
	return c.trig("sin", math.Sin, x, 1)
}

// Cos returns the cosine of x radians
func (c *Context) Cos(x Decimal) (Decimal, error) {
	return c.trig("cos", math.Cos, x, 1)
}

// Tan returns the tangent of x radians
func (c *Context) Tan(x Decimal) (Decimal, error) {
	return c.trig("tan", math.Tan, x, 1)
}

// Sind returns the sine of x degrees
func (c *Context) Sind(x Decimal) (Decimal, error) {
	return c.trig("sind", math.Sin, x, degToRad)
}

// Cosd returns the cosine of x degrees
func (c *Context) Cosd(x Decimal) (Decimal, error) {
	return c.trig("cosd", math.Cos, x, degToRad)
}

// Tand returns the tangent of x degrees. Angles congruent to 90 or 270
// modulo 360 return +Infinity.
func (c *Context) Tand(x Decimal) (Decimal, error) {
	if x.IsInfinite() {
		return Decimal{}, mdwerrors.MathxInvalidInput("tand", x.String(), "a finite angle")
	}

	// the integer quotient must fit, so size the context to x
	turn := apd.New(360, 0)
	exact := newApdContext(uint32(len(x.dec().Text('f'))) + guardDigits)
	r := new(apd.Decimal)
	if _, err := exact.Rem(r, x.dec(), turn); err != nil {
		return Decimal{}, mdwerrors.MathxArithmetic("tand", err)
	}
	if r.Sign() < 0 {
		if _, err := exact.Add(r, r, turn); err != nil {
			return Decimal{}, mdwerrors.MathxArithmetic("tand", err)
		}
	}
	if r.Cmp(apd.New(90, 0)) == 0 || r.Cmp(apd.New(270, 0)) == 0 {
		return infinity(false), nil
	}

	return c.trig("tand", math.Tan, x, degToRad)
}

// Degrees converts x radians to degrees
func (c *Context) Degrees(x Decimal) (Decimal, error) {
	q, err := c.Quo(x, c.Pi())
	if err != nil {
		return Decimal{}, err
	}
	d, err := c.Mul(q, NewDecimalFromInt(180))
	if err != nil {
		return Decimal{}, err
	}
	return d.Reduce(), nil
}

// Radians converts x degrees to radians
func (c *Context) Radians(x Decimal) (Decimal, error) {
	p, err := c.Mul(x, c.Pi())
	if err != nil {
		return Decimal{}, err
	}
	r, err := c.Quo(p, NewDecimalFromInt(180))
	if err != nil {
		return Decimal{}, err
	}
	return r.Reduce(), nil
}

// PythAdd returns sqrt(a*a + b*b) at the context precision
func (c *Context) PythAdd(a, b Decimal) (Decimal, error) {
	aa, err := c.Mul(a, a)
	if err != nil {
		return Decimal{}, err
	}
	bb, err := c.Mul(b, b)
	if err != nil {
		return Decimal{}, err
	}
	sum, err := c.Add(aa, bb)
	if err != nil {
		return Decimal{}, err
	}
	r, err := c.Sqrt(sum)
	if err != nil {
		return Decimal{}, err
	}
	return r.Reduce(), nil
}

// Angle returns the direction of the vector (a, b) in degrees
func (c *Context) Angle(a, b Decimal) (Decimal, error) {
	fa, err := a.Float64()
	if err != nil {
		return Decimal{}, err
	}
	fb, err := b.Float64()
	if err != nil {
		return Decimal{}, err
	}
	rad, err := c.trigResult("angle", math.Atan2(fb, fa))
	if err != nil {
		return Decimal{}, err
	}
	return c.Degrees(rad)
}

// Dir returns the unit vector (cos t, sin t) for t degrees
func (c *Context) Dir(t Decimal) (Decimal, Decimal, error) {
	x, err := c.Cosd(t)
	if err != nil {
		return Decimal{}, Decimal{}, err
	}
	y, err := c.Sind(t)
	if err != nil {
		return Decimal{}, Decimal{}, err
	}
	return x, y, nil
}

// Mexp returns exp(x/256)
func (c *Context) Mexp(x Decimal) (Decimal, error) {
	q, err := c.Quo(x, logScale)
	if err != nil {
		return Decimal{}, err
	}
	r, err := c.Exp(q)
	if err != nil {
		return Decimal{}, err
	}
	return r.Reduce(), nil
}

// Mlog returns 256*ln(x)
func (c *Context) Mlog(x Decimal) (Decimal, error) {
	l, err := c.Ln(x)
	if err != nil {
		return Decimal{}, err
	}
	r, err := c.Mul(logScale, l)
	if err != nil {
		return Decimal{}, err
	}
	return r.Reduce(), nil
}
