// File: context.go
// Title: Precision Context
// Description: Context carries the significant digit count for all rounding
//              operations. It replaces a process-wide precision setting and is
//              threaded explicitly through every call.
// Author: msto63
// Version: v0.1.1
// Created: 2025-08-18
// Modified: 2025-08-22
//
// Change History:
// - 2025-08-18 v0.1.0: Initial implementation
// - 2025-08-22 v0.1.1: Tau is the sum of the rounded Pi

package mathx

import (
	"github.com/cockroachdb/apd/v3"

	mdwerrors "github.com/msto63/tabfun/foundation/core/errors"
)

const (
	// DefaultPrecision is the significant digit count of DefaultContext
	DefaultPrecision = 12

	// MaxPrecision bounds NewContext
	MaxPrecision = 100

	// guardDigits is the minimum headroom of the quantize context
	guardDigits = 20
)

// piText holds pi to more digits than MaxPrecision
const piText = "3.14159265358979323846264338327950288419716939937510582097494459230781640628620899862803482534211706798"

// Context rounds results half-even to a fixed number of significant digits
type Context struct {
	precision uint32
	ctx       *apd.Context
}

// NewContext returns a context with the given significant digit count
func NewContext(precision int) (*Context, error) {
	if precision < 1 || precision > MaxPrecision {
		return nil, mdwerrors.OutOfRange("mathx", "context", precision, 1, MaxPrecision)
	}
	return &Context{
		precision: uint32(precision),
		ctx:       newApdContext(uint32(precision)),
	}, nil
}

func newApdContext(precision uint32) *apd.Context {
	return &apd.Context{
		Precision:   precision,
		Rounding:    apd.RoundHalfEven,
		MaxExponent: apd.MaxExponent,
		MinExponent: apd.MinExponent,
		Traps:       apd.DefaultTraps,
	}
}

// DefaultContext returns a context with DefaultPrecision digits
func DefaultContext() *Context {
	c, _ := NewContext(DefaultPrecision)
	return c
}

// Precision returns the significant digit count
func (c *Context) Precision() int {
	return int(c.precision)
}

type binaryOp func(d, x, y *apd.Decimal) (apd.Condition, error)

func (c *Context) binary(operation string, op binaryOp, x, y Decimal) (Decimal, error) {
	r := new(apd.Decimal)
	if _, err := op(r, x.dec(), y.dec()); err != nil {
		return Decimal{}, mdwerrors.MathxArithmetic(operation, err)
	}
	return Decimal{value: r}, nil
}

type unaryOp func(d, x *apd.Decimal) (apd.Condition, error)

func (c *Context) unary(operation string, op unaryOp, x Decimal) (Decimal, error) {
	r := new(apd.Decimal)
	if _, err := op(r, x.dec()); err != nil {
		return Decimal{}, mdwerrors.MathxArithmetic(operation, err)
	}
	return Decimal{value: r}, nil
}

// Add returns x + y rounded to the context precision
func (c *Context) Add(x, y Decimal) (Decimal, error) {
	return c.binary("add", c.ctx.Add, x, y)
}

// Sub returns x - y
func (c *Context) Sub(x, y Decimal) (Decimal, error) {
	return c.binary("sub", c.ctx.Sub, x, y)
}

// Mul returns x * y
func (c *Context) Mul(x, y Decimal) (Decimal, error) {
	return c.binary("mul", c.ctx.Mul, x, y)
}

// Quo returns x / y; a zero divisor is an error
func (c *Context) Quo(x, y Decimal) (Decimal, error) {
	if y.IsZero() {
		return Decimal{}, mdwerrors.MathxDivisionByZero("quo")
	}
	return c.binary("quo", c.ctx.Quo, x, y)
}

// Sqrt returns the square root of x
func (c *Context) Sqrt(x Decimal) (Decimal, error) {
	return c.unary("sqrt", c.ctx.Sqrt, x)
}

// Exp returns e**x
func (c *Context) Exp(x Decimal) (Decimal, error) {
	return c.unary("exp", c.ctx.Exp, x)
}

// Ln returns the natural logarithm of x
func (c *Context) Ln(x Decimal) (Decimal, error) {
	return c.unary("ln", c.ctx.Ln, x)
}

// Round rounds x to the context precision
func (c *Context) Round(x Decimal) (Decimal, error) {
	return c.unary("round", c.ctx.Round, x)
}

// Pi returns pi rounded to the context precision
func (c *Context) Pi() Decimal {
	pi, _, _ := apd.NewFromString(piText)
	r := new(apd.Decimal)
	_, _ = c.ctx.Round(r, pi)
	return Decimal{value: r}
}

// Tau returns Pi() + Pi(), so it always equals twice the rounded pi
func (c *Context) Tau() Decimal {
	pi := c.Pi()
	tau, _ := c.Add(pi, pi)
	return tau
}

// quantize rounds x to the given number of fractional places and then to
// the context precision
func (c *Context) quantize(operation string, x *apd.Decimal, places int32) (Decimal, error) {
	digits := c.precision + guardDigits
	if n := uint32(len(x.Text('f'))) + uint32(places) + 1; n > digits {
		digits = n
	}

	q := new(apd.Decimal)
	if _, err := newApdContext(digits).Quantize(q, x, -places); err != nil {
		return Decimal{}, mdwerrors.MathxArithmetic(operation, err)
	}
	r := new(apd.Decimal)
	if _, err := c.ctx.Round(r, q); err != nil {
		return Decimal{}, mdwerrors.MathxArithmetic(operation, err)
	}
	return Decimal{value: r}, nil
}
