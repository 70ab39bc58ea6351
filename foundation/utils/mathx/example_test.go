// File: example_test.go
// Title: Example Tests for MathX Package Documentation
// Description: Executable examples for the fixed-precision math functions.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial example implementation
// - 2025-08-18 v0.2.0: Examples for Context, trigonometry, bases and SI

package mathx_test

import (
	"fmt"

	mdwmathx "github.com/msto63/tabfun/foundation/utils/mathx"
)

func ExampleNewDecimal() {
	d, _ := mdwmathx.NewDecimal("123.450")

	fmt.Println(d)
	fmt.Println(d.Reduce())
	// Output:
	// 123.450
	// 123.45
}

func ExampleContext_Sind() {
	ctx := mdwmathx.DefaultContext()

	s, _ := ctx.Sind(mdwmathx.MustNewDecimal("30"))
	t, _ := ctx.Tand(mdwmathx.MustNewDecimal("89.9"))
	fmt.Println(s, t)
	// Output:
	// 0.5 572.957213354
}

func ExampleContext_ToHex() {
	ctx := mdwmathx.DefaultContext()

	h, _ := ctx.ToHex(mdwmathx.MustNewDecimal("3.14"))
	o, _ := ctx.ToOct(mdwmathx.MustNewDecimal("100"))
	fmt.Println(h, o)
	// Output:
	// 0x3.23d70a3d70 0o144
}

func ExampleContext_SI() {
	ctx := mdwmathx.DefaultContext()

	fmt.Println(ctx.SI("12315350"))
	fmt.Println(ctx.SI("10M"))
	fmt.Println(ctx.SI("Heading"))
	// Output:
	// 12.315 M
	// 10000000
	// Heading
}

func ExampleFactors() {
	f, _ := mdwmathx.Factors(8761591)

	fmt.Println(f)
	// Output:
	// [2957 2963]
}

func ExampleComb() {
	c, _ := mdwmathx.Comb(mdwmathx.MustNewDecimal("34"), mdwmathx.MustNewDecimal("3"))
	p, _ := mdwmathx.Perm(mdwmathx.MustNewDecimal("34"), mdwmathx.MustNewDecimal("3"))

	fmt.Println(c, p)
	// Output:
	// 5984 35904
}
