// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides fixed-precision decimal arithmetic for
//              computed table columns: trigonometry rounded to a significant
//              digit count, base conversion, SI magnitude formatting and
//              integer helpers such as factorization.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-08-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with decimal arithmetic and business functions
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2025-08-18 v0.3.0: Rebased on apd with an explicit precision Context; business
//                       and currency helpers removed

// Package mathx provides fixed-precision decimal math for table verbs.
//
// Package: mathx
// Title: Fixed-Precision Decimal Math
// Description: Decimal values are immutable and carry no precision of their
//              own. Every operation that rounds takes a *Context, so two
//              callers with different precisions never interfere.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-08-18
//
// Overview
//
// The package is built on github.com/cockroachdb/apd/v3. A Context wraps an
// apd context with half-even rounding and a significant digit count between
// 1 and MaxPrecision; DefaultContext uses 12 digits.
//
// Trigonometric functions evaluate in float64 and then round the result to
// the context precision with trailing zeros stripped. Conversions that are
// exact in decimal (Degrees, Radians, PythAdd, Mexp, Mlog) run in the context.
//
// Basic Usage
//
//	ctx := mathx.DefaultContext()
//	x := mathx.MustNewDecimal("30")
//	s, _ := ctx.Sind(x)       // 0.5
//	h, _ := ctx.ToHex(mathx.MustNewDecimal("3.14")) // 0x3.23d70a3d70
//	f, _ := mathx.Factors(817) // [19 43]
//
// Error Handling
//
// Errors are *error.Error values from foundation/core/error with codes
// INVALID_DECIMAL, DIVISION_BY_ZERO, ARITHMETIC or INVALID_INPUT.
//
// Thread Safety
//
// Decimal values are immutable and a Context is read-only after creation,
// so both may be shared between goroutines.
package mathx
