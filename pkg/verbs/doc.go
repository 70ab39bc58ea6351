// File: doc.go
// Title: Verb Registry Package Documentation
// Description: Exposes the date, clock and math conversions as named verbs
//              that a table expression evaluator can call with scalar
//              arguments.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-20
//
// Change History:
// - 2025-01-25 v0.1.0: Initial registry implementation
// - 2025-08-20 v0.2.0: Verb registry over timex and mathx

/*
Package verbs exposes the tabfun conversions as named verbs.

A verb takes already isolated scalar text and returns scalar text. The
package provides:

  • Registration of verbs with aliases and argument bounds
  • Unique-prefix abbreviation lookup
  • An explicit Env holding precision, today anchor and thresholds
  • Builtin date, clock, trigonometry, numeral and integer verbs

Strict verbs such as parse_date return the typed error of the underlying
package. Lenient verbs such as date, epoch, as_time and si always return a
value and fall back to today or to their input.

	reg, _ := verbs.New(verbs.Options{})
	env := verbs.DefaultEnv()
	out, err := reg.Call(env, "parse_date", "22 November 2022") // "738481"
*/
package verbs
