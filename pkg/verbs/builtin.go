// File: builtin.go
// Title: Builtin Verb Table
// Description: The declarative table of builtin verbs and the argument
//              helpers shared by their implementations.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-20
// Modified: 2025-08-20
//
// Change History:
// - 2025-08-20 v0.1.0: Initial implementation

package verbs

import (
	"strconv"
	"strings"

	mdwerrors "github.com/msto63/tabfun/foundation/core/errors"
	mdwmathx "github.com/msto63/tabfun/foundation/utils/mathx"
)

// builtins returns fresh definitions; Register normalizes them in place
func builtins() []*Definition {
	return []*Definition{
		// dates
		{Name: "date", Usage: "n [format]", MinArgs: 1, MaxArgs: 2, Lenient: true, Fn: verbDate,
			Description: "Render an ordinal, day offset or epoch timestamp as a date"},
		{Name: "parse_date", Usage: "value", MinArgs: 1, MaxArgs: 1, Fn: verbParseDate, Aliases: []string{"ordinal"},
			Description: "Parse a date in any known format to its ordinal"},
		{Name: "base", Usage: "[value]", MinArgs: 0, MaxArgs: 1, Fn: verbBase,
			Description: "Ordinal of a date, or of today when blank"},
		{Name: "dow", Usage: "[value]", MinArgs: 0, MaxArgs: 1, Fn: verbDow,
			Description: "Abbreviated weekday name of a date"},
		{Name: "make_date", Usage: "year month day [format]", MinArgs: 3, MaxArgs: 4, Fn: verbMakeDate,
			Description: "Build a date from parts, rolling overflow forward"},
		{Name: "epoch", Usage: "datetime", MinArgs: 1, MaxArgs: 1, Lenient: true, Fn: verbEpoch,
			Description: "Unix seconds of a UTC date and time"},
		{Name: "uk_tax_year", Usage: "value", MinArgs: 1, MaxArgs: 1, Fn: verbUKTaxYear, Aliases: []string{"taxyear"},
			Description: "UK tax year label such as TY22/23"},

		// clock
		{Name: "hms", Usage: "value [unit]", MinArgs: 1, MaxArgs: 2, Fn: verbHMS,
			Description: "Format a fractional quantity as H:MM:SS.sss"},
		{Name: "hr", Usage: "h:mm:ss", MinArgs: 1, MaxArgs: 1, Fn: sexagesimalVerb(0), Aliases: []string{"hours"},
			Description: "Fractional hours of H:MM:SS text"},
		{Name: "mins", Usage: "h:mm:ss", MinArgs: 1, MaxArgs: 1, Fn: sexagesimalVerb(1), Aliases: []string{"minutes"},
			Description: "Fractional minutes of H:MM:SS text"},
		{Name: "secs", Usage: "h:mm:ss", MinArgs: 1, MaxArgs: 1, Fn: sexagesimalVerb(2), Aliases: []string{"seconds"},
			Description: "Fractional seconds of H:MM:SS text"},
		{Name: "as_time", Usage: "phrase", MinArgs: 1, MaxArgs: 1, Lenient: true, Fn: verbAsTime,
			Description: "Normalize a 12-hour clock phrase to HH:MM"},

		// trigonometry
		{Name: "sin", Usage: "x", MinArgs: 1, MaxArgs: 1, Fn: unaryMath((*mdwmathx.Context).Sin), Description: "Sine of radians"},
		{Name: "cos", Usage: "x", MinArgs: 1, MaxArgs: 1, Fn: unaryMath((*mdwmathx.Context).Cos), Description: "Cosine of radians"},
		{Name: "tan", Usage: "x", MinArgs: 1, MaxArgs: 1, Fn: unaryMath((*mdwmathx.Context).Tan), Description: "Tangent of radians"},
		{Name: "sind", Usage: "x", MinArgs: 1, MaxArgs: 1, Fn: unaryMath((*mdwmathx.Context).Sind), Description: "Sine of degrees"},
		{Name: "cosd", Usage: "x", MinArgs: 1, MaxArgs: 1, Fn: unaryMath((*mdwmathx.Context).Cosd), Description: "Cosine of degrees"},
		{Name: "tand", Usage: "x", MinArgs: 1, MaxArgs: 1, Fn: unaryMath((*mdwmathx.Context).Tand), Description: "Tangent of degrees"},
		{Name: "degrees", Usage: "x", MinArgs: 1, MaxArgs: 1, Fn: unaryMath((*mdwmathx.Context).Degrees), Description: "Radians to degrees"},
		{Name: "radians", Usage: "x", MinArgs: 1, MaxArgs: 1, Fn: unaryMath((*mdwmathx.Context).Radians), Description: "Degrees to radians"},
		{Name: "pyth_add", Usage: "a b", MinArgs: 2, MaxArgs: 2, Fn: binaryMath((*mdwmathx.Context).PythAdd), Aliases: []string{"pyth"},
			Description: "sqrt(a*a + b*b)"},
		{Name: "angle", Usage: "a b", MinArgs: 2, MaxArgs: 2, Fn: binaryMath((*mdwmathx.Context).Angle),
			Description: "Direction of the vector (a, b) in degrees"},
		{Name: "dir", Usage: "t", MinArgs: 1, MaxArgs: 1, Fn: verbDir,
			Description: "Unit vector for t degrees as \"x y\""},
		{Name: "mexp", Usage: "x", MinArgs: 1, MaxArgs: 1, Fn: unaryMath((*mdwmathx.Context).Mexp), Description: "exp(x/256)"},
		{Name: "mlog", Usage: "x", MinArgs: 1, MaxArgs: 1, Fn: unaryMath((*mdwmathx.Context).Mlog), Description: "256*ln(x)"},

		// numerals
		{Name: "hex", Usage: "x", MinArgs: 1, MaxArgs: 1, Fn: verbBase16, Description: "Hexadecimal rendering"},
		{Name: "oct", Usage: "x", MinArgs: 1, MaxArgs: 1, Fn: verbBase8, Description: "Octal rendering"},
		{Name: "si", Usage: "value", MinArgs: 1, MaxArgs: 1, Lenient: true, Fn: verbSI,
			Description: "Convert between numbers and SI-prefixed text"},

		// integers
		{Name: "factors", Usage: "n", MinArgs: 1, MaxArgs: 1, Fn: verbFactors, Description: "Prime factors, space separated"},
		{Name: "gcd", Usage: "n...", MinArgs: 0, MaxArgs: Variadic, Fn: variadicInteger(mdwmathx.Gcd),
			Description: "Greatest common divisor"},
		{Name: "lcm", Usage: "n...", MinArgs: 0, MaxArgs: Variadic, Fn: variadicInteger(mdwmathx.Lcm),
			Description: "Least common multiple"},
		{Name: "comb", Usage: "n k", MinArgs: 2, MaxArgs: 2, Fn: binaryInteger(mdwmathx.Comb),
			Description: "Combinations of k from n"},
		{Name: "perm", Usage: "n k", MinArgs: 2, MaxArgs: 2, Fn: binaryInteger(mdwmathx.Perm),
			Description: "Permutations of k from n"},
	}
}

// arg returns args[i], or def when absent
func arg(args []string, i int, def string) string {
	if i < len(args) {
		return args[i]
	}
	return def
}

func decimalArg(verb string, args []string, i int) (mdwmathx.Decimal, error) {
	d, err := mdwmathx.NewDecimal(arg(args, i, ""))
	if err != nil {
		return mdwmathx.Decimal{}, mdwerrors.InvalidInput("verbs", verb, arg(args, i, ""), "a decimal number")
	}
	return d, nil
}

func intArg(verb string, args []string, i int) (int, error) {
	text := strings.TrimSpace(arg(args, i, ""))
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, mdwerrors.InvalidInput("verbs", verb, text, "an integer")
	}
	return n, nil
}

func floatArg(verb string, args []string, i int) (float64, error) {
	text := strings.TrimSpace(arg(args, i, ""))
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, mdwerrors.InvalidInput("verbs", verb, text, "a number")
	}
	return f, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
