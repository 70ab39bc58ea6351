// File: builtin_math.go
// Title: Math Verbs
// Description: Verb adapters over mathx. Every verb reads its precision from
//              the Env.
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

	mdwmathx "github.com/msto63/tabfun/foundation/utils/mathx"
)

type unaryFunc func(*mdwmathx.Context, mdwmathx.Decimal) (mdwmathx.Decimal, error)

type binaryFunc func(*mdwmathx.Context, mdwmathx.Decimal, mdwmathx.Decimal) (mdwmathx.Decimal, error)

func unaryMath(fn unaryFunc) Func {
	return func(env *Env, args []string) (string, error) {
		x, err := decimalArg("math", args, 0)
		if err != nil {
			return "", err
		}
		r, err := fn(env.math(), x)
		if err != nil {
			return "", err
		}
		return r.String(), nil
	}
}

func binaryMath(fn binaryFunc) Func {
	return func(env *Env, args []string) (string, error) {
		a, err := decimalArg("math", args, 0)
		if err != nil {
			return "", err
		}
		b, err := decimalArg("math", args, 1)
		if err != nil {
			return "", err
		}
		r, err := fn(env.math(), a, b)
		if err != nil {
			return "", err
		}
		return r.String(), nil
	}
}

func verbDir(env *Env, args []string) (string, error) {
	t, err := decimalArg("dir", args, 0)
	if err != nil {
		return "", err
	}
	x, y, err := env.math().Dir(t)
	if err != nil {
		return "", err
	}
	return x.String() + " " + y.String(), nil
}

func verbBase16(env *Env, args []string) (string, error) {
	x, err := decimalArg("hex", args, 0)
	if err != nil {
		return "", err
	}
	return env.math().ToHex(x)
}

func verbBase8(env *Env, args []string) (string, error) {
	x, err := decimalArg("oct", args, 0)
	if err != nil {
		return "", err
	}
	return env.math().ToOct(x)
}

func verbSI(env *Env, args []string) (string, error) {
	return env.math().SI(args[0]), nil
}

func verbFactors(env *Env, args []string) (string, error) {
	x, err := decimalArg("factors", args, 0)
	if err != nil {
		return "", err
	}
	n, err := x.Int64()
	if err != nil {
		return "", err
	}
	factors, err := mdwmathx.Factors(n)
	if err != nil {
		return "", err
	}

	parts := make([]string, len(factors))
	for i, f := range factors {
		parts[i] = strconv.FormatInt(f, 10)
	}
	return strings.Join(parts, " "), nil
}

func variadicInteger(fn func(...mdwmathx.Decimal) (mdwmathx.Decimal, error)) Func {
	return func(env *Env, args []string) (string, error) {
		values := make([]mdwmathx.Decimal, len(args))
		for i := range args {
			d, err := decimalArg("integer", args, i)
			if err != nil {
				return "", err
			}
			values[i] = d
		}
		r, err := fn(values...)
		if err != nil {
			return "", err
		}
		return r.String(), nil
	}
}

func binaryInteger(fn func(n, k mdwmathx.Decimal) (mdwmathx.Decimal, error)) Func {
	return func(env *Env, args []string) (string, error) {
		n, err := decimalArg("integer", args, 0)
		if err != nil {
			return "", err
		}
		k, err := decimalArg("integer", args, 1)
		if err != nil {
			return "", err
		}
		r, err := fn(n, k)
		if err != nil {
			return "", err
		}
		return r.String(), nil
	}
}
