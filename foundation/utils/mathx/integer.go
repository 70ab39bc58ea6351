// File: integer.go
// Title: Integer Adapters
// Description: gcd, lcm, comb and perm over decimals. Operands are truncated
//              to integers before the integer algorithm runs.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial implementation

package mathx

import (
	"math/big"

	mdwerrors "github.com/msto63/tabfun/foundation/core/errors"
)

// Gcd returns the greatest common divisor of the truncated operands.
// Gcd of no operands is 0.
func Gcd(values ...Decimal) (Decimal, error) {
	acc := new(big.Int)
	for _, v := range values {
		b, err := v.bigInt()
		if err != nil {
			return Decimal{}, err
		}
		acc.GCD(nil, nil, acc, b.Abs(b))
	}
	return newDecimalFromBig(acc), nil
}

// Lcm returns the least common multiple of the truncated operands.
// Lcm of no operands is 1; any zero operand makes it 0.
func Lcm(values ...Decimal) (Decimal, error) {
	acc := big.NewInt(1)
	for _, v := range values {
		b, err := v.bigInt()
		if err != nil {
			return Decimal{}, err
		}
		b.Abs(b)
		if b.Sign() == 0 {
			acc.SetInt64(0)
			continue
		}
		if acc.Sign() == 0 {
			continue
		}
		g := new(big.Int).GCD(nil, nil, acc, b)
		acc.Mul(acc, b.Quo(b, g))
	}
	return newDecimalFromBig(acc), nil
}

func choose(operation string, n, k Decimal) (int64, int64, error) {
	ni, err := n.Int64()
	if err != nil {
		return 0, 0, err
	}
	ki, err := k.Int64()
	if err != nil {
		return 0, 0, err
	}
	if ni < 0 || ki < 0 {
		return 0, 0, mdwerrors.MathxInvalidInput(operation, []int64{ni, ki}, "non-negative integers")
	}
	return ni, ki, nil
}

// Comb returns the number of ways to choose k items from n without order.
// It is 0 when k > n.
func Comb(n, k Decimal) (Decimal, error) {
	ni, ki, err := choose("comb", n, k)
	if err != nil {
		return Decimal{}, err
	}
	if ki > ni {
		return Zero(), nil
	}
	return newDecimalFromBig(new(big.Int).Binomial(ni, ki)), nil
}

// Perm returns the number of ordered selections of k items from n.
// It is 0 when k > n.
func Perm(n, k Decimal) (Decimal, error) {
	ni, ki, err := choose("perm", n, k)
	if err != nil {
		return Decimal{}, err
	}
	if ki > ni {
		return Zero(), nil
	}
	return newDecimalFromBig(new(big.Int).MulRange(ni-ki+1, ni)), nil
}
