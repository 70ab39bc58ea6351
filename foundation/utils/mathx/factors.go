// File: factors.go
// Title: Wheel Factorization
// Description: Prime factorization by trial division with a 2,3,5 wheel.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial implementation

package mathx

import (
	mdwerrors "github.com/msto63/tabfun/foundation/core/errors"
)

// wheel holds the trial divisor increments. The first three step from 2 to
// 7; the remaining eight repeat and skip multiples of 2, 3 and 5.
var wheel = [...]int64{1, 2, 2, 4, 2, 4, 2, 4, 6, 2, 6}

const wheelCycleStart = 3

// Factors returns the prime factors of n in non-decreasing order. The result
// is empty for 1 and a single element for a prime.
func Factors(n int64) ([]int64, error) {
	if n < 1 {
		return nil, mdwerrors.MathxInvalidInput("factors", n, "a positive integer")
	}

	factors := []int64{}
	f, i := int64(2), 0
	for f <= n/f {
		if n%f == 0 {
			factors = append(factors, f)
			n /= f
			continue
		}
		f += wheel[i]
		i++
		if i == len(wheel) {
			i = wheelCycleStart
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors, nil
}
