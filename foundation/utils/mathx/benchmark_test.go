// File: benchmark_test.go
// Title: Performance Benchmarks for MathX Functions
// Description: Benchmarks for factorization, trigonometry and base conversion.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial benchmark implementation
// - 2025-08-18 v0.2.0: Benchmarks for the apd based functions

package mathx

import (
	"testing"
)

func BenchmarkFactorsPrime(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Factors(1000039)
	}
}

func BenchmarkFactorsTwinPrimes(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Factors(8761591)
	}
}

func BenchmarkSind(b *testing.B) {
	c := DefaultContext()
	x := MustNewDecimal("30")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Sind(x)
	}
}

func BenchmarkToHex(b *testing.B) {
	c := DefaultContext()
	x := MustNewDecimal("3.14")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.ToHex(x)
	}
}

func BenchmarkSI(b *testing.B) {
	c := DefaultContext()
	for i := 0; i < b.N; i++ {
		_ = c.SI("12315350")
	}
}
