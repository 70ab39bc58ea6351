// File: factors_test.go
// Title: Factorization and Integer Adapter Tests
// Description: Tests for wheel factorization and the gcd, lcm, comb and
//              perm adapters.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial implementation

package mathx

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	mdwerror "github.com/msto63/tabfun/foundation/core/error"
)

func TestFactors(t *testing.T) {
	testCases := []struct {
		name  string
		input int64
		want  []int64
	}{
		{"one", 1, []int64{}},
		{"two", 2, []int64{2}},
		{"composite", 12345, []int64{3, 5, 823}},
		{"power of two", 128, []int64{2, 2, 2, 2, 2, 2, 2}},
		{"semiprime", 817, []int64{19, 43}},
		{"large cofactor", 1000038, []int64{2, 3, 13, 12821}},
		{"prime", 1000039, []int64{1000039}},
		{"twin primes", 8761591, []int64{2957, 2963}},
		{"primorial", 304250263527210, []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41}},
		{"square of prime", 49, []int64{7, 7}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Factors(tc.input)
			if err != nil {
				t.Fatalf("Factors(%d) unexpected error: %v", tc.input, err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Factors(%d) mismatch (-want +got):\n%s", tc.input, diff)
			}
		})
	}
}

func TestFactorsProperties(t *testing.T) {
	for n := int64(1); n <= 5000; n++ {
		got, err := Factors(n)
		if err != nil {
			t.Fatalf("Factors(%d) unexpected error: %v", n, err)
		}

		product := int64(1)
		for _, f := range got {
			product *= f
		}
		if product != n {
			t.Fatalf("Factors(%d) = %v, product %d", n, got, product)
		}
		if !sort.SliceIsSorted(got, func(i, j int) bool { return got[i] < got[j] }) {
			t.Fatalf("Factors(%d) = %v, not sorted", n, got)
		}
	}
}

func TestFactorsInvalid(t *testing.T) {
	for _, n := range []int64{0, -12} {
		if _, err := Factors(n); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
			t.Errorf("Factors(%d) error = %v, want INVALID_INPUT", n, err)
		}
	}
}

func TestGcdLcm(t *testing.T) {
	testCases := []struct {
		name string
		fn   func(...Decimal) (Decimal, error)
		args []string
		want string
	}{
		{"gcd truncates", Gcd, []string{"34", "3.14"}, "1"},
		{"gcd", Gcd, []string{"299", "702"}, "13"},
		{"gcd three", Gcd, []string{"12", "18", "27"}, "3"},
		{"gcd negative", Gcd, []string{"-12", "18"}, "6"},
		{"gcd empty", Gcd, nil, "0"},
		{"lcm", Lcm, []string{"34", "3"}, "102"},
		{"lcm larger", Lcm, []string{"299", "702"}, "16146"},
		{"lcm with zero", Lcm, []string{"0", "5"}, "0"},
		{"lcm empty", Lcm, nil, "1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			args := make([]Decimal, len(tc.args))
			for i, a := range tc.args {
				args[i] = MustNewDecimal(a)
			}
			got, err := tc.fn(args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestCombPerm(t *testing.T) {
	testCases := []struct {
		name    string
		fn      func(n, k Decimal) (Decimal, error)
		n, k    string
		want    string
		wantErr bool
	}{
		{"comb 34 3", Comb, "34", "3", "5984", false},
		{"comb 11 7", Comb, "11", "7", "330", false},
		{"comb truncates", Comb, "11.9", "7.2", "330", false},
		{"comb k above n", Comb, "3", "5", "0", false},
		{"comb zero", Comb, "5", "0", "1", false},
		{"perm 34 3", Perm, "34", "3", "35904", false},
		{"perm 11 7", Perm, "11", "7", "1663200", false},
		{"perm k above n", Perm, "3", "5", "0", false},
		{"perm zero", Perm, "5", "0", "1", false},
		{"comb negative", Comb, "-1", "2", "", true},
		{"perm negative", Perm, "4", "-2", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.fn(MustNewDecimal(tc.n), MustNewDecimal(tc.k))
			if tc.wantErr {
				if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
					t.Errorf("error = %v, want INVALID_INPUT", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}
