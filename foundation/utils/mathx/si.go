// File: si.go
// Title: SI Magnitude Formatting
// Description: Converts between plain numbers and SI-prefixed text such as
//              "12.315 M" in both directions.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial implementation

package mathx

import (
	"regexp"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// siPrefixes is indexed by power of 1000; index 0 is the unit
const siPrefixes = " kMGTPE"

var siPattern = regexp.MustCompile(`^([-+]?(?:\d+\.\d*|\.\d+|0|[1-9]\d*))\s*([ kMGTPE])$`)

// SI converts between numbers and SI-prefixed text. Text with a prefix is
// expanded to a plain number ("10M" becomes "10000000"). A plain number is
// scaled by the largest prefix not exceeding it and printed with three
// decimals ("12315350" becomes "12.315 M"). Anything else is returned
// unchanged.
func (c *Context) SI(value string) string {
	if m := siPattern.FindStringSubmatch(value); m != nil {
		if expanded, ok := c.siExpand(m[1], strings.IndexByte(siPrefixes, m[2][0])); ok {
			return expanded
		}
		return value
	}

	n, err := NewDecimal(value)
	if err != nil || n.IsInfinite() {
		return value
	}
	if formatted, ok := c.siFormat(n); ok {
		return formatted
	}
	return value
}

func (c *Context) siExpand(number string, power int) (string, bool) {
	n, err := NewDecimal(number)
	if err != nil {
		return "", false
	}
	scale := int64(1)
	for i := 0; i < power; i++ {
		scale *= 1000
	}
	r, err := c.Mul(n, NewDecimalFromInt(scale))
	if err != nil {
		return "", false
	}
	return r.String(), true
}

func (c *Context) siFormat(n Decimal) (string, bool) {
	wide := newApdContext(c.precision + guardDigits)

	// floor(log10|n|) is one less than the integer digit count
	power := 0
	if whole := n.Abs().Truncate(); !whole.IsZero() {
		power = (len(whole.String()) - 1) / 3
		if power > len(siPrefixes)-1 {
			power = len(siPrefixes) - 1
		}
	}

	scaled := new(apd.Decimal)
	if _, err := wide.Quo(scaled, n.dec(), apd.New(1, int32(3*power))); err != nil {
		return "", false
	}
	q, err := c.quantize("si", scaled, 3)
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(q.String() + " " + string(siPrefixes[power])), true
}
