// File: taxyear.go
// Title: UK Fiscal Year
// Description: Labels a date with the UK tax year that starts on 6 April.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.1.0: Initial implementation

package timex

import (
	"fmt"
	"time"
)

// UKTaxYear returns the "TYyy/yy" label of the UK tax year holding value,
// which is parsed like ParseDate. 5 April 2023 is in TY22/23 and 6 April 2023
// starts TY23/24.
func UKTaxYear(value interface{}, today Anchor) (string, error) {
	o, err := ParseDate(value, today)
	if err != nil {
		return "", err
	}
	d, err := o.Date()
	if err != nil {
		return "", err
	}

	year := d.Year
	start, err := ToOrdinal(year, time.April, 6)
	if err != nil {
		return "", err
	}
	if o < start {
		year--
	}
	return fmt.Sprintf("TY%02d/%02d", year%100, (year+1)%100), nil
}
