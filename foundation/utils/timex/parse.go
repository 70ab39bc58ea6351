// File: parse.go
// Title: Date Parse Cascade
// Description: ParseDate turns ordinals, weekday names and loosely formatted
//              dates into day ordinals. Dow, Base and MakeDate build on it.
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
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/ncruces/go-strftime"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	mdwerrors "github.com/msto63/tabfun/foundation/core/errors"
)

// ISODate is the Go layout of an ISO 8601 calendar date
const ISODate = "2006-01-02"

var weekdayNames = map[string]int{
	"Monday":    1,
	"Tuesday":   2,
	"Wednesday": 3,
	"Thursday":  4,
	"Friday":    5,
	"Saturday":  6,
	"Sunday":    7,
}

// ParseDate interprets value as a date and returns its ordinal.
//
// Integers inside [MinOrdinal, MaxOrdinal] are ordinals. Anything else is
// read as text: a digit string no larger than MaxOrdinal is an ordinal, an
// English weekday name is that day of the ISO week holding today, and any
// other text is matched against DateFormats in order. The error satisfies
// IsUnparseable when nothing matches.
func ParseDate(value interface{}, today Anchor) (Ordinal, error) {
	if n, ok := asInteger(value); ok && Ordinal(n).Valid() {
		return Ordinal(n), nil
	}

	text := fmt.Sprint(value)
	if o, ok := parseText(text, today); ok {
		return o, nil
	}
	return 0, mdwerrors.TimexUnparseableDate("ParseDate", text)
}

func parseText(s string, today Anchor) (Ordinal, bool) {
	if isDigits(s) {
		n, err := strconv.ParseInt(s, 10, 64)
		if err == nil && n <= int64(MaxOrdinal) {
			// "0" is all digits but names no day
			return Ordinal(n), Ordinal(n).Valid()
		}
	}

	if dow, ok := weekdayNames[cases.Title(language.English).String(s)]; ok {
		return weekdayInWeekOf(today.Today(), dow), true
	}

	s = strings.ReplaceAll(s, "Sept ", "Sep ")
	for _, f := range dateFormats {
		d, ok := f.parse(s)
		if !ok || d.Year < minYear || d.Year > maxYear {
			continue
		}
		return OrdinalOf(d), true
	}
	return 0, false
}

// weekdayInWeekOf returns ISO weekday dow (1 = Monday) of the ISO week holding d
func weekdayInWeekOf(d civil.Date, dow int) Ordinal {
	monday := d.AddDays(1 - isoWeekday(d))
	return OrdinalOf(monday.AddDays(dow - 1))
}

func asInteger(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint:
		if uint64(v) > uint64(MaxOrdinal) {
			return 0, false
		}
		return int64(v), true
	case uint64:
		if v > uint64(MaxOrdinal) {
			return 0, false
		}
		return int64(v), true
	case Ordinal:
		return int64(v), true
	default:
		return 0, false
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Base returns the ordinal of value, or of today when value is blank
func Base(value string, today Anchor) (Ordinal, error) {
	if strings.TrimSpace(value) == "" {
		return today.Ordinal(), nil
	}
	return ParseDate(value, today)
}

// Dow returns the abbreviated English weekday name of value ("Mon"),
// or of today when value is blank
func Dow(value string, today Anchor) (string, error) {
	o, err := Base(value, today)
	if err != nil {
		return "", err
	}
	d, err := o.Date()
	if err != nil {
		return "", err
	}
	return strftime.Format("%a", d.In(time.UTC)), nil
}

// MakeDate builds a date from possibly overflowing parts. Months above 12
// roll into later years and the day counts on from the first of the month,
// so MakeDate(2023, 13, 43, "") is "2024-02-12". The result is ISO 8601
// unless a strftime format is given.
func MakeDate(year, month, day int, format string) (string, error) {
	first, err := ToOrdinal(year, time.Month(month), 1)
	if err != nil {
		return "", err
	}
	d, err := FromOrdinal(int64(first) - 1 + int64(day))
	if err != nil {
		return "", err
	}
	if format == "" {
		return d.String(), nil
	}
	return strftime.Format(format, d.In(time.UTC)), nil
}
