// File: formats.go
// Title: Date Format Table
// Description: Ordered table of the textual date formats tried by ParseDate.
//              Each entry pairs its strftime spelling with a parser.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.1.0: Initial implementation

package timex

import (
	"regexp"
	"strconv"
	"time"

	"cloud.google.com/go/civil"
)

// dateFormat is one entry of the parse cascade
type dateFormat struct {
	// Pattern is the strftime spelling of the format
	Pattern string
	parse   func(s string) (civil.Date, bool)
}

// layout returns a parser for a Go reference layout
func layout(goLayout string) func(string) (civil.Date, bool) {
	return func(s string) (civil.Date, bool) {
		t, err := time.Parse(goLayout, s)
		if err != nil {
			return civil.Date{}, false
		}
		return civil.DateOf(t), true
	}
}

var isoWeekDate = regexp.MustCompile(`^(\d{4})-W(\d{1,2})-([1-7])$`)

// parseISOWeekDate reads %G-W%V-%u: ISO year, week 1-53, weekday 1-7
func parseISOWeekDate(s string) (civil.Date, bool) {
	m := isoWeekDate.FindStringSubmatch(s)
	if m == nil {
		return civil.Date{}, false
	}
	year, _ := strconv.Atoi(m[1])
	week, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	if week < 1 || week > 53 {
		return civil.Date{}, false
	}
	return isoWeekStart(year, week).AddDays(day - 1), true
}

// isoWeekStart returns the Monday of ISO week w of ISO year y.
// Week 1 is the week holding 4 January.
func isoWeekStart(y, w int) civil.Date {
	jan4 := civil.Date{Year: y, Month: time.January, Day: 4}
	monday := jan4.AddDays(1 - isoWeekday(jan4))
	return monday.AddDays((w - 1) * 7)
}

// dateFormats is tried in order; the first entry that parses wins.
// Day-first slash forms precede the month-first one.
var dateFormats = []dateFormat{
	{"%Y-%m-%d", layout("2006-1-2")},
	{"%Y%m%d", layout("20060102")},
	{"%d %B %Y", layout("2 January 2006")},
	{"%d %b %Y", layout("2 Jan 2006")},
	{"%G-W%V-%u", parseISOWeekDate},
	{"%d-%b-%Y", layout("2-Jan-2006")},
	{"%d %b %y", layout("2 Jan 06")},
	{"%d %B %y", layout("2 January 06")},
	{"%d/%m/%Y", layout("2/1/2006")},
	{"%d/%m/%y", layout("2/1/06")},
	{"%B %d, %Y", layout("January 2, 2006")},
	{"%A %d %B %Y", layout("Monday 2 January 2006")},
	{"%a %dth %b %Y", layout("Mon 2th Jan 2006")},
	{"%a %dst %b %Y", layout("Mon 2st Jan 2006")},
	{"%a %dnd %b %Y", layout("Mon 2nd Jan 2006")},
	{"%a %drd %b %Y", layout("Mon 2rd Jan 2006")},
	{"%a %dth %B %Y", layout("Mon 2th January 2006")},
	{"%a %dst %B %Y", layout("Mon 2st January 2006")},
	{"%a %dnd %B %Y", layout("Mon 2nd January 2006")},
	{"%a %drd %B %Y", layout("Mon 2rd January 2006")},
	{"%m/%d/%Y", layout("1/2/2006")},
	{"%c", layout(time.ANSIC)},
	{"%x", layout("1/2/06")},
}

// DateFormats returns the strftime patterns ParseDate tries, in order
func DateFormats() []string {
	patterns := make([]string, len(dateFormats))
	for i, f := range dateFormats {
		patterns[i] = f.Pattern
	}
	return patterns
}
