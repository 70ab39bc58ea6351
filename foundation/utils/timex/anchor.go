// File: anchor.go
// Title: Today Anchors
// Description: Anchor is the explicit "today" reference used by weekday
//              resolution and day offsets.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.1.0: Initial implementation

package timex

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"

	mdwerror "github.com/msto63/tabfun/foundation/core/error"
	mdwerrors "github.com/msto63/tabfun/foundation/core/errors"
)

// AnchorLayout is the textual form of a fixed anchor
const AnchorLayout = "YYYY-MM-DD"

// Anchor is a "today" reference. The zero value follows the wall clock in
// UTC and reads it anew on every call.
type Anchor struct {
	at    civil.DateTime
	fixed bool
}

// WallClock returns the anchor that reads the current time on every call
func WallClock() Anchor {
	return Anchor{}
}

// ParseAnchor parses a YYYY-MM-DD anchor. An empty string yields WallClock.
func ParseAnchor(s string) (Anchor, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return WallClock(), nil
	}
	d, err := civil.ParseDate(s)
	if err != nil {
		return Anchor{}, mdwerrors.NewErrorBuilder("timex").
			Operation("ParseAnchor").
			Messagef("anchor %q is not in %s form", s, AnchorLayout).
			Cause(err).
			Code(mdwerror.CodeUnparseableDate).
			Detail("input", s).
			Build()
	}
	if d.Year < minYear || d.Year > maxYear {
		return Anchor{}, mdwerrors.TimexOutOfRange("ParseAnchor", s, "0001-01-01", "9999-12-31")
	}
	return Anchor{at: civil.DateTime{Date: d}, fixed: true}, nil
}

// AnchorAt pins the anchor to the wall time of t in its own location
func AnchorAt(t time.Time) Anchor {
	return Anchor{at: civil.DateTimeOf(t), fixed: true}
}

// IsWallClock reports whether the anchor follows the wall clock
func (a Anchor) IsWallClock() bool {
	return !a.fixed
}

// Pin returns a fixed copy of a, reading the wall clock once if needed.
// Batches pin their anchor so every row sees the same day.
func (a Anchor) Pin() Anchor {
	if a.fixed {
		return a
	}
	return AnchorAt(time.Now().UTC())
}

// Now returns the anchored date and time of day
func (a Anchor) Now() civil.DateTime {
	if a.fixed {
		return a.at
	}
	return civil.DateTimeOf(time.Now().UTC())
}

// Today returns the anchored date
func (a Anchor) Today() civil.Date {
	return a.Now().Date
}

// Ordinal returns the ordinal of the anchored date
func (a Anchor) Ordinal() Ordinal {
	return OrdinalOf(a.Today())
}

// String returns the anchored date, or "now" for the wall clock
func (a Anchor) String() string {
	if !a.fixed {
		return "now"
	}
	return a.at.Date.String()
}
