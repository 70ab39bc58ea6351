// File: epoch.go
// Title: Epoch Seconds from Date and Time Text
// Description: Lenient conversion of "date time" text to Unix epoch seconds.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.1.0: Initial implementation

package timex

import (
	"strconv"
	"time"
)

var (
	epochDateLayouts = []string{"2006-1-2", "2/1/2006", "2-Jan-2006", "20060102"}
	epochTimeLayouts = []string{"15:04:05", "15:04", "150405"}
)

// EpochFromDateTime reads "date time" text in UTC and returns the Unix epoch
// seconds as a decimal string. Dates may be Y-m-d, d/m/Y, d-Mon-Y or Ymd and
// times H:M:S, H:M or HMS. Other text is returned unchanged.
func EpochFromDateTime(text string) string {
	for _, dl := range epochDateLayouts {
		for _, tl := range epochTimeLayouts {
			t, err := time.ParseInLocation(dl+" "+tl, text, time.UTC)
			if err == nil {
				return strconv.FormatInt(t.Unix(), 10)
			}
		}
	}
	return text
}
