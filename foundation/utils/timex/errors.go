// File: errors.go
// Title: Error Predicates
// Description: Predicates for the typed errors returned by the strict timex
//              functions.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.1.0: Initial implementation

package timex

import (
	mdwerror "github.com/msto63/tabfun/foundation/core/error"
)

// IsUnparseable reports whether err means a value could not be read as a date
func IsUnparseable(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeUnparseableDate)
}

// IsOutOfRange reports whether err means a date left the supported range
func IsOutOfRange(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange)
}

// IsMalformedTime reports whether err means a sexagesimal value was malformed
func IsMalformedTime(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeMalformedTime)
}
