// Package errors provides shared error constructors for the tabfun foundation modules.
//
// Package: errors
// Title: Shared Error Handling Utilities
// Description: A fluent ErrorBuilder plus one constructor per failure kind used by
//              timex, mathx, config and the verb registry, so that every module
//              reports the module, the operation and the offending input the same way.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Usage:
//   import "github.com/msto63/tabfun/foundation/core/errors"
//
//   return 0, errors.TimexUnparseableDate("parse_date", value)
package errors
