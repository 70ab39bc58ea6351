// Package error provides structured error handling for the tabfun conversion library.
//
// Package: error
// Title: tabfun Error Handling Framework
// Description: This package implements a structured error type with an error code,
//              a severity and a details map. Strict conversion functions return
//              these errors so that the calling evaluator can decide on a fallback
//              and can tell an unparseable date apart from an out of range ordinal.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-08-14 v0.2.0: Reduced to the codes used by the conversion verbs
//
// Usage:
//   import mdwerror "github.com/msto63/tabfun/foundation/core/error"
//
//   err := mdwerror.New("cannot interpret value as a date").
//     WithCode(mdwerror.CodeUnparseableDate).
//     WithDetail("input", "31/31/2031")
//
//   if mdwerror.HasCode(err, mdwerror.CodeUnparseableDate) {
//     // fall back
//   }
package error
