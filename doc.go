// Package catgo implements categorical string columns for Go: string values
// represented as small stable integer codes plus a dictionary translating the
// codes back to strings, so that columns can be compared, filtered, grouped
// and joined by integer equality instead of string comparison.
//
// # Quick Start
//
// Cast a string column to categorical and filter it:
//
//	col, _ := catgo.Cast(catgo.NewStringColumn("a", "b", "a", "c"))
//	rows := col.EqualString("a") // bitmap {0, 2}
//
// # The String Cache
//
// Each cast produces a column with its own local dictionary by default. Codes
// from independent dictionaries are not comparable, and elementwise
// operations between such columns fail with ErrIncompatibleSources rather
// than silently comparing mismatched codes.
//
// To make columns mutually comparable, produce them under a shared string
// cache scope:
//
//	h := catgo.EnterStringCache()
//	defer h.Release()
//
//	left, _ := catgo.Cast(catgo.NewStringColumn("foo", "bar"))
//	right, _ := catgo.Cast(catgo.NewStringColumn("bar", "baz"))
//
//	res, _ := catgo.JoinOn(left, right, catgo.JoinOuter)
//
// Scopes are reentrant and compose across independently written pipeline
// stages: a scope opened inside another keeps the shared dictionary alive
// until the outermost handle is released. Handles may be released on every
// exit path; release is idempotent and never fails.
//
// # Reconciliation
//
// Joining or concatenating two columns with independent local dictionaries
// merges their dictionaries: left-side codes are preserved, right-only values
// are appended in first-seen order, and the right side's codes are rewritten
// through the resulting translation table. Columns from different string
// cache lifetimes cannot be reconciled and fail fast.
//
// Literal comparisons (EqualString, IsIn) resolve the literal against the
// column's own dictionary and therefore never fail, regardless of cache
// state.
package catgo
