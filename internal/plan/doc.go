// Package plan turns a parsed schema document into a Model consumed by code
// generation.
//
// Resolution pipeline:
//  1. Reconcile raw field declarations into canonical fields, keyed by name,
//     in first-seen order. Visibility flags are OR-ed; each side's type is
//     taken from the last declaration flagged for that side.
//  2. Build the assignment lists of both mapper directions. Only fields
//     visible on both sides take part. Composite types are mapped through a
//     nested mapper call, everything else is assigned directly.
//  3. Emit diagnostics (type overrides, cross-side type mismatches).
package plan
