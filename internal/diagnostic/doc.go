// Package diagnostic provides structured warnings and notes collected while
// compiling model schemas.
//
// Diagnostics never change generated output. They exist so that the driver
// can explain why a unit was skipped or a field was dropped:
//   - Dropped field reports (missing name or type)
//   - Unknown attribute reports with a did-you-mean suggestion
//   - Type override and type mismatch warnings from reconciliation
package diagnostic
