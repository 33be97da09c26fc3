// Package gen renders reconciled models as Go source.
//
// Every model yields two files:
//   - the entity file, a struct rendered with text/template and tidied by
//     golang.org/x/tools/imports
//   - the DTO file, a struct plus the two mapper functions, built with
//     github.com/dave/jennifer
//
// Mappers copy simple values as they are and route composite values through
// the referenced model's own generated mapper. Every mapper maps nil to nil,
// so nested calls never need a guard.
package gen
