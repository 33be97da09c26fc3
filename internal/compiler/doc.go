// Package compiler turns model documents into generated files.
//
// A unit is one document. Compiling a unit parses it, reconciles its fields
// and renders its two files. Units never affect each other: a unit that
// cannot be compiled is reported as skipped and the rest of the batch goes on.
package compiler
