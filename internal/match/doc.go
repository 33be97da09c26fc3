// Package match splits schema field names into words and suggests the
// attribute a misspelled one probably meant.
package match
