package primitive

import "strings"

//go:generate go tool stringer -type=Category -output=category_string.go

// Category tells the mapper emitter how a field value crosses the entity/DTO
// boundary.
type Category int

const (
	_ Category = iota

	CategorySimple    // copied by value
	CategoryComposite // mapped through the referenced type's own generated mapper
)

const (
	nullableMarker = "?"
	arraySuffix    = "[]"
)

// sequencePrefixes are the generic wrappers treated as plain sequences.
var sequencePrefixes = []string{"List<", "IEnumerable<"}

// Normalize strips one trailing nullability marker and surrounding whitespace
// and returns the part of the name before any generic parameter list.
//
//	"int?"           -> "int"
//	" DateTime ? "   -> "DateTime"
//	"List<Address>"  -> "List"
func Normalize(typeName string) string {
	s := strings.TrimSpace(typeName)
	s = strings.TrimSpace(strings.TrimSuffix(s, nullableMarker))

	if i := strings.IndexByte(s, '<'); i >= 0 {
		s = s[:i]
	}

	return strings.TrimSpace(s)
}

// IsSequence reports whether the type name, as written, denotes a sequence:
// one of the recognized generic wrappers or a trailing array marker.
func IsSequence(typeName string) bool {
	for _, prefix := range sequencePrefixes {
		if strings.HasPrefix(typeName, prefix) {
			return true
		}
	}

	return strings.HasSuffix(typeName, arraySuffix)
}

// Classify decides whether values of the named type are copied directly or
// mapped recursively. The decision is purely lexical: a composite type is
// assumed to be another generated model and is never looked up.
func Classify(typeName string) Category {
	if strings.TrimSpace(typeName) == "" {
		return CategorySimple
	}

	if LookupKind(Normalize(typeName)).IsValid() {
		return CategorySimple
	}

	if IsSequence(typeName) {
		return CategorySimple
	}

	return CategoryComposite
}
