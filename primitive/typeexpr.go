package primitive

import "strings"

// TypeExpr is a schema type name broken down for rendering.
type TypeExpr struct {
	// Raw is the type name as declared, trimmed.
	Raw string
	// Name is the normalized name (see Normalize). Empty for sequences.
	Name string
	// Kind is the built-in kind, zero for composites and sequences.
	Kind KindEnum
	// Category is the classification of Raw.
	Category Category
	// Nullable is set when Raw carries a trailing nullability marker.
	Nullable bool
	// Elem is the element type of a sequence.
	Elem *TypeExpr
}

// IsSequence reports whether the expression is a sequence.
func (t TypeExpr) IsSequence() bool {
	return t.Elem != nil
}

// IsComposite reports whether the expression names another generated model.
func (t TypeExpr) IsComposite() bool {
	return t.Category == CategoryComposite
}

// ParseType parses a schema type name. It agrees with Classify on the
// category of the outermost type.
func ParseType(typeName string) TypeExpr {
	raw := strings.TrimSpace(typeName)
	expr := TypeExpr{
		Raw:      raw,
		Category: Classify(raw),
		Nullable: strings.HasSuffix(raw, nullableMarker),
	}

	if expr.Category == CategorySimple {
		if elem, ok := sequenceElem(raw); ok {
			e := ParseType(elem)
			expr.Elem = &e
			expr.Nullable = false

			return expr
		}
	}

	expr.Name = Normalize(raw)
	expr.Kind = LookupKind(expr.Name)

	return expr
}

// sequenceElem extracts the element type of a sequence type name.
func sequenceElem(raw string) (string, bool) {
	if strings.HasSuffix(raw, arraySuffix) {
		return strings.TrimSpace(strings.TrimSuffix(raw, arraySuffix)), true
	}

	for _, prefix := range sequencePrefixes {
		if !strings.HasPrefix(raw, prefix) {
			continue
		}

		inner := strings.TrimPrefix(raw, prefix)
		inner = strings.TrimSpace(strings.TrimSuffix(inner, nullableMarker))
		inner = strings.TrimSpace(strings.TrimSuffix(inner, ">"))

		return inner, true
	}

	return "", false
}
