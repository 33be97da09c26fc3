package gen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dave/jennifer/jen"

	"model-generator/internal/common"
	"model-generator/primitive"
)

const anyTypeStr = "any"

// side selects which package a type is rendered for.
type side int

const (
	sideEntity side = iota
	sideDTO
)

// typeRef is a reference to a type with optional package qualifier.
type typeRef struct {
	PkgPath   string // Import path (empty if same package or builtin)
	Name      string // Type name
	IsPointer bool
	IsSlice   bool
	ElemRef   *typeRef // For slices, the element type
}

// String returns the full type string (e.g., "time.Time", "*Address", "[]int32").
func (t typeRef) String() string {
	var sb strings.Builder

	if t.IsSlice {
		sb.WriteString("[]")

		if t.ElemRef != nil {
			sb.WriteString(t.ElemRef.String())
		}

		return sb.String()
	}

	if t.IsPointer {
		sb.WriteString("*")
	}

	if t.PkgPath != "" {
		sb.WriteString(common.PkgAlias(t.PkgPath))
		sb.WriteString(".")
	}

	sb.WriteString(t.Name)

	return sb.String()
}

// Code returns the type as a jennifer statement. Qualified names are left to
// jennifer's import tracking.
func (t typeRef) Code() *jen.Statement {
	if t.IsSlice {
		return jen.Index().Add(t.ElemRef.Code())
	}

	var base *jen.Statement
	if t.PkgPath != "" {
		base = jen.Qual(t.PkgPath, t.Name)
	} else {
		base = jen.Id(t.Name)
	}

	if t.IsPointer {
		return jen.Op("*").Add(base)
	}

	return base
}

// collectImports adds every package the type refers to.
func (t typeRef) collectImports(imports map[string]bool) {
	if t.IsSlice && t.ElemRef != nil {
		t.ElemRef.collectImports(imports)

		return
	}

	if t.PkgPath != "" {
		imports[t.PkgPath] = true
	}
}

// sortedImports returns the import paths in a deterministic order.
func sortedImports(imports map[string]bool) []string {
	out := make([]string, 0, len(imports))
	for path := range imports {
		out = append(out, path)
	}

	sort.Strings(out)

	return out
}

// resolveType turns a schema type into the Go type used on one side.
//
// Composite types are pointers to the referenced model: the entity itself on
// the entity side and its DTO on the DTO side. Sequence elements are rendered
// as entity types on both sides so a sequence can be copied verbatim.
func (g *Generator) resolveType(expr primitive.TypeExpr, s side, inSequence bool) (typeRef, error) {
	if expr.IsSequence() {
		elem, err := g.resolveType(*expr.Elem, s, true)
		if err != nil {
			return typeRef{}, err
		}

		return typeRef{IsSlice: true, ElemRef: &elem}, nil
	}

	if expr.IsComposite() {
		name, err := exportedName(expr.Name)
		if err != nil {
			return typeRef{}, fmt.Errorf("type %q: %w", expr.Raw, err)
		}

		switch {
		case s == sideEntity:
			return typeRef{Name: name, IsPointer: true}, nil
		case inSequence:
			return typeRef{PkgPath: g.config.EntitiesPackagePath, Name: name, IsPointer: true}, nil
		default:
			return typeRef{Name: name + "DTO", IsPointer: true}, nil
		}
	}

	if !expr.Kind.IsValid() {
		return typeRef{Name: anyTypeStr}, nil
	}

	pkgPath, name := expr.Kind.GoPackage()

	return typeRef{PkgPath: pkgPath, Name: name, IsPointer: expr.Nullable}, nil
}

// fieldType resolves the declared type of a field on one side.
func (g *Generator) fieldType(typeName string, s side) (typeRef, error) {
	return g.resolveType(primitive.ParseType(typeName), s, false)
}
