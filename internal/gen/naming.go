package gen

import (
	"fmt"
	"go/token"
	"strings"

	"github.com/go-openapi/inflect"

	"model-generator/internal/match"
)

// commonInitialisms are words rendered fully upper-cased inside Go names.
var commonInitialisms = map[string]bool{
	"ACL":   true,
	"API":   true,
	"ASCII": true,
	"CPU":   true,
	"CSS":   true,
	"DNS":   true,
	"EOF":   true,
	"GUID":  true,
	"HTML":  true,
	"HTTP":  true,
	"HTTPS": true,
	"ID":    true,
	"IP":    true,
	"JSON":  true,
	"SQL":   true,
	"SSH":   true,
	"TCP":   true,
	"TLS":   true,
	"TTL":   true,
	"UDP":   true,
	"UI":    true,
	"URI":   true,
	"URL":   true,
	"UTF8":  true,
	"UUID":  true,
	"VM":    true,
	"XML":   true,
}

// GoName converts a schema name into an exported Go identifier.
// Examples:
//   - "id" -> "ID"
//   - "first_name" -> "FirstName"
//   - "homeUrl" -> "HomeURL"
func GoName(name string) string {
	var sb strings.Builder

	for _, word := range match.SplitIdent(name) {
		if upper := strings.ToUpper(word); commonInitialisms[upper] {
			sb.WriteString(upper)

			continue
		}

		sb.WriteString(inflect.Capitalize(word))
	}

	return sb.String()
}

// exportedName is GoName that rejects names with no valid Go rendering.
func exportedName(name string) (string, error) {
	goName := GoName(name)
	if !token.IsIdentifier(goName) || !token.IsExported(goName) {
		return "", fmt.Errorf("%q has no valid Go identifier form", name)
	}

	return goName, nil
}

// DTOTypeName returns the Go name of a model's DTO type.
func DTOTypeName(model string) string {
	return GoName(model) + "DTO"
}

// ToDTOFuncName returns the name of the entity to DTO mapper of a model.
func ToDTOFuncName(model string) string {
	return GoName(model) + "ToDTO"
}

// ToEntityFuncName returns the name of the DTO to entity mapper of a model.
func ToEntityFuncName(model string) string {
	return GoName(model) + "ToEntity"
}
