package gen

import (
	"bytes"
	"fmt"
	"text/template"

	"model-generator/internal/plan"
)

type entityTemplateData struct {
	Header      string
	PackageName string
	Imports     []string
	ModelName   string
	TypeName    string
	Fields      []entityField
}

type entityField struct {
	Name string
	Type string
}

var entityTemplate = template.Must(
	template.New("entity").
		Parse(`// {{.Header}}

package {{.PackageName}}
{{if .Imports}}
import (
{{range .Imports}}	"{{.}}"
{{end}})
{{end}}
// {{.TypeName}} is the entity of the {{.ModelName}} model.
type {{.TypeName}} struct {
{{range .Fields}}	{{.Name}} {{.Type}}
{{end}}}
`))

// generateEntity renders the entity struct of a model.
func (g *Generator) generateEntity(m *plan.Model) (*GeneratedFile, error) {
	fields := m.EntityFields()

	goNames, err := checkUniqueNames(fields)
	if err != nil {
		return nil, err
	}

	data := &entityTemplateData{
		Header:      generatedHeader,
		PackageName: g.config.EntitiesPackageName,
		ModelName:   m.Name,
		TypeName:    GoName(m.Name),
	}

	imports := make(map[string]bool)

	for _, f := range fields {
		ref, err := g.fieldType(*f.EntityType, sideEntity)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}

		ref.collectImports(imports)
		data.Fields = append(data.Fields, entityField{Name: goNames[f.Name], Type: ref.String()})
	}

	data.Imports = sortedImports(imports)

	var buf bytes.Buffer
	if err := entityTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	filename := g.EntityFilename(m.Name)

	formatted, err := g.formatSource(filename, buf.Bytes())
	if err != nil {
		return nil, err
	}

	return &GeneratedFile{
		Dir:      g.config.EntitiesDir,
		Filename: filename,
		Content:  formatted,
	}, nil
}
