package gen

import (
	"bytes"
	"fmt"

	"github.com/dave/jennifer/jen"

	"model-generator/internal/common"
	"model-generator/internal/plan"
)

// Parameter names of the generated mappers.
const (
	entityParam = "entity"
	dtoParam    = "dto"
)

// generateDTO renders the DTO struct of a model together with its two mappers.
func (g *Generator) generateDTO(m *plan.Model) (*GeneratedFile, error) {
	fields := m.DTOFields()

	goNames, err := checkUniqueNames(fields)
	if err != nil {
		return nil, err
	}

	f := jen.NewFilePathName(g.config.DTOPackagePath, g.config.DTOPackageName)
	f.HeaderComment(generatedHeader)
	f.ImportName(g.config.EntitiesPackagePath, g.config.EntitiesPackageName)

	dtoName := DTOTypeName(m.Name)

	var members []jen.Code

	imports := make(map[string]bool)

	for _, field := range fields {
		ref, err := g.fieldType(*field.DTOType, sideDTO)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field.Name, err)
		}

		ref.collectImports(imports)
		members = append(members, jen.Id(goNames[field.Name]).Add(ref.Code()).
			Tag(map[string]string{"json": field.Name}))
	}

	// Name every import so jennifer writes no redundant aliases.
	for path := range imports {
		if path != g.config.EntitiesPackagePath {
			f.ImportName(path, common.PkgName(path))
		}
	}

	f.Commentf("%s is the data transfer object of the %s model.", dtoName, m.Name)
	f.Type().Id(dtoName).Struct(members...)

	toDTO, err := g.mapper(m, plan.DirectionToDTO)
	if err != nil {
		return nil, err
	}

	toEntity, err := g.mapper(m, plan.DirectionToEntity)
	if err != nil {
		return nil, err
	}

	f.Line()
	f.Add(toDTO)
	f.Line()
	f.Add(toEntity)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("rendering DTO file: %w", err)
	}

	filename := g.DTOFilename(m.Name)

	formatted, err := g.formatSource(filename, buf.Bytes())
	if err != nil {
		return nil, err
	}

	return &GeneratedFile{
		Dir:      g.config.DTODir,
		Filename: filename,
		Content:  formatted,
	}, nil
}

// mapper builds one mapper function of a model, documented and nil-safe.
func (g *Generator) mapper(m *plan.Model, d plan.Direction) (*jen.Statement, error) {
	entityType := jen.Qual(g.config.EntitiesPackagePath, GoName(m.Name))
	dtoType := jen.Id(DTOTypeName(m.Name))

	var (
		name, param, doc string
		in, out          *jen.Statement
	)

	if d == plan.DirectionToDTO {
		name, param = ToDTOFuncName(m.Name), entityParam
		in, out = entityType, dtoType
		doc = fmt.Sprintf("%s converts a %s entity into its DTO. A nil entity maps to nil.", name, m.Name)
	} else {
		name, param = ToEntityFuncName(m.Name), dtoParam
		in, out = dtoType, entityType
		doc = fmt.Sprintf("%s converts a %s DTO into its entity. A nil DTO maps to nil.", name, m.Name)
	}

	// Assignments keep field order, one per line.
	var values []jen.Code

	for _, a := range m.Assignments(d) {
		fieldName, err := exportedName(a.Field)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", a.Field, err)
		}

		value, err := g.assignmentValue(a, param, fieldName, d)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", a.Field, err)
		}

		values = append(values, jen.Line().Id(fieldName).Op(":").Add(value))
	}

	if len(values) > 0 {
		values = append(values, jen.Line())
	}

	return jen.Comment(doc).Line().
		Func().Id(name).Params(jen.Id(param).Op("*").Add(in)).Op("*").Add(out).Block(
		jen.If(jen.Id(param).Op("==").Nil()).Block(jen.Return(jen.Nil())),
		jen.Line(),
		jen.Return(jen.Op("&").Add(out.Clone()).Values(values...)),
	), nil
}

// assignmentValue returns the expression that produces one destination field.
func (g *Generator) assignmentValue(a plan.Assignment, param, fieldName string, d plan.Direction) (jen.Code, error) {
	source := jen.Id(param).Dot(fieldName)

	if a.Strategy != plan.StrategyNestedCast {
		return source, nil
	}

	if _, err := exportedName(a.Type.Name); err != nil {
		return nil, err
	}

	if d == plan.DirectionToDTO {
		return jen.Id(ToDTOFuncName(a.Type.Name)).Call(source), nil
	}

	return jen.Id(ToEntityFuncName(a.Type.Name)).Call(source), nil
}
