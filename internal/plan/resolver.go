package plan

import (
	"fmt"

	"model-generator/internal/diagnostic"
	"model-generator/internal/schema"
	"model-generator/primitive"
)

// Resolve builds the Model of a parsed document.
func Resolve(doc *schema.Document) *Model {
	m := &Model{Name: doc.Name}
	m.Diagnostics.Merge(doc.Diagnostics)

	m.Fields = reconcile(doc.Name, doc.Fields, &m.Diagnostics)

	for _, f := range m.Fields {
		if !f.Mapped() {
			continue
		}

		if *f.EntityType != *f.DTOType {
			m.Diagnostics.AddWarning(diagnostic.CodeTypeMismatch,
				fmt.Sprintf("entity type %q and DTO type %q differ, the value is still mapped as declared",
					*f.EntityType, *f.DTOType),
				m.Name, f.Name)
		}

		m.ToDTO = append(m.ToDTO, assignment(f.Name, *f.DTOType))
		m.ToEntity = append(m.ToEntity, assignment(f.Name, *f.EntityType))
	}

	return m
}

// assignment picks the strategy for a field from its destination side type.
func assignment(field, typeName string) Assignment {
	expr := primitive.ParseType(typeName)

	strategy := StrategyDirectAssign
	if expr.IsComposite() {
		strategy = StrategyNestedCast
	}

	return Assignment{
		Field:    field,
		Strategy: strategy,
		Type:     expr,
	}
}

// Assignments returns the assignment list of one mapper direction.
func (m *Model) Assignments(d Direction) []Assignment {
	if d == DirectionToEntity {
		return m.ToEntity
	}

	return m.ToDTO
}
