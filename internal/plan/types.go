package plan

import (
	"model-generator/internal/common"
	"model-generator/internal/diagnostic"
	"model-generator/primitive"
)

// Model is the reconciled form of one schema document.
type Model struct {
	// Name is the model name declared on the document root.
	Name string
	// Fields are the canonical fields in first-seen order.
	Fields []Field
	// ToDTO lists the assignments of the entity to DTO mapper.
	ToDTO []Assignment
	// ToEntity lists the assignments of the DTO to entity mapper.
	ToEntity []Assignment
	// Diagnostics contains document and reconciliation diagnostics.
	Diagnostics diagnostic.Diagnostics
}

// Field is the canonical record of a field across all its declarations.
type Field struct {
	// Name is unique within a model.
	Name string
	// EntityType is set iff InEntity is set.
	EntityType *string
	// DTOType is set iff InDTO is set.
	DTOType *string
	// InEntity is the OR of every declaration's entity flag.
	InEntity bool
	// InDTO is the OR of every declaration's DTO flag.
	InDTO bool
}

// Mapped reports whether the field is visible on both sides and therefore
// copied by the mappers.
func (f *Field) Mapped() bool {
	return f.InEntity && f.InDTO
}

// EntityFields returns the fields that belong to the entity type.
func (m *Model) EntityFields() []Field {
	var out []Field

	for _, f := range m.Fields {
		if f.InEntity {
			out = append(out, f)
		}
	}

	return out
}

// DTOFields returns the fields that belong to the DTO type.
func (m *Model) DTOFields() []Field {
	var out []Field

	for _, f := range m.Fields {
		if f.InDTO {
			out = append(out, f)
		}
	}

	return out
}

// Field looks a canonical field up by name.
func (m *Model) Field(name string) (Field, bool) {
	for _, f := range m.Fields {
		if f.Name == name {
			return f, true
		}
	}

	return Field{}, false
}

// Direction is the direction of a mapper.
type Direction int

const (
	// DirectionToDTO converts an entity into a DTO.
	DirectionToDTO Direction = iota
	// DirectionToEntity converts a DTO into an entity.
	DirectionToEntity
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirectionToDTO:
		return "to_dto"
	case DirectionToEntity:
		return "to_entity"
	default:
		return common.UnknownStr
	}
}

// Assignment is one field copy inside a mapper.
type Assignment struct {
	// Field is the schema field name, shared by both sides.
	Field string
	// Strategy describes how the value is carried over.
	Strategy ConversionStrategy
	// Type is the destination side type the strategy was decided on.
	Type primitive.TypeExpr
}

// ConversionStrategy describes how to perform the field conversion.
type ConversionStrategy int

const (
	// StrategyDirectAssign - copy the value as is.
	StrategyDirectAssign ConversionStrategy = iota
	// StrategyNestedCast - call the nested model's mapper, nil stays nil.
	StrategyNestedCast
)

// String returns a human-readable strategy name.
func (s ConversionStrategy) String() string {
	switch s {
	case StrategyDirectAssign:
		return "direct_assign"
	case StrategyNestedCast:
		return "nested_cast"
	default:
		return common.UnknownStr
	}
}
