package plan

import (
	"gopkg.in/yaml.v3"
)

// ExportFile is the YAML shape of reconciled models.
type ExportFile struct {
	Version string        `yaml:"version"`
	Models  []ExportModel `yaml:"models"`
}

// ExportModel is one reconciled model.
type ExportModel struct {
	Name     string         `yaml:"name"`
	Fields   []ExportField  `yaml:"fields"`
	ToDTO    []ExportAssign `yaml:"to_dto,omitempty"`
	ToEntity []ExportAssign `yaml:"to_entity,omitempty"`
}

// ExportField is one canonical field.
type ExportField struct {
	Name       string `yaml:"name"`
	EntityType string `yaml:"entity_type,omitempty"`
	DTOType    string `yaml:"dto_type,omitempty"`
	InEntity   bool   `yaml:"in_entity"`
	InDTO      bool   `yaml:"in_dto"`
}

// ExportAssign is one mapper assignment.
type ExportAssign struct {
	Field    string `yaml:"field"`
	Strategy string `yaml:"strategy"`
}

// Export converts models into their YAML shape.
func Export(models ...*Model) *ExportFile {
	out := &ExportFile{
		Version: "1",
		Models:  make([]ExportModel, 0, len(models)),
	}

	for _, m := range models {
		em := ExportModel{Name: m.Name, Fields: make([]ExportField, 0, len(m.Fields))}

		for _, f := range m.Fields {
			ef := ExportField{Name: f.Name, InEntity: f.InEntity, InDTO: f.InDTO}
			if f.EntityType != nil {
				ef.EntityType = *f.EntityType
			}

			if f.DTOType != nil {
				ef.DTOType = *f.DTOType
			}

			em.Fields = append(em.Fields, ef)
		}

		em.ToDTO = exportAssignments(m.ToDTO)
		em.ToEntity = exportAssignments(m.ToEntity)
		out.Models = append(out.Models, em)
	}

	return out
}

func exportAssignments(as []Assignment) []ExportAssign {
	var out []ExportAssign
	for _, a := range as {
		out = append(out, ExportAssign{Field: a.Field, Strategy: a.Strategy.String()})
	}

	return out
}

// ExportYAML renders models as YAML.
func ExportYAML(models ...*Model) ([]byte, error) {
	return yaml.Marshal(Export(models...))
}
