package gen

import (
	"fmt"

	"model-generator/internal/diagnostic"
	"model-generator/internal/plan"
)

// Prune returns a copy of m without the fields that have no Go form: a name
// that is not a valid identifier, a name an earlier field already renders as,
// or a type that cannot be written on a side the field belongs to. Every
// dropped field leaves a field_dropped warning on the copy. Pruning a pruned
// model changes nothing.
func (g *Generator) Prune(m *plan.Model) *plan.Model {
	out := &plan.Model{Name: m.Name}
	out.Diagnostics.Merge(m.Diagnostics)

	kept := make(map[string]bool, len(m.Fields))
	owners := make(map[string]string, len(m.Fields))

	for _, f := range m.Fields {
		if reason := g.dropReason(f, owners); reason != "" {
			out.Diagnostics.AddWarning(diagnostic.CodeFieldDropped,
				fmt.Sprintf("field %q dropped: %s", f.Name, reason), m.Name, f.Name)

			continue
		}

		kept[f.Name] = true
		out.Fields = append(out.Fields, f)
	}

	for _, a := range m.ToDTO {
		if kept[a.Field] {
			out.ToDTO = append(out.ToDTO, a)
		}
	}

	for _, a := range m.ToEntity {
		if kept[a.Field] {
			out.ToEntity = append(out.ToEntity, a)
		}
	}

	return out
}

// dropReason explains why f cannot be rendered, or returns "" and claims the
// field's Go name in owners.
func (g *Generator) dropReason(f plan.Field, owners map[string]string) string {
	if !f.InEntity && !f.InDTO {
		return ""
	}

	name, err := exportedName(f.Name)
	if err != nil {
		return err.Error()
	}

	if other, ok := owners[name]; ok {
		return fmt.Sprintf("field %q already renders as %s", other, name)
	}

	if f.InEntity {
		if _, err := g.fieldType(*f.EntityType, sideEntity); err != nil {
			return "entity type: " + err.Error()
		}
	}

	if f.InDTO {
		if _, err := g.fieldType(*f.DTOType, sideDTO); err != nil {
			return "DTO type: " + err.Error()
		}
	}

	owners[name] = f.Name

	return ""
}
