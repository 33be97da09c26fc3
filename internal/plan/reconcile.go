package plan

import (
	"fmt"

	"model-generator/internal/diagnostic"
	"model-generator/internal/schema"
)

// fieldSet is an ordered mapping of canonical fields keyed by name. Iteration
// follows first insertion; updates never move a key.
type fieldSet struct {
	order  []string
	byName map[string]*Field
}

func newFieldSet() *fieldSet {
	return &fieldSet{byName: make(map[string]*Field)}
}

func (s *fieldSet) get(name string) (*Field, bool) {
	f, ok := s.byName[name]
	return f, ok
}

func (s *fieldSet) put(f *Field) {
	if _, ok := s.byName[f.Name]; !ok {
		s.order = append(s.order, f.Name)
	}

	s.byName[f.Name] = f
}

func (s *fieldSet) fields() []Field {
	out := make([]Field, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, *s.byName[name])
	}

	return out
}

// Reconcile folds raw declarations into canonical fields.
//
// A repeated name OR-s the visibility flags into the existing field. Its entity
// type is replaced only by an entity-flagged declaration and its DTO type only
// by a DTO-flagged one, so a field can be declared once per side with a
// different type on each.
func Reconcile(raw []schema.RawField) []Field {
	return reconcile("", raw, nil)
}

func reconcile(model string, raw []schema.RawField, diags *diagnostic.Diagnostics) []Field {
	set := newFieldSet()

	for _, decl := range raw {
		existing, ok := set.get(decl.Name)
		if !ok {
			f := &Field{
				Name:     decl.Name,
				InEntity: decl.InEntity,
				InDTO:    decl.InDTO,
			}

			if decl.InEntity {
				f.EntityType = ptr(decl.Type)
			}

			if decl.InDTO {
				f.DTOType = ptr(decl.Type)
			}

			set.put(f)

			continue
		}

		if decl.InEntity {
			reportOverride(diags, model, decl.Name, "entity", existing.EntityType, decl.Type)
			existing.EntityType = ptr(decl.Type)
		}

		if decl.InDTO {
			reportOverride(diags, model, decl.Name, "DTO", existing.DTOType, decl.Type)
			existing.DTOType = ptr(decl.Type)
		}

		existing.InEntity = existing.InEntity || decl.InEntity
		existing.InDTO = existing.InDTO || decl.InDTO
	}

	return set.fields()
}

// reportOverride notes a second declaration that replaces a side's type.
func reportOverride(diags *diagnostic.Diagnostics, model, field, side string, previous *string, next string) {
	if diags == nil || previous == nil || *previous == next {
		return
	}

	diags.AddWarning(diagnostic.CodeTypeOverride,
		fmt.Sprintf("%s type %q replaced by later declaration %q", side, *previous, next),
		model, field)
}

func ptr(s string) *string {
	return &s
}
