package plan

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"model-generator/internal/diagnostic"
	"model-generator/internal/schema"
)

func personDocument() *schema.Document {
	return &schema.Document{
		Name: "Person",
		Fields: []schema.RawField{
			{Name: "id", Type: "int", InEntity: true, InDTO: true},
			{Name: "address", Type: "Address", InEntity: true, InDTO: true},
			{Name: "secret", Type: "string", InEntity: true},
		},
	}
}

func TestResolve_Person(t *testing.T) {
	t.Parallel()

	m := Resolve(personDocument())

	assert.Equal(t, "Person", m.Name)
	assert.Equal(t, []string{"id", "address", "secret"}, names(m.EntityFields()))
	assert.Equal(t, []string{"id", "address"}, names(m.DTOFields()))

	require.Len(t, m.ToDTO, 2, spew.Sdump(m.ToDTO))
	assert.Equal(t, "id", m.ToDTO[0].Field)
	assert.Equal(t, StrategyDirectAssign, m.ToDTO[0].Strategy)
	assert.Equal(t, "address", m.ToDTO[1].Field)
	assert.Equal(t, StrategyNestedCast, m.ToDTO[1].Strategy)
	assert.Equal(t, "Address", m.ToDTO[1].Type.Name)

	require.Len(t, m.ToEntity, 2)
	assert.Equal(t, StrategyDirectAssign, m.ToEntity[0].Strategy)
	assert.Equal(t, StrategyNestedCast, m.ToEntity[1].Strategy)

	for _, d := range []Direction{DirectionToDTO, DirectionToEntity} {
		for _, a := range m.Assignments(d) {
			assert.NotEqual(t, "secret", a.Field, d.String())
		}
	}

	assert.Zero(t, m.Diagnostics.Len())
}

func TestResolve_TypeMismatchIsCopiedDirectly(t *testing.T) {
	t.Parallel()

	m := Resolve(&schema.Document{
		Name: "Person",
		Fields: []schema.RawField{
			{Name: "age", Type: "int", InEntity: true},
			{Name: "age", Type: "string", InDTO: true},
		},
	})

	require.Len(t, m.ToDTO, 1)
	require.Len(t, m.ToEntity, 1)
	assert.Equal(t, StrategyDirectAssign, m.ToDTO[0].Strategy)
	assert.Equal(t, "string", m.ToDTO[0].Type.Raw)
	assert.Equal(t, StrategyDirectAssign, m.ToEntity[0].Strategy)
	assert.Equal(t, "int", m.ToEntity[0].Type.Raw)

	assert.True(t, m.Diagnostics.HasCode(diagnostic.CodeTypeMismatch))
}

func TestResolve_StrategyFollowsDestinationSide(t *testing.T) {
	t.Parallel()

	m := Resolve(&schema.Document{
		Name: "Order",
		Fields: []schema.RawField{
			{Name: "customer", Type: "Customer", InEntity: true},
			{Name: "customer", Type: "string", InDTO: true},
		},
	})

	require.Len(t, m.ToDTO, 1)
	assert.Equal(t, StrategyDirectAssign, m.ToDTO[0].Strategy)
	assert.Equal(t, StrategyNestedCast, m.ToEntity[0].Strategy)
}

func TestResolve_SequencesAreCopied(t *testing.T) {
	t.Parallel()

	m := Resolve(&schema.Document{
		Name: "Order",
		Fields: []schema.RawField{
			{Name: "lines", Type: "List<OrderLine>", InEntity: true, InDTO: true},
			{Name: "tags", Type: "string[]", InEntity: true, InDTO: true},
		},
	})

	for _, a := range m.ToDTO {
		assert.Equal(t, StrategyDirectAssign, a.Strategy, a.Field)
	}
}

func TestResolve_KeepsDocumentDiagnostics(t *testing.T) {
	t.Parallel()

	doc := personDocument()
	doc.Diagnostics.AddWarning(diagnostic.CodeFieldDropped, "property has no type", "Person", "x")

	m := Resolve(doc)
	assert.True(t, m.Diagnostics.HasCode(diagnostic.CodeFieldDropped))
}

func TestModel_Field(t *testing.T) {
	t.Parallel()

	m := Resolve(personDocument())

	f, ok := m.Field("secret")
	require.True(t, ok)
	assert.False(t, f.Mapped())

	_, ok = m.Field("missing")
	assert.False(t, ok)
}
