package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveType(t *testing.T) {
	t.Parallel()

	g := NewGenerator(DefaultConfig())

	tests := []struct {
		typeName string
		entity   string
		dto      string
	}{
		{"int", "int32", "int32"},
		{"long", "int64", "int64"},
		{"ulong", "uint64", "uint64"},
		{"byte", "uint8", "uint8"},
		{"decimal", "float64", "float64"},
		{"char", "int32", "int32"},
		{"bool", "bool", "bool"},
		{"string", "string", "string"},
		{"int?", "*int32", "*int32"},
		{"DateTime", "time.Time", "time.Time"},
		{"Guid?", "*uuid.UUID", "*uuid.UUID"},
		{"Address", "*Address", "*AddressDTO"},
		{"Address?", "*Address", "*AddressDTO"},
		{"string[]", "[]string", "[]string"},
		{"List<int>", "[]int32", "[]int32"},
		{"IEnumerable<Guid>", "[]uuid.UUID", "[]uuid.UUID"},
		{"List<Address>", "[]*Address", "[]*entities.Address"},
		{"Address[]", "[]*Address", "[]*entities.Address"},
		{"List<List<int?>>", "[][]*int32", "[][]*int32"},
		{" ", "any", "any"},
	}

	for _, tt := range tests {
		entity, err := g.fieldType(tt.typeName, sideEntity)
		require.NoError(t, err, tt.typeName)
		assert.Equal(t, tt.entity, entity.String(), tt.typeName)

		dto, err := g.fieldType(tt.typeName, sideDTO)
		require.NoError(t, err, tt.typeName)
		assert.Equal(t, tt.dto, dto.String(), tt.typeName)
	}
}

func TestResolveType_Unrenderable(t *testing.T) {
	t.Parallel()

	g := NewGenerator(DefaultConfig())

	for _, typeName := range []string{"int[]?", "Foo.Bar", "2D"} {
		_, err := g.fieldType(typeName, sideEntity)
		assert.Error(t, err, typeName)
	}
}

func TestTypeRef_CollectImports(t *testing.T) {
	t.Parallel()

	g := NewGenerator(DefaultConfig())
	imports := make(map[string]bool)

	for _, typeName := range []string{"DateTime", "List<Guid?>", "int", "List<Address>"} {
		ref, err := g.fieldType(typeName, sideDTO)
		require.NoError(t, err)
		ref.collectImports(imports)
	}

	assert.Equal(t, []string{
		"example.com/app/entities",
		"github.com/google/uuid",
		"time",
	}, sortedImports(imports))
}
