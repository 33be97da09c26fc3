package compiler_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"model-generator/internal/compiler"
	"model-generator/internal/diagnostic"
	"model-generator/internal/discover"
	"model-generator/internal/gen"
)

func TestExamples_Shop(t *testing.T) {
	t.Parallel()

	const root = "../../examples/shop/schemas"

	paths, err := discover.Find(root, "**/*.model.xml")
	require.NoError(t, err)
	require.Len(t, paths, 4)

	units, err := discover.Load(context.Background(), root, paths)
	require.NoError(t, err)

	results := compiler.New(gen.NewConfig("example.com/shop", "entities", "dtos")).
		CompileAll(context.Background(), units, 4)
	require.Len(t, results, 4)

	byModel := make(map[string]compiler.Result)

	for _, r := range results {
		require.False(t, r.Skipped(), "%s: %v", r.UnitID, r.Skip)
		byModel[r.Model.Name] = r
	}

	customer := byModel["Customer"]
	assert.True(t, customer.Diagnostics.HasCode(diagnostic.CodeTypeMismatch))
	assert.Contains(t, string(customer.Files[1].Content), "AddressToDTO(entity.ShippingAddress)")
	assert.NotContains(t, string(customer.Files[1].Content), "PasswordHash")

	order := byModel["Order"]
	assert.Zero(t, order.Diagnostics.Len())
	assert.Contains(t, string(order.Files[1].Content), "[]*entities.OrderLine")

	address := byModel["Address"]
	assert.Zero(t, address.Diagnostics.Len())
	assert.Contains(t, string(address.Files[1].Content), "ZipCode")
	assert.Contains(t, string(address.Files[0].Content), "Country")
}
