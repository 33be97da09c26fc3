package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "type", 4},
		{"name", "", 4},
		{"inDTO", "inDTO", 0},
		{"inDto", "inDTO", 2},
		{"inEntty", "inEntity", 1},
		{"inEntity", "inEntityTarget", 6},
		{"tpye", "type", 2},
		{"café", "cafe", 1},
		{"kitten", "sitting", 3},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
			assert.Equal(t, tt.want, Distance(tt.b, tt.a), "symmetric")
		})
	}
}

func TestSimilarity(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.0, Similarity("", ""), 0.001)
	assert.InDelta(t, 1.0, Similarity("inDTO", "inDTO"), 0.001)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 0.001)
	assert.InDelta(t, 0.75, Similarity("typ", "type"), 0.001)
	assert.InDelta(t, 0.75, Similarity("café", "cafe"), 0.001)
}

func BenchmarkDistance(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Distance("inEntityTarget", "inDtoTarget")
	}
}
