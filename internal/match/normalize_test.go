package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitIdent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"id", []string{"id"}},
		{"ID", []string{"ID"}},
		{"zip_code", []string{"zip", "code"}},
		{"billing-address", []string{"billing", "address"}},
		{"first name", []string{"first", "name"}},
		{"customerID", []string{"customer", "ID"}},
		{"OrderLines", []string{"Order", "Lines"}},
		{"HTTPServer", []string{"HTTP", "Server"}},
		{"IDCard", []string{"ID", "Card"}},
		{"parseURL", []string{"parse", "URL"}},
		{"__line_total", []string{"line", "total"}},
		{"café", []string{"café"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, SplitIdent(tt.input))
		})
	}
}
