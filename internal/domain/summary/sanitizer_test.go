//go:build unit

package summary_test

import (
	"testing"

	"chatorder/internal/domain/summary"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "parentheses become braces",
			input:    `("order": ("name": "Soup"))`,
			expected: `{"order": {"name": "Soup"}}`,
		},
		{
			name:     "bare none becomes null",
			input:    `{"base_price_money": none}`,
			expected: `{"base_price_money": null}`,
		},
		{
			name:     "none inside a word is left alone",
			input:    `{"name": "nonessential"}`,
			expected: `{"name": "nonessential"}`,
		},
		{
			name:     "lowercase cad is uppercased",
			input:    `{"currency": "cad"}`,
			expected: `{"currency": "CAD"}`,
		},
		{
			name:     "all repairs combined",
			input:    `("quantity": none, "currency": "cad")`,
			expected: `{"quantity": null, "currency": "CAD"}`,
		},
		{
			name:     "clean input passes through",
			input:    `{"order": [{"name": "Pad Thai"}]}`,
			expected: `{"order": [{"name": "Pad Thai"}]}`,
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, summary.Sanitize(tc.input))
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		`("quantity": none, "currency": "cad")`,
		`{"order": [{"name": "Pad Thai", "quantity": 2}]}`,
		`none cad ( )`,
	}
	for _, in := range inputs {
		once := summary.Sanitize(in)
		assert.Equal(t, once, summary.Sanitize(once), "input %q", in)
	}
}
