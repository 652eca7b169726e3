package format_test

import (
	"testing"

	. "github.com/pseudomuto/prettify/pkg/format"
	"github.com/stretchr/testify/require"
)

func TestSplitCSS(t *testing.T) {
	fragments := SplitCSS("/* c */ a { color: red; }")
	require.Equal(t, []string{"/* c */", "a {", "color: red;", "}"}, fragments)
	require.Empty(t, SplitCSS("  \n "))
}

func TestFormatter_CSS(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single rule",
			input:    "a { color: red; }",
			expected: "a {\n  color: red;\n}",
		},
		{
			name:     "nested blocks",
			input:    "a{color:red;b{c:d}}",
			expected: "a{\n  color:red;\n  b{\n    c:d\n  }\n}",
		},
		{
			name:     "comments",
			input:    "/* c */ a { color: red; }",
			expected: "/* c */\na {\n  color: red;\n}",
		},
	}

	f := New(Defaults)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := f.CSS(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, out)
		})
	}
}
