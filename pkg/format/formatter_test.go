package format_test

import (
	"bytes"
	"testing"

	. "github.com/pseudomuto/prettify/pkg/format"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	f := New(FormatterOptions{})
	require.Equal(t, Defaults, f.Options())

	f = New(FormatterOptions{IndentUnit: "\t", MaxDepth: 8, Overflow: ErrorOnOverflow})
	require.Equal(t, "\t", f.Options().IndentUnit)
	require.Equal(t, 8, f.Options().MaxDepth)
	require.Equal(t, ErrorOnOverflow, f.Options().Overflow)
}

func TestFormatter_Pretty(t *testing.T) {
	f := New(Defaults)

	tests := []struct {
		lang     Language
		input    string
		expected string
	}{
		{XML, "<a><b/></a>", "<a>\n  <b/>\n</a>"},
		{JSON, `{"a":1}`, "{\n  \"a\": 1\n}"},
		{CSS, "a{b:c}", "a{\n  b:c\n}"},
		{SQL, "SELECT a FROM t", "SELECT a\nFROM t"},
	}

	for _, tt := range tests {
		t.Run(string(tt.lang), func(t *testing.T) {
			out, err := f.Pretty(tt.lang, tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, out)
		})
	}

	_, err := f.Pretty(Language("yaml"), "a: b")
	require.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Format(&buf, Defaults, XML, "<a><b/></a>"))
	require.Equal(t, "<a>\n  <b/>\n</a>", buf.String())

	buf.Reset()
	require.NoError(t, New(FormatterOptions{IndentUnit: "    "}).Format(&buf, SQL, "SELECT a, b FROM t"))
	require.Equal(t, "SELECT a,\n        b\nFROM t", buf.String())

	buf.Reset()
	require.Error(t, Format(&buf, Defaults, JSON, "{"))
	require.Empty(t, buf.String())
}
