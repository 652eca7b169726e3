package format_test

import (
	"encoding/json"
	"testing"

	. "github.com/pseudomuto/prettify/pkg/format"
	"github.com/stretchr/testify/require"
)

func TestFormatter_JSON(t *testing.T) {
	f := New(Defaults)

	t.Run("text", func(t *testing.T) {
		out, err := f.JSON(`{"a":1}`)
		require.NoError(t, err)
		require.Equal(t, "{\n  \"a\": 1\n}", out)
	})

	t.Run("keeps key order", func(t *testing.T) {
		out, err := f.JSON([]byte(` {"b":1,"a":[1,2]} `))
		require.NoError(t, err)
		require.Equal(t, "{\n  \"b\": 1,\n  \"a\": [\n    1,\n    2\n  ]\n}", out)
	})

	t.Run("keeps spelling of text", func(t *testing.T) {
		out, err := f.JSON(`{"a":1.0,"b":"\u00e9","a":2}`)
		require.NoError(t, err)
		require.Equal(t, "{\n  \"a\": 1.0,\n  \"b\": \"\\u00e9\",\n  \"a\": 2\n}", out)
	})

	t.Run("raw message", func(t *testing.T) {
		out, err := f.JSON(json.RawMessage(`[true]`))
		require.NoError(t, err)
		require.Equal(t, "[\n  true\n]", out)
	})

	t.Run("structured value", func(t *testing.T) {
		out, err := f.JSON(map[string]any{"a": 1})
		require.NoError(t, err)
		require.Equal(t, "{\n  \"a\": 1\n}", out)

		value := struct {
			URL string `json:"url"`
		}{URL: "a<b"}

		out, err = f.JSON(&value)
		require.NoError(t, err)
		require.Equal(t, "{\n  \"url\": \"a<b\"\n}", out)
	})

	t.Run("custom indent", func(t *testing.T) {
		out, err := New(FormatterOptions{IndentUnit: "\t"}).JSON(`{"a":{"b":null}}`)
		require.NoError(t, err)
		require.Equal(t, "{\n\t\"a\": {\n\t\t\"b\": null\n\t}\n}", out)
	})

	t.Run("invalid input type", func(t *testing.T) {
		var nilMap *map[string]any
		for _, v := range []any{nil, 42, true, 1.5, nilMap} {
			out, err := f.JSON(v)
			require.ErrorIs(t, err, ErrInvalidInputType, "%#v", v)
			require.Empty(t, out)
		}
	})

	t.Run("invalid json text", func(t *testing.T) {
		_, err := f.JSON(`{"a":`)
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to parse JSON")
	})
}
