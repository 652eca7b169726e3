package minify_test

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/pseudomuto/prettify/pkg/format"
	. "github.com/pseudomuto/prettify/pkg/minify"
	"github.com/stretchr/testify/require"
)

func TestXML(t *testing.T) {
	input := "<a>\n  <!-- c -->\n  <b/>\n</a>\n"

	require.Equal(t, "<a><b/></a>", XML(input, false))
	require.Equal(t, "<a><!-- c --><b/></a>", XML(input, true))
	require.Equal(t, "<a>x y</a>", XML("<a>x y</a>", false))
}

func TestJSON(t *testing.T) {
	require.Equal(t, `{"a":"x","b":["y","z"]}`, JSON("{\n  \"a\": \"x\",\n  \"b\": [\n    \"y\",\n    \"z\"\n  ]\n}"))
	require.Equal(t, `{"a": 1,"b":[1, 2]}`, JSON("{\n  \"a\": 1,\n  \"b\": [\n    1,\n    2\n  ]\n}"))
}

func TestCSS(t *testing.T) {
	require.Equal(t, "a {color: red;}", CSS("/* c */ a { color: red; }", false))
	require.Equal(t, "/*c */a {color: red;}", CSS("/* c */ a { color: red; }", true))
	require.Equal(t, "a {b: c;}d {e: f;}", CSS("a {\n  b: c;\n}\nd {\n  e: f;\n}", false))
}

func TestSQL(t *testing.T) {
	require.Equal(t, "SELECT count(*) FROM t", SQL("SELECT count (*)  FROM t"))
	require.Equal(t, "SELECT a FROM(SELECT b FROM t)", SQL("SELECT a\nFROM\n  (SELECT b\n  FROM t\n  )"))
}

func TestCompact(t *testing.T) {
	out, err := Compact(format.SQL, " SELECT  a ", Options{})
	require.NoError(t, err)
	require.Equal(t, "SELECT a", out)

	_, err = Compact(format.Language("yaml"), "a: b", Options{})
	require.ErrorIs(t, err, format.ErrUnknownLanguage)
}

func TestCompact_Idempotent(t *testing.T) {
	tests := map[format.Language]string{
		format.XML:  "<a>\n  <!-- c -->\n  <b>text</b>\n</a>",
		format.JSON: "{\n  \"a\": 1,\n  \"b\": [\n    \"x\"\n  ]\n}",
		format.CSS:  "/* c */\na {\n  color: red;\n}",
		format.SQL:  "SELECT a,\n    b\nFROM t\nWHERE c IN (1, 2)",
	}

	for lang, input := range tests {
		t.Run(string(lang), func(t *testing.T) {
			for _, opts := range []Options{{}, {PreserveComments: true}} {
				once, err := Compact(lang, input, opts)
				require.NoError(t, err)

				twice, err := Compact(lang, once, opts)
				require.NoError(t, err)
				require.Equal(t, once, twice)
			}
		})
	}
}

func TestCompact_PrettyOutput(t *testing.T) {
	interTag := regexp.MustCompile(`>\s+<`)

	pretty, err := format.New(format.Defaults).Pretty(format.XML, `<?xml version="1.0"?><a><b x="1"><c/></b><!-- note --><d>text</d></a>`)
	require.NoError(t, err)

	out, err := Compact(format.XML, pretty, Options{})
	require.NoError(t, err)
	require.False(t, interTag.MatchString(out))
	require.Equal(t, `<?xml version="1.0"?><a><b x="1"><c/></b><d>text</d></a>`, out)
}

func TestMinify(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Minify(&buf, Options{}, format.CSS, "a { b: c; }"))
	require.Equal(t, "a {b: c;}", buf.String())

	buf.Reset()
	require.Error(t, Minify(&buf, Options{}, format.Language("toml"), "a = 1"))
	require.Empty(t, buf.String())
}
