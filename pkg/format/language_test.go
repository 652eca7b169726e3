package format_test

import (
	"testing"

	. "github.com/pseudomuto/prettify/pkg/format"
	"github.com/stretchr/testify/require"
)

func TestParseLanguage(t *testing.T) {
	for _, name := range []string{"xml", "XML", " Json ", "css", "Sql"} {
		_, err := ParseLanguage(name)
		require.NoError(t, err, name)
	}

	lang, err := ParseLanguage("SQL")
	require.NoError(t, err)
	require.Equal(t, SQL, lang)

	_, err = ParseLanguage("yaml")
	require.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestDetectLanguage(t *testing.T) {
	tests := map[string]Language{
		"a/b/schema.XSD":    XML,
		"pom.xml":           XML,
		"data.json":         JSON,
		"site.css":          CSS,
		"db/migrations.sql": SQL,
	}

	for path, expected := range tests {
		lang, ok := DetectLanguage(path, nil)
		require.True(t, ok, path)
		require.Equal(t, expected, lang, path)
	}

	_, ok := DetectLanguage("Makefile", nil)
	require.False(t, ok)

	_, ok = DetectLanguage("Info.plist", nil)
	require.False(t, ok)

	lang, ok := DetectLanguage("Info.plist", map[string]Language{".plist": XML})
	require.True(t, ok)
	require.Equal(t, XML, lang)

	lang, ok = DetectLanguage("view.sql", map[string]Language{".sql": XML})
	require.True(t, ok)
	require.Equal(t, XML, lang)
}
