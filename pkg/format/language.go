package format

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Language identifies the kind of text being formatted.
type Language string

const (
	XML  Language = "xml"
	JSON Language = "json"
	CSS  Language = "css"
	SQL  Language = "sql"
)

// Languages lists every supported language.
var Languages = []Language{XML, JSON, CSS, SQL}

// DefaultExtensions maps file extensions (lower case, with the leading dot) to
// the language used for them.
var DefaultExtensions = map[string]Language{
	".xml":    XML,
	".xsd":    XML,
	".xsl":    XML,
	".xslt":   XML,
	".wsdl":   XML,
	".svg":    XML,
	".pom":    XML,
	".config": XML,
	".json":   JSON,
	".css":    CSS,
	".sql":    SQL,
	".ddl":    SQL,
}

// ParseLanguage converts a (case-insensitive) language name into a Language.
func ParseLanguage(name string) (Language, error) {
	lang := Language(strings.ToLower(strings.TrimSpace(name)))
	for _, l := range Languages {
		if l == lang {
			return l, nil
		}
	}

	return "", errors.Wrapf(ErrUnknownLanguage, "failed to parse language %q", name)
}

// DetectLanguage picks a language from the extension of path. Entries in
// overrides take precedence over DefaultExtensions.
func DetectLanguage(path string, overrides map[string]Language) (Language, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return "", false
	}

	if lang, ok := overrides[ext]; ok {
		return lang, true
	}

	lang, ok := DefaultExtensions[ext]
	return lang, ok
}
