package minify

import (
	"io"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/prettify/pkg/format"
)

// Options controls minification.
type Options struct {
	// PreserveComments keeps XML and CSS comments in the output
	PreserveComments bool
}

type replacement struct {
	pattern *regexp.Regexp
	with    string
}

func rule(pattern, with string) replacement {
	return replacement{pattern: regexp.MustCompile(pattern), with: with}
}

func apply(text string, rules []replacement) string {
	for _, r := range rules {
		text = r.pattern.ReplaceAllLiteralString(text, r.with)
	}
	return text
}

var (
	reXMLComment = regexp.MustCompile(`<![ \r\n\t]*(--([^\-]|[\r\n]|-[^\-])*--[ \r\n\t]*)>`)
	reCSSComment = regexp.MustCompile(`/\*([^*]|[\r\n]|(\*+([^*/]|[\r\n])))*\*+/`)

	xmlRules = []replacement{
		rule(`>\s*<`, "><"),
	}

	jsonRules = []replacement{
		rule(`\s*\{\s+`, "{"),
		rule(`\s*\[$`, "["),
		rule(`\[\s*`, "["),
		rule(`:\s*\[`, ":["),
		rule(`\s+\}\s*`, "}"),
		rule(`\s*\]\s*`, "]"),
		rule(`"\s*,`, `",`),
		rule(`,\s*"`, `,"`),
		rule(`"\s*:`, `":`),
		rule(`:\s*"`, `:"`),
		rule(`:\s*\[`, ":["),
		rule(`,\s*\[`, ",["),
		rule(`,\s{2,}`, ", "),
		rule(`\]\s*,\s*\[`, "],["),
	}

	cssRules = []replacement{
		rule(`\s+`, " "),
		rule(`\{\s+`, "{"),
		rule(`\}\s+`, "}"),
		rule(`;\s+`, ";"),
		rule(`/\*\s+`, "/*"),
		rule(`\*/\s+`, "*/"),
	}

	sqlRules = []replacement{
		rule(`\s+`, " "),
		rule(`\s+\(`, "("),
		rule(`\s+\)`, ")"),
	}
)

// XML removes <!-- --> comments, unless preserveComments is set, and the
// whitespace between adjacent tags.
func XML(text string, preserveComments bool) string {
	if !preserveComments {
		text = reXMLComment.ReplaceAllLiteralString(text, "")
	}
	return strings.TrimSpace(apply(text, xmlRules))
}

// JSON collapses the whitespace around JSON punctuation. text is expected to be
// valid JSON already; nothing is parsed.
func JSON(text string) string {
	return strings.TrimSpace(apply(text, jsonRules))
}

// CSS removes /* */ comments, unless preserveComments is set, and collapses
// whitespace after braces, semicolons and comment delimiters.
func CSS(text string, preserveComments bool) string {
	if !preserveComments {
		text = reCSSComment.ReplaceAllLiteralString(text, "")
	}
	return strings.TrimSpace(apply(text, cssRules))
}

// SQL collapses whitespace runs and removes whitespace in front of parentheses.
func SQL(text string) string {
	return strings.TrimSpace(apply(text, sqlRules))
}

// Compact minifies text in the given language.
func Compact(lang format.Language, text string, opts Options) (string, error) {
	switch lang {
	case format.XML:
		return XML(text, opts.PreserveComments), nil
	case format.JSON:
		return JSON(text), nil
	case format.CSS:
		return CSS(text, opts.PreserveComments), nil
	case format.SQL:
		return SQL(text), nil
	default:
		return "", errors.Wrapf(format.ErrUnknownLanguage, "failed to minify %q", lang)
	}
}

// Minify minifies text in the given language and writes the result to w.
func Minify(w io.Writer, opts Options, lang format.Language, text string) error {
	out, err := Compact(lang, text, opts)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, out)
	return err
}
