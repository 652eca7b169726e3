package format

import (
	"regexp"
	"strings"
)

const cssBoundary = "\x00"

var cssSplitter = strings.NewReplacer(
	"{", "{"+cssBoundary,
	"}", cssBoundary+"}"+cssBoundary,
	";", ";"+cssBoundary,
	"/*", cssBoundary+"/*",
	"*/", "*/"+cssBoundary,
)

var reCSSWhitespace = regexp.MustCompile(`\s+`)

// SplitCSS breaks a stylesheet into selectors, declarations, closing braces and
// comments. Fragments are trimmed and empty ones dropped.
func SplitCSS(text string) []string {
	text = strings.ReplaceAll(text, cssBoundary, "")
	text = reCSSWhitespace.ReplaceAllString(text, " ")

	var fragments []string
	for _, part := range strings.Split(cssSplitter.Replace(text), cssBoundary) {
		if part = strings.TrimSpace(part); part != "" {
			fragments = append(fragments, part)
		}
	}

	return fragments
}

func cssAction(fragment string) DepthAction {
	switch {
	case strings.Contains(fragment, "{"):
		return EmitThenIncrement
	case strings.Contains(fragment, "}"):
		return DecrementThenEmit
	default:
		return NoChange
	}
}

// CSS puts every rule, declaration and comment of text on its own line.
func (f *Formatter) CSS(text string) (string, error) {
	e := newEmitter(f.table, 2*len(text))

	depth := 0
	for _, fragment := range SplitCSS(text) {
		action := cssAction(fragment)

		depth += action.Before()
		if err := e.indented(depth, fragment); err != nil {
			return "", err
		}
		depth += action.After()
	}

	return strings.TrimLeft(e.String(), "\n"), nil
}
