package format

import (
	"regexp"
	"strings"
)

// SQLKind classifies a fragment produced by SplitSQL.
type SQLKind int

const (
	// SQLClause is an ordinary clause or continuation line.
	SQLClause SQLKind = iota
	// SQLSubqueryOpen starts a parenthesised SELECT.
	SQLSubqueryOpen
	// SQLLiteral carries a single quote: either string literal content or the
	// text that follows a closing quote.
	SQLLiteral
)

func (k SQLKind) String() string {
	switch k {
	case SQLClause:
		return "Clause"
	case SQLSubqueryOpen:
		return "SubqueryOpen"
	case SQLLiteral:
		return "Literal"
	default:
		return "Unknown"
	}
}

// SQLFragment is a piece of SQL produced by the splitter. Literal fragments hold
// string literal content (starting at its opening quote) and are never split,
// re-cased or inspected for structure.
type SQLFragment struct {
	Text    string
	Literal bool
}

var (
	reWhitespace    = regexp.MustCompile(`\s+`)
	reSubqueryStart = regexp.MustCompile(`\(\s*SELECT`)
	reSelectComma   = regexp.MustCompile(`,\s*`)
	reNewlines      = regexp.MustCompile(`\n+`)
)

// SplitSQL breaks text into fragments at clause and keyword boundaries. String
// literals are kept whole. Continuation keywords (AND, OR, ON, WHEN, ...) carry
// their extra indentation, built from unit, at the start of the fragment.
func SplitSQL(text, unit string) []string {
	fragments := splitSQL(bindSQLRules(unit), text)

	out := make([]string, len(fragments))
	for i, f := range fragments {
		out[i] = f.Text
	}

	return out
}

func splitSQL(rules []boundRule, text string) []SQLFragment {
	text = strings.ReplaceAll(text, sqlBoundary, "")
	text = reWhitespace.ReplaceAllString(text, " ")

	// Every piece after the first starts at a quote. Odd pieces sit between an
	// opening and a closing quote.
	pieces := strings.Split(text, "'")
	for i := 1; i < len(pieces); i++ {
		pieces[i] = "'" + pieces[i]
	}

	var fragments []SQLFragment
	for i, piece := range pieces {
		if i%2 == 1 {
			fragments = append(fragments, SQLFragment{Text: piece, Literal: true})
			continue
		}

		for _, part := range strings.Split(applySQLRules(rules, piece), sqlBoundary) {
			if part != "" {
				fragments = append(fragments, SQLFragment{Text: part})
			}
		}
	}

	return fragments
}

// IsSubquery returns the parenthesis level once fragment has been read: level
// plus the parentheses fragment opens, minus the ones it closes. A result below
// one means every subquery opened so far has been closed.
func IsSubquery(fragment string, level int) int {
	return level + strings.Count(fragment, "(") - strings.Count(fragment, ")")
}

// ClassifySQL assigns a kind to fragment.
func ClassifySQL(fragment SQLFragment) SQLKind {
	switch {
	case fragment.Literal:
		return SQLLiteral
	case reSubqueryStart.MatchString(fragment.Text):
		return SQLSubqueryOpen
	case strings.Contains(fragment.Text, "'"):
		return SQLLiteral
	default:
		return SQLClause
	}
}

// SQLStep returns the transition for a fragment of the given kind. closed
// reports that the walker is nested but all parentheses have been balanced, so
// the current subquery scope ends with this fragment.
func SQLStep(kind SQLKind, closed bool) Step {
	switch kind {
	case SQLSubqueryOpen:
		return Step{Indent: true, Action: IncrementThenEmit}
	case SQLLiteral:
		if closed {
			return Step{Action: DecrementThenEmit}
		}
		return Step{}
	default:
		if closed {
			return Step{Indent: true, Action: EmitThenDecrement}
		}
		return Step{Indent: true}
	}
}

type sqlWalker struct {
	unit       string
	depth      int
	parenLevel int
}

func (w *sqlWalker) walk(e *emitter, fragments []SQLFragment) error {
	columnBreak := ",\n" + w.unit + w.unit

	for _, fragment := range fragments {
		text := fragment.Text
		// Parentheses inside string literals never open or close a subquery, so
		// literal fragments leave the level untouched.
		if !fragment.Literal {
			w.parenLevel = IsSubquery(text, w.parenLevel)
			if strings.Contains(text, "SELECT") {
				text = reSelectComma.ReplaceAllLiteralString(text, columnBreak)
			}
		}

		closed := w.parenLevel < 1 && w.depth > 0
		step := SQLStep(ClassifySQL(fragment), closed)

		w.depth += step.Action.Before()
		if step.Indent {
			if err := e.indented(w.depth, text); err != nil {
				return err
			}
		} else {
			e.raw(text)
		}
		w.depth += step.Action.After()
	}

	return nil
}

// SQL puts every clause of text on its own line and indents subqueries. Column
// lists of SELECT clauses are broken one column per line.
func (f *Formatter) SQL(text string) (string, error) {
	e := newEmitter(f.table, 2*len(text))

	w := sqlWalker{unit: f.options.IndentUnit}
	if err := w.walk(e, splitSQL(f.sqlRules, text)); err != nil {
		return "", err
	}

	out := strings.TrimLeft(e.String(), "\n")
	return reNewlines.ReplaceAllString(out, "\n"), nil
}
