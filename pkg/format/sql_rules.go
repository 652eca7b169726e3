package format

import (
	"regexp"
	"strings"
)

// sqlBoundary marks where a new fragment starts while the rule chain runs. It
// never survives splitting.
const sqlBoundary = "\x00"

// SQLRule is one rewrite in the SQL splitting chain. Replacement may contain
// "{b}" for a fragment boundary and "{i}" for one indentation unit.
type SQLRule struct {
	Name        string
	Pattern     *regexp.Regexp
	Replacement string
}

func sqlRule(name, pattern, replacement string) SQLRule {
	return SQLRule{Name: name, Pattern: regexp.MustCompile(pattern), Replacement: replacement}
}

// SQLRules is the ordered rule chain applied to every piece of SQL outside a
// string literal. Each rule sees the text produced by the ones before it:
//
//   - the qualified joins only match after "join" has put a boundary between the
//     qualifier and JOIN, and pull that boundary back in front of the qualifier.
//   - "subquery" runs before "select" so the latter only normalises whitespace
//     in front of an already isolated (SELECT.
//   - "collapse" must run last since any rule may leave adjacent boundaries.
//
// Every keyword a rule matches is upper-cased. Rules that only upper-case (IN,
// AS, NULL, ...) keep keyword casing consistent with the splitting rules.
var SQLRules = []SQLRule{
	sqlRule("whitespace", `\s+`, " "),
	sqlRule("and", `(?i) AND `, "{b}{i}{i}AND "),
	sqlRule("between", `(?i) BETWEEN `, "{b}{i}BETWEEN "),
	sqlRule("case", `(?i) CASE `, "{b}{i}CASE "),
	sqlRule("else", `(?i) ELSE `, "{b}{i}ELSE "),
	sqlRule("end", `(?i) END `, "{b}{i}END "),
	sqlRule("from", `(?i) FROM `, "{b}FROM "),
	sqlRule("group by", `(?i) GROUP\s+BY ?`, "{b}GROUP BY "),
	sqlRule("having", `(?i) HAVING `, "{b}HAVING "),
	sqlRule("in", `(?i) IN `, " IN "),
	sqlRule("join", `(?i) JOIN `, "{b}JOIN "),
	sqlRule("cross join", `(?i) CROSS\x00+JOIN `, "{b}CROSS JOIN "),
	sqlRule("inner join", `(?i) INNER\x00+JOIN `, "{b}INNER JOIN "),
	sqlRule("left join", `(?i) LEFT\x00+JOIN `, "{b}LEFT JOIN "),
	sqlRule("right join", `(?i) RIGHT\x00+JOIN `, "{b}RIGHT JOIN "),
	sqlRule("on", `(?i) ON `, "{b}{i}ON "),
	sqlRule("or", `(?i) OR `, "{b}{i}{i}OR "),
	sqlRule("order by", `(?i) ORDER\s+BY ?`, "{b}ORDER BY "),
	sqlRule("over", `(?i) OVER `, "{b}{i}OVER "),
	sqlRule("subquery", `(?i)\(\s*SELECT `, "{b}(SELECT "),
	sqlRule("subquery close", `(?i)\)\s*SELECT `, "){b}SELECT "),
	sqlRule("then", `(?i) THEN `, " THEN{b}{i}"),
	sqlRule("union", `(?i) UNION `, "{b}UNION{b}"),
	sqlRule("using", `(?i) USING `, "{b}USING "),
	sqlRule("when", `(?i) WHEN `, "{b}{i}WHEN "),
	sqlRule("where", `(?i) WHERE `, "{b}WHERE "),
	sqlRule("with", `(?i) WITH `, "{b}WITH "),
	sqlRule("all", `(?i) ALL `, " ALL "),
	sqlRule("as", `(?i) AS `, " AS "),
	sqlRule("asc", `(?i) ASC `, " ASC "),
	sqlRule("desc", `(?i) DESC `, " DESC "),
	sqlRule("distinct", `(?i) DISTINCT `, " DISTINCT "),
	sqlRule("exists", `(?i) EXISTS `, " EXISTS "),
	sqlRule("not", `(?i) NOT `, " NOT "),
	sqlRule("null", `(?i) NULL `, " NULL "),
	sqlRule("like", `(?i) LIKE `, " LIKE "),
	sqlRule("select", `(?i)\s*SELECT `, "SELECT "),
	sqlRule("collapse", `\x00+`, "{b}"),
}

type boundRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// bindSQLRules expands the placeholders of SQLRules for one indentation unit.
func bindSQLRules(unit string) []boundRule {
	expand := strings.NewReplacer("{b}", sqlBoundary, "{i}", unit)

	rules := make([]boundRule, len(SQLRules))
	for i, r := range SQLRules {
		rules[i] = boundRule{pattern: r.Pattern, replacement: expand.Replace(r.Replacement)}
	}

	return rules
}

func applySQLRules(rules []boundRule, text string) string {
	for _, r := range rules {
		text = r.pattern.ReplaceAllLiteralString(text, r.replacement)
	}
	return text
}
