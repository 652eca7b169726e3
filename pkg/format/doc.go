// Package format re-indents XML, JSON, CSS and SQL text for human readers.
//
// The XML and SQL formatters do not parse their input. Each splits the text at
// structural boundaries (tags and namespace declarations for XML, clause
// keywords and quotes for SQL) and walks the resulting fragments while tracking
// a nesting depth and a little context: whether it is inside a comment or CDATA
// section, or inside a string literal or an unclosed subquery. Every fragment is
// written on a fresh line prefixed by the indentation for its depth, taken from
// an IndentTable built once per Formatter.
//
// Key features:
//   - Best-effort output for malformed input, never an error
//   - Comment, CDATA and string literal content is never re-tokenized
//   - Self-closing elements and processing instructions leave the depth alone
//   - Configurable indentation unit and maximum depth
//   - Explicit policy for nesting deeper than the indent table (clamp or error)
//
// Usage:
//
//	// Object-oriented API with default options
//	formatter := format.New(format.Defaults)
//	out, err := formatter.XML(`<a><b>1</b></a>`)
//	// <a>
//	//   <b>1</b>
//	// </a>
//
//	// Object-oriented API with custom options
//	formatter := format.New(format.FormatterOptions{
//		IndentUnit: "\t",
//		MaxDepth:   32,
//		Overflow:   format.ErrorOnOverflow,
//	})
//
//	// Functional API
//	var buf bytes.Buffer
//	err := format.Format(&buf, format.Defaults, format.SQL, "SELECT a, b FROM t WHERE a = 1")
//
// The splitting and classification steps are exported (SplitXML, ClassifyXML,
// XMLStep, SplitSQL, SQLRules, IsSubquery, ClassifySQL, SQLStep) so the state
// machine can be inspected independently of the emitted text.
package format
