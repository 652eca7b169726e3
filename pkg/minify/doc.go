// Package minify compacts XML, JSON, CSS and SQL text.
//
// Minifiers are stateless pattern passes: they strip comments (unless asked to
// keep them) and collapse whitespace. They do not validate their input and are
// idempotent: minifying already minified text returns it unchanged.
//
//	out := minify.XML("<a>\n  <!-- c -->\n  <b/>\n</a>", false)
//	// <a><b/></a>
package minify
