// Package cmd provides the CLI commands for the prettify tool.
//
// # Available Commands
//
//   - pretty (alias fmt): re-indent XML, JSON, CSS and SQL files
//   - minify: compact XML, JSON, CSS and SQL files
//
// Both commands take a single path: a file, a directory (processed recursively,
// every file with a known extension), or "-" for standard input. Files of a
// directory are processed concurrently, bounded by the configured concurrency,
// and reported in lexicographical order.
//
// # Output Modes
//
//   - default: rendered content is written to standard output
//   - -w: files are rewritten in place, keeping their permissions
//   - -l: names of files that would change are listed
//   - -d: a unified diff is printed for every file that would change
//
// # Example Usage
//
//	prettify pretty response.xml
//	prettify fmt -l -w queries/
//	prettify minify --preserve-comments site.css
//	pbpaste | prettify pretty --lang sql -
//
// Commands are constructed by fx (see Module) and receive the loaded
// configuration and formatter as dependencies.
package cmd
