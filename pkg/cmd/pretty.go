package cmd

import (
	"context"

	"github.com/pseudomuto/prettify/pkg/config"
	"github.com/pseudomuto/prettify/pkg/format"
	"github.com/urfave/cli/v3"
)

// prettyCmd creates a CLI command that re-indents XML, JSON, CSS and SQL files.
// This command provides gofmt-like functionality, allowing users to format
// individual files, entire directory trees, or standard input.
//
// Path handling:
//   - File paths: Format the specified file directly
//   - Directory paths: Recursively format every file with a known extension
//   - "-": Read from stdin (requires --lang)
//
// Flags:
//   - -w: Write formatted results back to source files instead of stdout
//   - -l: List files whose formatting differs from their content
//   - -d: Print a unified diff for every file that would change
//   - --lang: Force the input language instead of detecting it by extension
//
// Examples:
//
//	# Format single file to stdout
//	prettify pretty response.xml
//
//	# Format all supported files in a directory tree in-place
//	prettify pretty -w fixtures/
//
//	# Format a query from a log line
//	echo "select a, b from t where a = 1" | prettify pretty --lang sql -
func prettyCmd(cfg *config.Config, fmtr *format.Formatter) *cli.Command {
	return &cli.Command{
		Name:      "pretty",
		Aliases:   []string{"fmt"},
		Usage:     "Pretty-print XML, JSON, CSS and SQL files",
		ArgsUsage: "<path>",
		Flags:     outputFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runTransform(ctx, cmd, cfg, fmtr.Pretty)
		},
	}
}
