package cmd

import (
	"context"

	"github.com/pseudomuto/prettify/pkg/config"
	"github.com/pseudomuto/prettify/pkg/format"
	"github.com/pseudomuto/prettify/pkg/minify"
	"github.com/urfave/cli/v3"
)

// minifyCmd creates a CLI command that compacts XML, JSON, CSS and SQL files.
// It accepts the same paths and output flags as the pretty command.
//
// Comments are stripped from XML and CSS unless --preserve-comments is given or
// the configuration file sets minify.preserve_comments.
//
// Examples:
//
//	# Minify a stylesheet to stdout
//	prettify minify site.css
//
//	# Minify every XML fixture in-place, keeping comments
//	prettify minify -w --preserve-comments fixtures/
func minifyCmd(cfg *config.Config) *cli.Command {
	flags := append(outputFlags(), &cli.BoolFlag{
		Name:  "preserve-comments",
		Usage: "Keep XML and CSS comments",
		Value: cfg.Minify.PreserveComments,
	})

	return &cli.Command{
		Name:      "minify",
		Usage:     "Minify XML, JSON, CSS and SQL files",
		ArgsUsage: "<path>",
		Flags:     flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts := cfg.MinifyOptions()
			opts.PreserveComments = cmd.Bool("preserve-comments")

			return runTransform(ctx, cmd, cfg, func(lang format.Language, text string) (string, error) {
				return minify.Compact(lang, text, opts)
			})
		},
	}
}
