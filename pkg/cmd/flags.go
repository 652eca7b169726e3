package cmd

import (
	"context"
	"io"
	"os"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
	"github.com/pseudomuto/prettify/pkg/config"
	"github.com/pseudomuto/prettify/pkg/format"
	"github.com/urfave/cli/v3"
)

// outputFlags are shared by every command that renders files.
func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "write",
			Aliases: []string{"w"},
			Usage:   "Write result to source files instead of stdout",
		},
		&cli.BoolFlag{
			Name:    "list",
			Aliases: []string{"l"},
			Usage:   "List files whose rendering differs from their content",
		},
		&cli.BoolFlag{
			Name:    "diff",
			Aliases: []string{"d"},
			Usage:   "Print a unified diff instead of the rendered content",
		},
		&cli.StringFlag{
			Name:  "lang",
			Usage: "Language of the input (xml, json, css or sql), detected from the file extension by default",
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Skip directory entries matching a glob such as **/vendor/** (repeatable)",
		},
	}
}

// parseRunOptions validates the command arguments and builds runOptions.
func parseRunOptions(cmd *cli.Command, cfg *config.Config) (string, runOptions, error) {
	if cmd.Args().Len() != 1 {
		return "", runOptions{}, errors.New("exactly one path argument is required")
	}

	opts := runOptions{
		Write:       cmd.Bool("write"),
		List:        cmd.Bool("list"),
		Diff:        cmd.Bool("diff"),
		Extensions:  cfg.ExtensionMap(),
		Exclude:     append(slices.Clone(cfg.Exclude), cmd.StringSlice("exclude")...),
		Concurrency: cfg.Concurrency,
	}

	for _, pattern := range opts.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return "", runOptions{}, errors.Errorf("invalid exclude pattern: %q", pattern)
		}
	}

	if name := cmd.String("lang"); name != "" {
		lang, err := format.ParseLanguage(name)
		if err != nil {
			return "", runOptions{}, err
		}
		opts.Lang = lang
	}

	return cmd.Args().First(), opts, nil
}

func runTransform(ctx context.Context, cmd *cli.Command, cfg *config.Config, fn transform) error {
	path, opts, err := parseRunOptions(cmd, cfg)
	if err != nil {
		return err
	}

	return processPath(ctx, path, opts, fn, reader(cmd), writer(cmd))
}

// reader returns the input of cmd, inherited from its closest ancestor when a
// subcommand does not set its own.
func reader(cmd *cli.Command) io.Reader {
	for _, c := range cmd.Lineage() {
		if c.Reader != nil {
			return c.Reader
		}
	}
	return os.Stdin
}

// writer returns the output of cmd, inherited like reader.
func writer(cmd *cli.Command) io.Writer {
	for _, c := range cmd.Lineage() {
		if c.Writer != nil {
			return c.Writer
		}
	}
	return os.Stdout
}
