package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// App builds the root prettify command around the given subcommands.
//
// Global Flags:
//   - --verbose: Log every processed file at debug level
func App(version *Version, commands []*cli.Command) *cli.Command {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Root().Writer, "Version:", version.Version)
		fmt.Fprintln(cmd.Root().Writer, "Commit:", version.Commit)
		fmt.Fprintln(cmd.Root().Writer, "Date:", version.Timestamp)
	}

	return &cli.Command{
		Name:  "prettify",
		Usage: "Pretty-print or minify XML, JSON, CSS and SQL",
		Description: `prettify re-indents flat or irregularly formatted XML, JSON, CSS and SQL
so that machine-generated payloads and queries can be read by humans, and
compacts verbosely formatted text back into a single line.

Configuration is read from prettify.yaml in the working directory, or from the
file named by PRETTIFY_CONFIG.`,
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log every processed file",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("verbose") {
				slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}

			return ctx, nil
		},
		Commands: commands,
	}
}

// Run registers the prettify CLI application with the fx lifecycle. The
// application runs once fx has started and shuts the fx app down with exit code
// 1 when the command fails.
func Run(p Params) {
	app := App(p.Version, p.Commands)

	p.Lifecycle.Append(fx.StartHook(func() {
		if err := app.Run(p.Ctx, p.Args); err != nil {
			slog.Error("Error running command", "err", err)
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
			return
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}
