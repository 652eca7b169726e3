package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/pseudomuto/prettify/pkg/cmd"
	"github.com/pseudomuto/prettify/pkg/config"
	"go.uber.org/fx"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	app := newApp(os.Args)
	if !configured(app) {
		os.Exit(1)
	}

	app.Run()
}

func newApp(args []string) *fx.App {
	return fx.New(
		fx.NopLogger,
		// Commands run inside the start hook, so start must not time out.
		fx.StartTimeout(24*time.Hour),
		fx.Supply(&cmd.Version{
			Version:   version,
			Commit:    commit,
			Timestamp: date,
		}),
		fx.Provide(
			func() context.Context { return context.Background() },
			func() []string { return args },
		),
		config.Module,
		cmd.Module,
	)
}

// configured reports whether every dependency of app was built. fx.NopLogger
// drops construction errors, so they are logged here.
func configured(app *fx.App) bool {
	if err := app.Err(); err != nil {
		slog.Error("Error loading configuration", "err", err)
		return false
	}

	return true
}
