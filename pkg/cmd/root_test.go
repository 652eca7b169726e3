package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pseudomuto/prettify/pkg/config"
	"github.com/pseudomuto/prettify/pkg/format"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func testApp(in string) (*bytes.Buffer, func(args ...string) error) {
	cfg := config.Default()
	app := App(
		&Version{Version: "1.2.3", Commit: "abc123", Timestamp: "2025-01-01"},
		[]*cli.Command{prettyCmd(cfg, format.New(format.Defaults)), minifyCmd(cfg)},
	)

	var buf bytes.Buffer
	app.Reader = strings.NewReader(in)
	app.Writer = &buf

	return &buf, func(args ...string) error {
		return app.Run(context.Background(), append([]string{"prettify"}, args...))
	}
}

func TestApp(t *testing.T) {
	t.Run("pretty", func(t *testing.T) {
		buf, run := testApp("<a><b/></a>")
		require.NoError(t, run("pretty", "--lang", "xml", "-"))
		require.Equal(t, "<a>\n  <b/>\n</a>\n", buf.String())
	})

	t.Run("fmt alias", func(t *testing.T) {
		buf, run := testApp(`{"a":[1]}`)
		require.NoError(t, run("fmt", "--lang", "json", "-"))
		require.Equal(t, "{\n  \"a\": [\n    1\n  ]\n}\n", buf.String())
	})

	t.Run("minify", func(t *testing.T) {
		buf, run := testApp("a {\n  b: c;\n}\n")
		require.NoError(t, run("minify", "--lang", "css", "-"))
		require.Equal(t, "a {b: c;}\n", buf.String())
	})

	t.Run("version", func(t *testing.T) {
		buf, run := testApp("")
		require.NoError(t, run("--version"))
		require.Contains(t, buf.String(), "Version: 1.2.3")
		require.Contains(t, buf.String(), "Commit: abc123")
		require.Contains(t, buf.String(), "Date: 2025-01-01")
	})
}
