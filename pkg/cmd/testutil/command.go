package testutil

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"
)

// RunCommand runs the flags and action of command in a throwaway app and
// returns everything written to its output. in is used as standard input when
// not nil.
func RunCommand(t *testing.T, command *cli.Command, in io.Reader, args ...string) (string, error) {
	t.Helper()

	if in == nil {
		in = strings.NewReader("")
	}

	var buf bytes.Buffer
	app := &cli.Command{
		Name:   "test",
		Flags:  command.Flags,
		Action: command.Action,
		Reader: in,
		Writer: &buf,
	}

	err := app.Run(context.Background(), append([]string{"test"}, args...))
	return buf.String(), err
}
