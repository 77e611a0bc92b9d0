// Package clipboard writes text to the system clipboard by piping it into the
// platform's clipboard tool
package clipboard

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"strings"

	perr "bulletpoints/internal/platform/errors"
)

// Writer puts text on a clipboard
type Writer interface {
	WriteText(ctx context.Context, text string) error
}

// ErrUnsupported is returned when none of the known clipboard tools is installed
var ErrUnsupported = perr.Unsupportedf("clipboard: no supported clipboard tool found")

// Command is one clipboard tool invocation; text is written to its stdin
type Command struct {
	Name string
	Args []string
}

func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// seams for tests
var (
	lookPath = exec.LookPath
	run      = runCommand
)

func runCommand(ctx context.Context, c Command, stdin io.Reader) error {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Stdin = stdin
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return perr.Wrapf(err, perr.ErrorCodeUnavailable, "clipboard: %s: %s", c.Name, msg)
		}
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "clipboard: %s", c.Name)
	}
	return nil
}

// ExecWriter tries each candidate command in order and uses the first one on PATH
type ExecWriter struct {
	candidates []Command
}

// New returns a writer over the tools known for the current OS
func New() *ExecWriter { return &ExecWriter{candidates: platformCommands()} }

// NewWithCommands returns a writer over an explicit candidate list
func NewWithCommands(cmds ...Command) *ExecWriter {
	return &ExecWriter{candidates: append([]Command(nil), cmds...)}
}

// Resolve returns the first candidate found on PATH
func (w *ExecWriter) Resolve() (Command, error) {
	for _, c := range w.candidates {
		if p, err := lookPath(c.Name); err == nil {
			return Command{Name: p, Args: c.Args}, nil
		}
	}
	return Command{}, ErrUnsupported
}

// WriteText copies text to the clipboard
func (w *ExecWriter) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c, err := w.Resolve()
	if err != nil {
		return err
	}
	return run(ctx, c, strings.NewReader(text))
}
