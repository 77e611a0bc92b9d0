// Command bulletpoints normalizes bullet point text from args, a file or stdin
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"bulletpoints/internal/adapters/clipboard"
	"bulletpoints/internal/core/normalize"
	"bulletpoints/internal/core/version"
	"bulletpoints/internal/platform/logger"
	"bulletpoints/internal/services/api/bullets/service"
)

// env carries the process seams so run stays testable
type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	clip   clipboard.Writer
}

func main() {
	// logs go to stderr so stdout only ever carries the result
	logger.Init(logger.FromEnv(logger.Options{Level: "warn", Service: "bulletpoints", Writer: os.Stderr}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	code := run(ctx, os.Args[1:], env{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		clip:   clipboard.New(),
	})
	stop()
	os.Exit(code)
}

// run returns the exit code: 1 for unreadable input, 2 for bad flags
func run(ctx context.Context, args []string, e env) int {
	fs := flag.NewFlagSet("bulletpoints", flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	var (
		in     = fs.String("in", "", "read text from this file instead of stdin")
		copyIt = fs.Bool("copy", false, "copy the result to the system clipboard")
		asJSON = fs.Bool("json", false, "print the result as json")
		showV  = fs.Bool("version", false, "print version information and exit")
	)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: bulletpoints [-in FILE] [-copy] [-json] [-version] [text ...]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *showV {
		bi := version.For("bulletpoints")
		fmt.Fprintf(e.stdout, "%s %s (%s, %s) rules v%d\n", bi.Service, bi.Version, bi.Commit, bi.Date, bi.Rules)
		return 0
	}

	ctx = logger.WithRequest(ctx, "", "cli")
	log := logger.C(ctx)

	text, err := readInput(fs.Args(), *in, e.stdin)
	if err != nil {
		fmt.Fprintf(e.stderr, "read error: %v\n", err)
		return 1
	}

	svc := service.New(normalize.New())
	res, err := svc.Normalize(ctx, text)
	if err != nil {
		fmt.Fprintf(e.stderr, "normalize error: %v\n", err)
		return 1
	}
	log.Debug().Str("result_id", res.ID).Int("length", res.Length).Msg("normalized")

	if *asJSON {
		enc := json.NewEncoder(e.stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			fmt.Fprintf(e.stderr, "encode error: %v\n", err)
			return 1
		}
	} else {
		fmt.Fprintln(e.stdout, res.Text)
	}
	if res.Exceeded {
		fmt.Fprintln(e.stderr, res.Warning)
	}

	if *copyIt {
		copyResult(ctx, e, res.Text)
	}
	return 0
}

// copyResult reports the outcome and never fails the run
func copyResult(ctx context.Context, e env, text string) {
	if e.clip == nil {
		fmt.Fprintf(e.stderr, "failed to copy: %v\n", clipboard.ErrUnsupported)
		return
	}
	if err := e.clip.WriteText(ctx, text); err != nil {
		logger.C(ctx).Warn().Err(err).Msg("clipboard write failed")
		fmt.Fprintf(e.stderr, "failed to copy: %v\n", err)
		return
	}
	fmt.Fprintln(e.stderr, "copied to clipboard")
}

// readInput prefers positional args, then the -in file, then stdin.
// One trailing line break from a file or pipe is dropped
func readInput(args []string, path string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	var (
		b   []byte
		err error
	)
	if path != "" {
		b, err = os.ReadFile(path)
	} else {
		b, err = io.ReadAll(stdin)
	}
	if err != nil {
		return "", err
	}
	s := strings.TrimSuffix(string(b), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}
