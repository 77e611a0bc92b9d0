package clipboard

import (
	"context"
	stderrs "errors"
	"io"
	"os/exec"
	"testing"

	perr "bulletpoints/internal/platform/errors"
	kit "bulletpoints/internal/platform/testkit"
)

func onPath(names ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, n := range names {
			if n == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", exec.ErrNotFound
	}
}

func TestWriteText_PicksFirstAvailable(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &lookPath, onPath("xclip", "xsel"))

	var gotCmd Command
	var gotText string
	kit.Swap(t, &run, func(_ context.Context, c Command, stdin io.Reader) error {
		b, _ := io.ReadAll(stdin)
		gotCmd, gotText = c, string(b)
		return nil
	})

	w := NewWithCommands(
		Command{Name: "wl-copy"},
		Command{Name: "xclip", Args: []string{"-selection", "clipboard"}},
		Command{Name: "xsel", Args: []string{"--clipboard", "--input"}},
	)
	if err := w.WriteText(context.Background(), "10 W and 5 H"); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if gotCmd.String() != "/usr/bin/xclip -selection clipboard" {
		t.Fatalf("command = %q", gotCmd.String())
	}
	if gotText != "10 W and 5 H" {
		t.Fatalf("stdin = %q", gotText)
	}
}

func TestWriteText_NoTool(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &lookPath, onPath())
	kit.Swap(t, &run, func(context.Context, Command, io.Reader) error {
		t.Fatalf("run must not be called without a tool")
		return nil
	})

	err := NewWithCommands(Command{Name: "pbcopy"}).WriteText(context.Background(), "x")
	if !stderrs.Is(err, ErrUnsupported) {
		t.Fatalf("err = %v, want ErrUnsupported", err)
	}
	if perr.CodeOf(err) != perr.ErrorCodeUnsupported {
		t.Fatalf("code = %v", perr.CodeOf(err))
	}
}

func TestWriteText_NoCandidates(t *testing.T) {
	if err := NewWithCommands().WriteText(context.Background(), "x"); !stderrs.Is(err, ErrUnsupported) {
		t.Fatalf("err = %v, want ErrUnsupported", err)
	}
}

func TestWriteText_RunFailure(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &lookPath, onPath("clip"))
	kit.Swap(t, &run, func(context.Context, Command, io.Reader) error {
		return perr.Wrapf(stderrs.New("access denied"), perr.ErrorCodeUnavailable, "clipboard: clip")
	})

	err := NewWithCommands(Command{Name: "clip"}).WriteText(context.Background(), "x")
	if perr.CodeOf(err) != perr.ErrorCodeUnavailable {
		t.Fatalf("expected unavailable error, got %v", err)
	}
	kit.MustContain(t, err.Error(), "access denied")
}

func TestWriteText_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewWithCommands(Command{Name: "pbcopy"}).WriteText(ctx, "x")
	if !stderrs.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestNew_HasPlatformCandidates(t *testing.T) {
	w := New()
	for _, c := range w.candidates {
		if c.Name == "" {
			t.Fatalf("empty candidate in %+v", w.candidates)
		}
	}
}

var _ Writer = (*ExecWriter)(nil)
