package strings

import (
	"testing"

	kit "bulletpoints/internal/platform/testkit"
)

func TestIfEmpty(t *testing.T) {
	def := []string{"GET", "POST"}
	if got := IfEmpty(nil, def); len(got) != 2 {
		t.Fatalf("nil = %v", got)
	}
	if got := IfEmpty([]string{"POST"}, def); len(got) != 1 || got[0] != "POST" {
		t.Fatalf("set = %v", got)
	}
}

func TestMustString(t *testing.T) {
	if got := MustString("bullets", "module name"); got != "bullets" {
		t.Fatalf("got %q", got)
	}
	kit.MustPanic(t, func() { MustString(" \t", "module name") })
}

func TestMustPrefix(t *testing.T) {
	tests := map[string]string{
		"bullets":    "/bullets",
		"/bullets/":  "/bullets",
		"  /meta  ":  "/meta",
		"//api/v1//": "/api/v1",
	}
	for in, want := range tests {
		if got := MustPrefix(in); got != want {
			t.Errorf("MustPrefix(%q) = %q, want %q", in, got, want)
		}
	}
	for _, in := range []string{"", "/", " // "} {
		kit.MustPanic(t, func() { MustPrefix(in) })
	}
}

func TestDeref(t *testing.T) {
	text := "six feet"
	if Deref(&text) != "six feet" || Deref(nil) != "" {
		t.Fatal("Deref mismatch")
	}
}
