package testkit

import (
	"errors"
	"testing"
)

var lookPath = func(string) (string, error) { return "", errors.New("not found") }

func TestMustPanic(t *testing.T) {
	MustPanic(t, func() { panic("root path is required") })
	if panics(func() {}) {
		t.Fatal("quiet func reported as panicking")
	}
}

func TestMustNotPanic(t *testing.T) {
	MustNotPanic(t, func() {})
}

func TestMustContain(t *testing.T) {
	MustContain(t, "Device is 10 W, it's 6 ft tall,", "10 W")
}

func TestSwap_RestoresAfterTest(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Serial(t)
		Swap(t, &lookPath, func(string) (string, error) { return "/usr/bin/pbcopy", nil })
		if p, err := lookPath("pbcopy"); err != nil || p != "/usr/bin/pbcopy" {
			t.Fatalf("seam not swapped: %q %v", p, err)
		}
	})
	if _, err := lookPath("pbcopy"); err == nil {
		t.Fatal("seam not restored")
	}
}

func TestSerial_Releases(t *testing.T) {
	t.Run("first", func(t *testing.T) { Serial(t) })
	t.Run("second", func(t *testing.T) { Serial(t) })
}
