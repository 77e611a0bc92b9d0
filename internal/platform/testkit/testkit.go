// Package testkit holds assertions and seam helpers shared by the package tests
package testkit

import (
	"strings"
	"sync"
	"testing"
)

// MustPanic fails t unless fn panics
func MustPanic(t *testing.T, fn func()) {
	t.Helper()
	if !panics(fn) {
		t.Fatal("expected a panic")
	}
}

// MustNotPanic fails t if fn panics
func MustNotPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if v := recover(); v != nil {
			t.Fatalf("panicked: %v", v)
		}
	}()
	fn()
}

// MustContain fails t unless got contains want, printing got in full
func MustContain(t *testing.T, got, want string) {
	t.Helper()
	if !strings.Contains(got, want) {
		t.Fatalf("missing %q in:\n%s", want, got)
	}
}

func panics(fn func()) (did bool) {
	defer func() { did = recover() != nil }()
	fn()
	return false
}

var serial sync.Mutex

// Swap points *seam at fake until t finishes
func Swap[T any](t *testing.T, seam *T, fake T) {
	t.Helper()
	prev := *seam
	*seam = fake
	t.Cleanup(func() { *seam = prev })
}

// Serial holds a process wide lock until t finishes. Tests that Swap a shared seam call it first
func Serial(t *testing.T) {
	t.Helper()
	serial.Lock()
	t.Cleanup(serial.Unlock)
}
