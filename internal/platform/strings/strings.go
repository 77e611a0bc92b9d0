// Package strings holds the small string helpers the modules share
package strings

import std "strings"

// IfEmpty falls back to def for a nil or empty slice
func IfEmpty[T any](in, def []T) []T {
	if len(in) > 0 {
		return in
	}
	return def
}

// MustString panics with "<what> is required" when s is blank
func MustString(s, what string) string {
	if std.TrimSpace(s) == "" {
		panic(what + " is required")
	}
	return s
}

// MustPrefix turns "bullets", "/bullets/" or " /meta " into a mount prefix
// with one leading slash and none trailing. The bare root is rejected
func MustPrefix(s string) string {
	p := std.Trim(s, " /")
	if p == "" {
		panic("mount prefix is required")
	}
	return "/" + p
}

// Deref reads an optional body field; nil is the empty string
func Deref(ps *string) string {
	if ps == nil {
		return ""
	}
	return *ps
}
