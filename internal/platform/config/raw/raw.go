// Package raw reads environment variables without logging, so the logger can bootstrap from it
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Conf reads keys under a prefix such as LOG_ or CORE_API_
type Conf struct{ prefix string }

// New returns a Conf with no prefix
func New() Conf { return Conf{} }

// Prefix nests p under the current prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// Key is the full variable name for k
func (c Conf) Key(k string) string { return c.prefix + k }

// Lookup returns the trimmed value and whether it is non empty
func (c Conf) Lookup(k string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(c.Key(k)))
	return v, v != ""
}

// Get returns the value or def when unset
func (c Conf) Get(k, def string) string {
	if v, ok := c.Lookup(k); ok {
		return v
	}
	return def
}

// GetBool treats 1, true, yes and on as true, any other set value as false
func (c Conf) GetBool(k string, def bool) bool {
	v, ok := c.Lookup(k)
	if !ok {
		return def
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// GetInt returns a non negative integer or def when unset or malformed
func (c Conf) GetInt(k string, def int) int {
	v, ok := c.Lookup(k)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}
