// Package config reads typed settings from the environment.
// Malformed values are logged and replaced by the default rather than failing startup
package config

import (
	"strconv"
	"strings"
	"time"

	"bulletpoints/internal/platform/config/raw"
	"bulletpoints/internal/platform/logger"
)

// Conf is a prefixed view of the environment, e.g. New().Prefix("CORE_API_")
type Conf struct{ env raw.Conf }

// New returns the unprefixed view
func New() Conf { return Conf{env: raw.New()} }

// Prefix nests p under the current prefix
func (c Conf) Prefix(p string) Conf { return Conf{env: c.env.Prefix(p)} }

// Key is the full variable name for k
func (c Conf) Key(k string) string { return c.env.Key(k) }

// MayString returns the value or def
func (c Conf) MayString(k, def string) string { return c.env.Get(k, def) }

// MayBool accepts strconv.ParseBool spellings
func (c Conf) MayBool(k string, def bool) bool {
	v, ok := c.env.Lookup(k)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		c.invalid(k, v, "bool")
		return def
	}
	return b
}

// MayDuration accepts time.ParseDuration spellings such as 250ms or 10s
func (c Conf) MayDuration(k string, def time.Duration) time.Duration {
	v, ok := c.env.Lookup(k)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		c.invalid(k, v, "duration")
		return def
	}
	return d
}

// MayCSV splits a comma separated list, dropping blank items
func (c Conf) MayCSV(k string, def []string) []string {
	v, ok := c.env.Lookup(k)
	if !ok {
		return def
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func (c Conf) invalid(k, v, kind string) {
	logger.Named("config").Warn().
		Str("key", c.Key(k)).
		Str("value", v).
		Msgf("not a valid %s, using default", kind)
}
