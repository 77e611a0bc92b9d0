// Package middleware holds the http middlewares shared by the api and the form page.
// The chi ones are re-exported so callers never import chi middleware directly
package middleware

import (
	"net/http"
	"time"

	pstrings "bulletpoints/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// Middleware is the standard net/http decorator
type Middleware = func(http.Handler) http.Handler

// RequestID reuses an inbound X-Request-Id or mints one
func RequestID() Middleware { return chimw.RequestID }

// RealIP trusts X-Forwarded-For and X-Real-IP for RemoteAddr
func RealIP() Middleware { return chimw.RealIP }

// Recover turns a panic into a bare 500, for html pages
func Recover() Middleware { return chimw.Recoverer }

// Timeout cancels the request context after d
func Timeout(d time.Duration) Middleware { return chimw.Timeout(d) }

// NoCache marks every answer as uncacheable
func NoCache() Middleware { return chimw.NoCache }

// Compress gzips/deflates answers at the given flate level
func Compress(level int) Middleware {
	c := chimw.NewCompressor(level)
	return c.Handler
}

// StripSlashes serves /bullets/rules/ as /bullets/rules
func StripSlashes() Middleware { return chimw.StripSlashes }

// SetHeader adds a fixed response header
func SetHeader(name, value string) Middleware { return chimw.SetHeader(name, value) }

// CORSOptions narrows go-chi/cors to what the api configures
type CORSOptions struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         int
}

var (
	corsMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	corsHeaders = []string{"Accept", "Content-Type", "X-Request-ID"}
)

// CORS allows browser callers of the api; empty lists fall back to the verbs and headers it serves
func CORS(o CORSOptions) Middleware {
	return chicors.Handler(chicors.Options{
		AllowedOrigins: o.AllowedOrigins,
		AllowedMethods: pstrings.IfEmpty(o.AllowedMethods, corsMethods),
		AllowedHeaders: pstrings.IfEmpty(o.AllowedHeaders, corsHeaders),
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         o.MaxAge,
	})
}
