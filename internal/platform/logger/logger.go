// Package logger owns the process zerolog root and the request scoped children
// every surface (api, ui, cli) logs through
package logger

import (
	"context"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"bulletpoints/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger is the logging type handed around the codebase
type Logger = zerolog.Logger

// Options shapes the root logger
type Options struct {
	Level       string
	Format      string // console or json
	Service     string
	Component   string
	Writer      io.Writer
	Caller      bool
	SampleEvery int
}

// FromEnv overlays the LOG_* variables on def.
// Unset variables keep def; an empty def.Level or def.Format means debug and console
func FromEnv(def Options) Options {
	if def.Level == "" {
		def.Level = "debug"
	}
	if def.Format == "" {
		def.Format = "console"
	}
	rc := raw.New().Prefix("LOG_")
	def.Level = strings.ToLower(rc.Get("LEVEL", def.Level))
	def.Format = strings.ToLower(rc.Get("FORMAT", def.Format))
	def.Service = rc.Get("SERVICE", def.Service)
	def.Component = rc.Get("COMPONENT", def.Component)
	def.Caller = rc.GetBool("CALLER", def.Caller)
	def.SampleEvery = rc.GetInt("SAMPLE_EVERY", def.SampleEvery)
	return def
}

// New builds a logger from opt without touching the process root
func New(opt Options) Logger {
	var w io.Writer = os.Stdout
	if opt.Writer != nil {
		w = opt.Writer
	}
	if opt.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	c := zerolog.New(w).Level(level(opt.Level)).With().Timestamp()
	if bi, ok := debug.ReadBuildInfo(); ok {
		c = c.Str("go_version", bi.GoVersion)
	}
	if opt.Service != "" {
		c = c.Str("service", opt.Service)
	}
	if opt.Component != "" {
		c = c.Str("component", opt.Component)
	}
	if opt.Caller {
		c = c.Caller()
	}

	l := c.Logger()
	if opt.SampleEvery > 1 {
		l = l.Sample(&zerolog.BasicSampler{N: uint32(opt.SampleEvery)})
	}
	return l
}

var (
	initOnce sync.Once
	root     atomic.Pointer[Logger]
)

// Init installs the root logger; only the first call wins
func Init(opt Options) {
	initOnce.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano
		l := New(opt)
		root.Store(&l)
	})
}

// Get returns the root logger, building it from the environment on first use
func Get() *Logger {
	if l := root.Load(); l != nil {
		return l
	}
	Init(FromEnv(Options{}))
	return root.Load()
}

// level maps a LOG_LEVEL value; unknown values log everything from debug up
func level(s string) zerolog.Level {
	s = strings.TrimSpace(s)
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || s == "" {
		return zerolog.DebugLevel
	}
	return lvl
}

type requestKey struct{}

type request struct{ id, surface string }

// WithRequest remembers the request id and the serving surface (api, ui, cli) on ctx
func WithRequest(ctx context.Context, reqID, surface string) context.Context {
	if reqID == "" && surface == "" {
		return ctx
	}
	return context.WithValue(ctx, requestKey{}, request{id: reqID, surface: surface})
}

// C returns a child of the root carrying request_id and surface from ctx
func C(ctx context.Context) *Logger {
	c := Get().With()
	if rq, ok := ctx.Value(requestKey{}).(request); ok {
		if rq.id != "" {
			c = c.Str("request_id", rq.id)
		}
		if rq.surface != "" {
			c = c.Str("surface", rq.surface)
		}
	}
	l := c.Logger()
	return &l
}

// Named returns a child of the root tagged with component
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}
