// Package http serves the api: a router facade over chi, the envelope writer and the listener
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Router is the routing surface modules mount against
type Router interface {
	Get(pattern string, h http.HandlerFunc)
	Post(pattern string, h http.HandlerFunc)
	Handle(pattern string, h http.Handler)
	Use(mws ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))

	// Mux is the root handler, whichever subrouter it is called on
	Mux() http.Handler
}

type chiRouter struct {
	root *chi.Mux
	r    chi.Router
}

// AdaptChi wraps a chi mux
func AdaptChi(m *chi.Mux) Router { return chiRouter{root: m, r: m} }

func (c chiRouter) sub(r chi.Router) Router { return chiRouter{root: c.root, r: r} }

func (c chiRouter) Get(p string, h http.HandlerFunc)           { c.r.Get(p, h) }
func (c chiRouter) Post(p string, h http.HandlerFunc)          { c.r.Post(p, h) }
func (c chiRouter) Handle(p string, h http.Handler)            { c.r.Handle(p, h) }
func (c chiRouter) Use(mws ...func(http.Handler) http.Handler) { c.r.Use(mws...) }
func (c chiRouter) Mux() http.Handler                          { return c.root }

func (c chiRouter) Group(fn func(Router)) {
	c.r.Group(func(g chi.Router) { fn(c.sub(g)) })
}

func (c chiRouter) Route(p string, fn func(Router)) {
	c.r.Route(p, func(s chi.Router) { fn(c.sub(s)) })
}
