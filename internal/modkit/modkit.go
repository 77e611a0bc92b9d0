// Package modkit assembles the api modules: the deps they share, their build options
// and the one way they mount onto a router
package modkit

import (
	"bulletpoints/internal/core/normalize"
	"bulletpoints/internal/modkit/httpkit"
	"bulletpoints/internal/modkit/module"
	"bulletpoints/internal/platform/logger"
	str "bulletpoints/internal/platform/strings"
)

// Module is the contract every module fulfils
type Module = module.Module

// Deps are handed to every module constructor
type Deps struct {
	Log  logger.Logger
	Norm *normalize.Normalizer
}

// Normalizer returns Norm, or one over the embedded rule pack when unset
func (d Deps) Normalizer() *normalize.Normalizer {
	if d.Norm != nil {
		return d.Norm
	}
	return normalize.New()
}

// Option adjusts how a module is built
type Option func(*Built)

// WithName overrides the registry name
func WithName(name string) Option { return func(b *Built) { b.Name = name } }

// WithPrefix overrides the route prefix; empty mounts at the router root
func WithPrefix(prefix string) Option { return func(b *Built) { b.Prefix = prefix } }

// WithMiddlewares appends middlewares that only wrap this module's routes
func WithMiddlewares(mws ...httpkit.Middleware) Option {
	return func(b *Built) { b.Mws = append(b.Mws, mws...) }
}

// Built is the resolved naming and wrapping of one module
type Built struct {
	Name   string
	Prefix string
	Mws    []httpkit.Middleware
}

// Build applies opts in order, later ones winning
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		o(&b)
	}
	b.Name = str.MustString(b.Name, "module name")
	if b.Prefix != "" {
		b.Prefix = str.MustPrefix(b.Prefix)
	}
	return b
}

// Mount registers routes on r under Prefix behind Mws. Without a prefix the routes join r's root
func (b Built) Mount(r httpkit.Router, register func(httpkit.Router)) {
	scoped := func(rr httpkit.Router) {
		rr.Use(b.Mws...)
		register(rr)
	}
	if b.Prefix == "" {
		r.Group(scoped)
		return
	}
	r.Route(b.Prefix, scoped)
}
