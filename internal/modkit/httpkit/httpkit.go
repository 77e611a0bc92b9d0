// Package httpkit is what modules mount their handlers with, so they never import chi or the platform http package
package httpkit

import (
	"net/http"

	phttp "bulletpoints/internal/platform/net/http"
	"bulletpoints/internal/platform/net/http/bind"
)

type (
	// Router is the platform router
	Router = phttp.Router

	// Envelope is the api answer body, named in swagger annotations
	Envelope = phttp.Envelope

	// Middleware decorates a handler
	Middleware = func(http.Handler) http.Handler
)

// Get mounts a body-less handler; its result or error is enveloped
func Get(r Router, pattern string, fn func(*http.Request) (any, error)) {
	r.Get(pattern, phttp.Handle(func(req *http.Request) phttp.Response {
		return reply(fn(req))
	}))
}

// PostJSON mounts a handler whose body is decoded and validated into T first.
// Decode and validation failures never reach fn
func PostJSON[T any](r Router, pattern string, fn func(*http.Request, T) (any, error)) {
	r.Post(pattern, phttp.Handle(func(req *http.Request) phttp.Response {
		in, err := bind.ParseJSON[T](req)
		if err != nil {
			return phttp.Error(err)
		}
		return reply(fn(req, in))
	}))
}

func reply(out any, err error) phttp.Response {
	if err != nil {
		return phttp.Error(err)
	}
	return phttp.OK(out)
}

// MountAPIV1 scopes mount under /api/v1 behind mws
func MountAPIV1(r Router, mws []Middleware, mount func(Router)) {
	r.Route("/api/v1", func(api Router) {
		api.Use(mws...)
		mount(api)
	})
}
