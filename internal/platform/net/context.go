// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const keySurface ctxKey = "surface"

// WithRequest annotates context with the request id and the serving surface (api, ui, cli)
func WithRequest(ctx context.Context, reqID, surface string) context.Context {
	if reqID != "" {
		// set chi RequestID so chimw.GetReqID can retrieve it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if surface != "" {
		ctx = context.WithValue(ctx, keySurface, surface)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	if v := chimw.GetReqID(ctx); v != "" {
		return v
	}
	return ""
}

// Surface returns the surface tag on the context if present
func Surface(ctx context.Context) string {
	if v, ok := ctx.Value(keySurface).(string); ok {
		return v
	}
	return ""
}
