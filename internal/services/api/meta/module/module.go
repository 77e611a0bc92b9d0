// Package module wires meta endpoints into the API
package module

import (
	"context"
	"time"

	"bulletpoints/internal/core/rulepack"
	modkit "bulletpoints/internal/modkit"
	"bulletpoints/internal/modkit/httpkit"
	metahttp "bulletpoints/internal/services/api/meta/http"
)

// Module mounts /meta. It lends nothing to other modules
type Module struct {
	b    modkit.Built
	deps metahttp.Deps
}

// New builds the meta module. Readiness checks that the embedded rule pack compiled
func New(_ modkit.Deps, opts ...modkit.Option) *Module {
	return &Module{
		b: modkit.Build(append([]modkit.Option{
			modkit.WithName("meta"),
			modkit.WithPrefix("/meta"),
		}, opts...)...),
		deps: metahttp.Deps{
			Service: "bulletpoints-api",
			Started: time.Now(),
			Checks: []metahttp.Check{
				{Name: "rules", Run: func(context.Context) error { return rulepack.Err() }},
			},
		},
	}
}

// MountRoutes mounts health, ready, version and service under the prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, m.deps) })
}

// Ports is nil
func (m *Module) Ports() any { return nil }

// Name is the registry name
func (m *Module) Name() string { return m.b.Name }
