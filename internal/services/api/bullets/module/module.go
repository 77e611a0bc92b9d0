// Package module wires bullets into the API using modkit
package module

import (
	modkit "bulletpoints/internal/modkit"
	"bulletpoints/internal/modkit/httpkit"
	bulletshttp "bulletpoints/internal/services/api/bullets/http"
	bulletssvc "bulletpoints/internal/services/api/bullets/service"
)

// Module mounts /bullets and lends its service to the ui as its ports
type Module struct {
	b   modkit.Built
	svc bulletssvc.Service
}

// New builds the module over deps' normalizer
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	return &Module{
		b: modkit.Build(append([]modkit.Option{
			modkit.WithName("bullets"),
			modkit.WithPrefix("/bullets"),
		}, opts...)...),
		svc: bulletssvc.New(deps.Normalizer()),
	}
}

// MountRoutes mounts normalize, rules and check under the prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { bulletshttp.Register(rr, m.svc) })
}

// Ports is the bullets domain.ServicePort
func (m *Module) Ports() any { return m.svc }

// Name is the registry name
func (m *Module) Name() string { return m.b.Name }

// Prefix is the route prefix
func (m *Module) Prefix() string { return m.b.Prefix }
