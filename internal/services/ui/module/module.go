// Package module wires the HTML form onto the root router
package module

import (
	modkit "bulletpoints/internal/modkit"
	"bulletpoints/internal/modkit/httpkit"
	"bulletpoints/internal/modkit/module"
	bulletsdom "bulletpoints/internal/services/api/bullets/domain"
	uihttp "bulletpoints/internal/services/ui/http"
)

// Module serves GET / and POST / through the bullets port
type Module struct {
	b   modkit.Built
	svc bulletsdom.ServicePort
}

// New builds the ui over svc
func New(_ modkit.Deps, svc bulletsdom.ServicePort, opts ...modkit.Option) *Module {
	if svc == nil {
		panic("ui.Module requires a non nil bullets ServicePort")
	}
	return &Module{
		b:   modkit.Build(append([]modkit.Option{modkit.WithName("ui")}, opts...)...),
		svc: svc,
	}
}

// FromRegistry builds the ui over the ports the bullets module registered
func FromRegistry(deps modkit.Deps, opts ...modkit.Option) *Module {
	return New(deps, module.MustPortsAs[bulletsdom.ServicePort]("bullets"), opts...)
}

// MountRoutes mounts the form at the router root
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { uihttp.Register(rr, m.svc) })
}

// Ports is nil
func (m *Module) Ports() any { return nil }

// Name is the registry name
func (m *Module) Name() string { return m.b.Name }
