// Package module holds the module contract and the registry modules find each other's ports in
package module

import phttp "bulletpoints/internal/platform/net/http"

// Module is a unit the api mounts. Ports is whatever it lends to sibling modules, or nil
type Module interface {
	Name() string
	MountRoutes(r phttp.Router)
	Ports() any
}
