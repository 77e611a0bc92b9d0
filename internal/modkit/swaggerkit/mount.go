// Package swaggerkit serves the api reference: a swagger UI over a doc.json
// generated from the mounted routes
package swaggerkit

import (
	"net/http"

	phttp "bulletpoints/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	uiRoot  = "/api/docs"
	docPath = uiRoot + "/doc.json"
)

// Mount adds the UI under /api/docs/ when enabled; the bare /api/docs redirects there
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get(uiRoot, func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, uiRoot+"/", http.StatusPermanentRedirect)
	})
	r.Get(docPath, serveDocJSON())
	r.Handle(uiRoot+"/*", httpSwagger.Handler(
		httpSwagger.InstanceName("bulletpoints"),
		httpSwagger.URL(docPath),
		httpSwagger.DocExpansion("list"),
	))
}
