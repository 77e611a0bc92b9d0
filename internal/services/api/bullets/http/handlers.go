// Package http provides http transport for bullets
package http

import (
	stdhttp "net/http"

	"bulletpoints/internal/modkit/httpkit"
	perr "bulletpoints/internal/platform/errors"
	str "bulletpoints/internal/platform/strings"
	"bulletpoints/internal/services/api/bullets/domain"
	svc "bulletpoints/internal/services/api/bullets/service"
)

// Register mounts bullets endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.NormalizeInput](r, "/normalize", h.normalize)
	httpkit.Get(r, "/rules", h.rules)
	httpkit.Get(r, "/check", h.check)
}

type handlers struct{ svc svc.Service }

// normalize runs the rewrite pipeline over the body text and reports its length
func (h *handlers) normalize(r *stdhttp.Request, in domain.NormalizeInput) (any, error) {
	return h.svc.Normalize(r.Context(), str.Deref(in.Text))
}

// rules lists the rewrite tables in the order they are applied
func (h *handlers) rules(r *stdhttp.Request) (any, error) {
	return h.svc.Rules(r.Context()), nil
}

// check reports the length of text that was already normalized
func (h *handlers) check(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	if !q.Has("text") {
		return nil, perr.WithField(perr.Validationf("text is a required field"), "text")
	}
	return h.svc.Check(r.Context(), q.Get("text")), nil
}
