// Package http serves the HTML form for normalizing bullet points
package http

import (
	_ "embed"
	"html/template"
	"net/http"

	"bulletpoints/internal/modkit/httpkit"
	perr "bulletpoints/internal/platform/errors"
	"bulletpoints/internal/platform/logger"
	"bulletpoints/internal/platform/net/http/bind"
	bulletsdom "bulletpoints/internal/services/api/bullets/domain"
)

//go:embed page.html
var pageHTML string

var page = template.Must(template.New("page").Parse(pageHTML))

// View is the template data
type View struct {
	Text   string
	Result *bulletsdom.Result
	Error  string
}

type handlers struct {
	svc bulletsdom.ServicePort
}

// Register mounts GET / and POST / on r
func Register(r httpkit.Router, svc bulletsdom.ServicePort) {
	h := &handlers{svc: svc}
	r.Get("/", h.form)
	r.Post("/", h.submit)
}

func (h *handlers) form(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, View{})
}

func (h *handlers) submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, bind.MaxBody)
	if err := r.ParseForm(); err != nil {
		render(w, r, http.StatusBadRequest, View{Error: "Could not read the submitted form."})
		return
	}

	text := r.PostForm.Get("text")
	if err := bind.Get().Field("text", text, "utf8"); err != nil {
		render(w, r, http.StatusBadRequest, View{Error: "The text must be valid UTF-8."})
		return
	}

	res, err := h.svc.Normalize(r.Context(), text)
	if err != nil {
		logger.C(r.Context()).Error().Err(err).Msg("ui normalize failed")
		render(w, r, perr.HTTPStatus(err), View{Text: text, Error: "Something went wrong. Please try again."})
		return
	}
	render(w, r, http.StatusOK, View{Text: text, Result: &res})
}

func render(w http.ResponseWriter, r *http.Request, status int, v View) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := page.Execute(w, v); err != nil {
		logger.C(r.Context()).Error().Err(err).Msg("ui render failed")
	}
}
