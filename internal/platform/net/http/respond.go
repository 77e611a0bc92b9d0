package http

import (
	"encoding/json"
	"net/http"

	pnet "bulletpoints/internal/platform/net"
)

// Envelope is the body of every api answer
type Envelope = pnet.Envelope

// Response is what return-style handlers hand back. An error Body renders as a failure envelope
type Response struct {
	Status int
	Body   any
}

// OK answers 200 with data
func OK(data any) Response { return Response{Status: http.StatusOK, Body: data} }

// Error answers with the status mapped from err's code
func Error(err error) Response { return Response{Body: err} }

// Handle adapts a return-style handler to net/http
func Handle(fn func(*http.Request) Response) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fn(r).write(w, r)
	}
}

func (resp Response) write(w http.ResponseWriter, r *http.Request) {
	if err, ok := resp.Body.(error); ok && err != nil {
		env := pnet.Failure(r.Context(), err)
		WriteJSON(w, env.StatusCode, env)
		return
	}
	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}
	WriteJSON(w, status, pnet.Success(r.Context(), status, resp.Body))
}

// WriteJSON encodes v with the given status
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
