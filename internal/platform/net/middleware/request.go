package middleware

import (
	"net/http"
	"time"

	"bulletpoints/internal/platform/logger"
	pnet "bulletpoints/internal/platform/net"
)

// Tag stamps the surface (api, ui) and the request id onto the context for pnet and logger.C.
// Mount it after RequestID
func Tag(surface string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := pnet.WithRequest(r.Context(), "", surface)
			ctx = logger.WithRequest(ctx, pnet.RequestID(ctx), surface)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// statusWriter remembers the status and counts body bytes
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	n, err := sw.ResponseWriter.Write(b)
	sw.bytes += n
	return n, err
}

// AccessLog writes one line per request with the request scoped logger.
// Requests slower than slow log at warn; 0 never warns
func AccessLog(slow time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(sw, r)

			elapsed := time.Since(start)
			log := logger.C(r.Context())
			evt := log.Info()
			if slow > 0 && elapsed >= slow {
				evt = log.Warn()
			}
			evt.Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", sw.status).
				Int("bytes", sw.bytes).
				Dur("elapsed", elapsed).
				Msg("request done")
		})
	}
}
