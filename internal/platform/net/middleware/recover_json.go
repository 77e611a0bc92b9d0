package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	perr "bulletpoints/internal/platform/errors"
	"bulletpoints/internal/platform/logger"
	pnet "bulletpoints/internal/platform/net"
)

// RecoverJSON answers a panic with the api's 500 envelope and logs the stack
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			ctx := r.Context()
			logger.C(ctx).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			env := pnet.Failure(ctx, perr.PanicErrf("panic recovered"))
			if env.RequestID != "" {
				w.Header().Set("X-Request-ID", env.RequestID)
			}
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(env.StatusCode)
			_ = json.NewEncoder(w).Encode(env)
		}()
		next.ServeHTTP(w, r)
	})
}
