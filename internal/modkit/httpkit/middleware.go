package httpkit

import (
	"compress/flate"
	"time"

	"bulletpoints/internal/platform/net/middleware"
)

// CommonStack is the chain in front of every /api/v1 route.
// origins feeds CORS; none means any origin
func CommonStack(origins ...string) []Middleware {
	return []Middleware{
		middleware.RequestID(),
		middleware.Tag("api"),
		middleware.RealIP(),
		middleware.RecoverJSON,
		middleware.NoCache(),
		middleware.AccessLog(500 * time.Millisecond),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: origins}),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(30 * time.Second),
	}
}

// PageStack is the chain in front of the html form
func PageStack() []Middleware {
	return []Middleware{
		middleware.RequestID(),
		middleware.Tag("ui"),
		middleware.RealIP(),
		middleware.Recover(),
		middleware.SetHeader("X-Content-Type-Options", "nosniff"),
		middleware.AccessLog(500 * time.Millisecond),
		middleware.Compress(flate.BestSpeed),
		middleware.Timeout(30 * time.Second),
	}
}
