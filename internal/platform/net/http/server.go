package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"bulletpoints/internal/platform/config"
	"bulletpoints/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Server owns the chi mux and the listener
type Server struct {
	mux   *chi.Mux
	srv   *http.Server
	grace time.Duration
	bound chan net.Addr
}

// NewServer reads ADDR (default :4000) and SHUTDOWN_GRACE (default 10s) from cfg
func NewServer(cfg config.Conf) *Server {
	m := chi.NewRouter()
	return &Server{
		mux:   m,
		grace: cfg.MayDuration("SHUTDOWN_GRACE", 10*time.Second),
		bound: make(chan net.Addr, 1),
		srv: &http.Server{
			Addr:              cfg.MayString("ADDR", ":4000"),
			Handler:           m,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Router mounts onto the server's mux
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr is the configured listen address
func (s *Server) Addr() string { return s.srv.Addr }

// Bound yields the real listen address once Run is listening
func (s *Server) Bound() <-chan net.Addr { return s.bound }

// Run serves until ctx is done, then drains in flight requests for up to the grace period
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}
	log := logger.Named("http")
	log.Info().Str("addr", ln.Addr().String()).Msg("http listening")
	s.bound <- ln.Addr()

	errc := make(chan error, 1)
	go func() { errc <- s.srv.Serve(ln) }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info().Dur("grace", s.grace).Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), s.grace)
	defer cancel()
	if err := s.srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
