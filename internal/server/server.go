package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"everafter/internal/domain"
	"everafter/internal/metrics"
)

// DefaultMaxBodyBytes bounds request bodies; a signature PNG is well below it.
const DefaultMaxBodyBytes = 2 << 20

// Config controls the HTTP listener.
type Config struct {
	Addr         string
	MaxBodyBytes int64
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Describer renders a package's long description as HTML.
type Describer interface {
	DescriptionHTML(p domain.Package) (string, error)
}

// Server is the booking HTTP API.
type Server struct {
	svc     domain.BookingService
	desc    Describer
	metrics *metrics.Metrics
	log     *slog.Logger
	maxBody int64

	router chi.Router
	http   *http.Server
}

// New wires routes and middleware. desc may be nil, in which case package
// listings carry no rendered description.
func New(cfg Config, svc domain.BookingService, desc Describer, m *metrics.Metrics, log *slog.Logger) *Server {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 10 * time.Second
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = 30 * time.Second
	}
	if cfg.IdleTimeout == 0 {
		cfg.IdleTimeout = 120 * time.Second
	}
	if m == nil {
		m = metrics.New()
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	s := &Server{
		svc:     svc,
		desc:    desc,
		metrics: m,
		log:     log,
		maxBody: cfg.MaxBodyBytes,
	}

	r := chi.NewRouter()
	r.Use(s.requestID, s.accessLog, s.instrument, middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Route("/api", func(api chi.Router) {
		api.Get("/packages", s.handlePackages)
		api.Post("/stripe/create-payment-intent", s.handleCreateIntent)
		api.Post("/stripe/payment", s.handleConfirmPayment)
		api.Post("/contract/submit", s.handleSubmitContract)
	})
	s.router = r

	s.http = &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return s
}

// Handler returns the routed handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

// Serve accepts connections on l until Shutdown.
func (s *Server) Serve(l net.Listener) error {
	s.log.Info("listening", "addr", l.Addr().String())
	if err := s.http.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ListenAndServe listens on the configured address.
func (s *Server) ListenAndServe() error {
	l, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return err
	}
	return s.Serve(l)
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down")
	return s.http.Shutdown(ctx)
}
