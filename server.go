package validator

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mikepage/dmarc-validator/dns"
)

// Server is the HTTP server exposing the DMARC lookup API.
type Server struct {
	config Config
	serv   *http.Server
}

// New creates a new lookup server with the given configuration.
func New(config Config) *Server {
	// Apply defaults
	if config.Addr == "" {
		config.Addr = ":8080"
	}
	if config.Resolver == nil {
		config.Resolver = dns.NewStdResolver()
	}
	if config.ReadTimeout == 0 {
		config.ReadTimeout = 10 * time.Second
	}
	if config.WriteTimeout == 0 {
		config.WriteTimeout = 30 * time.Second
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	s := &Server{config: config}

	router := httprouter.New()
	router.Handler(http.MethodGet, "/api/dmarc", http.HandlerFunc(s.handleLookup))
	router.Handler(http.MethodGet, "/healthz", http.HandlerFunc(s.handleHealth))
	if !config.DisableMetrics {
		router.Handler(http.MethodGet, "/metrics", promhttp.Handler())
	}

	s.serv = &http.Server{
		Addr:         config.Addr,
		Handler:      Chain(router, RequestID(), Logging(config.Logger), Recovery(config.Logger)),
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
	}

	return s
}

// Handler returns the server's root handler, with middleware applied.
// Useful for tests and for mounting the service into an existing server.
func (s *Server) Handler() http.Handler {
	return s.serv.Handler
}

// ListenAndServe starts the server on the configured address. It returns
// http.ErrServerClosed after Shutdown or Close.
func (s *Server) ListenAndServe() error {
	listener, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("validator: failed to listen: %w", err)
	}
	return s.Serve(listener)
}

// Serve accepts connections on the listener and handles them.
func (s *Server) Serve(listener net.Listener) error {
	s.config.Logger.Info("DMARC lookup service started",
		slog.String("addr", listener.Addr().String()),
	)
	return s.serv.Serve(listener)
}

// Shutdown gracefully shuts down the server without interrupting active
// requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.serv.Shutdown(ctx)
}

// Close immediately closes the server and all active connections.
func (s *Server) Close() error {
	return s.serv.Close()
}
