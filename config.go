package validator

import (
	"log/slog"
	"time"

	"github.com/mikepage/dmarc-validator/dns"
)

// Config contains configuration options for the lookup service.
type Config struct {
	// Addr is the address to listen on (e.g., ":8080", "127.0.0.1:8080").
	// Default: ":8080"
	Addr string

	// Resolver performs the DMARC TXT lookups.
	// Default: dns.NewStdResolver()
	Resolver dns.Resolver

	// ---- Timeouts ----

	// ReadTimeout is the timeout for reading a request, including the body.
	// Default: 10 seconds
	ReadTimeout time.Duration

	// WriteTimeout is the timeout for writing a response.
	// Default: 30 seconds
	WriteTimeout time.Duration

	// ---- Observability ----

	// DisableMetrics disables the Prometheus /metrics endpoint.
	// Default: false (metrics are served)
	DisableMetrics bool

	// Logger is the structured logger for the server.
	// Default: slog.Default()
	Logger *slog.Logger
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Addr:         ":8080",
		Resolver:     dns.NewStdResolver(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		Logger:       slog.Default(),
	}
}
