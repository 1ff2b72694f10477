package httpserver

import (
	"errors"
	"time"

	"bank-api/internal/middleware"
	"bank-api/pkg/discord"
	"bank-api/pkg/log"
	"bank-api/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them.
// Run() is responsible for serving until shutdown.
type HTTPServer struct {
	// Server configuration
	gin             *gin.Engine
	l               log.Logger
	host            string
	port            int
	mode            string
	shutdownTimeout time.Duration

	// Auth & security
	verifier scope.Verifier
	security SecurityConfig
	cors     middleware.CORSConfig
	docs     DocsConfig

	// Monitoring & Notification
	registry *prometheus.Registry
	metrics  *middleware.Metrics
	discord  discord.IDiscord
}

// SecurityConfig describes the token issuer for challenges and resource metadata.
type SecurityConfig struct {
	Issuer      string
	JWKSURL     string
	ResourceURL string
}

// DocsConfig holds the runtime values patched into the Swagger document.
type DocsConfig struct {
	AuthorizationURL string
	TokenURL         string
	ClientID         string
	Host             string
}

// Config is the constructor input for HTTPServer.
type Config struct {
	// Server configuration
	Host            string
	Port            int
	Mode            string
	ShutdownTimeout time.Duration

	// Auth & security
	Verifier scope.Verifier
	Security SecurityConfig
	CORS     middleware.CORSConfig
	Docs     DocsConfig

	// Monitoring & Notification
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
// Note: routes are mapped by Run.
func New(l log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	srv := &HTTPServer{
		gin:             gin.New(),
		l:               l,
		host:            cfg.Host,
		port:            cfg.Port,
		mode:            cfg.Mode,
		shutdownTimeout: shutdownTimeout,

		verifier: cfg.Verifier,
		security: cfg.Security,
		cors:     cfg.CORS,
		docs:     cfg.Docs,

		registry: registry,
		metrics:  middleware.NewMetrics(registry),
		discord:  cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.verifier == nil {
		return errors.New("token verifier is required")
	}
	if srv.docs.AuthorizationURL == "" || srv.docs.TokenURL == "" {
		return errors.New("docs authorization and token URLs are required")
	}
	return nil
}
