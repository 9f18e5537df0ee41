package httpserver

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"task-suggestion-service/internal/middleware"
	suggestionHTTP "task-suggestion-service/internal/suggestion/delivery/http"
	"task-suggestion-service/pkg/log"
)

// ReadinessFunc reports whether the service can serve domain traffic.
type ReadinessFunc func() bool

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Middleware
	mw middleware.Middleware

	// Suggestion domain
	suggestionHandler suggestionHTTP.Handler
	ready             ReadinessFunc
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// RequestsPerMin is the per-client limit on suggestion routes; 0 disables it.
	RequestsPerMin int
	// TrustedProxies may set the client IP through X-Forwarded-For; nil trusts none.
	TrustedProxies []string

	// Suggestion domain
	SuggestionHandler suggestionHTTP.Handler
	Ready             ReadinessFunc
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                 logger,
		gin:               gin.New(),
		port:              cfg.Port,
		mode:              cfg.Mode,
		environment:       cfg.Environment,
		mw:                middleware.New(logger, cfg.RequestsPerMin),
		suggestionHandler: cfg.SuggestionHandler,
		ready:             cfg.Ready,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}

// Engine exposes the gin engine for in-process tests and tooling.
func (srv *HTTPServer) Engine() *gin.Engine {
	return srv.gin
}
