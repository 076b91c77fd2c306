package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/veridis/sfdr-engine/config"
	"github.com/veridis/sfdr-engine/engine"
	"github.com/veridis/sfdr-engine/errors"
)

// Request size limits
const (
	// MaxDocumentBytes caps the JSON request body for classification
	MaxDocumentBytes = 1 << 20 // 1 MiB
	// MaxUploadBytes caps multipart document uploads
	MaxUploadBytes = 10 << 20 // 10 MiB

	// ShutdownTimeout bounds graceful drain on Stop
	ShutdownTimeout = 10 * time.Second
)

// Server exposes the classification engine over HTTP
type Server struct {
	engine     *engine.Engine
	cfg        *config.Config
	metrics    *Metrics
	logger     *zap.SugaredLogger
	httpServer *http.Server
}

// New creates a server around a classification engine
func New(eng *engine.Engine, cfg *config.Config, logger *zap.SugaredLogger) *Server {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return &Server{
		engine:  eng,
		cfg:     cfg,
		metrics: NewMetrics(),
		logger:  logger,
	}
}

// Start begins serving on the configured port. Blocks until the
// listener fails or Stop is called.
func (s *Server) Start(port int) error {
	actualPort, err := findAvailablePort(port)
	if err != nil {
		return errors.Wrap(err, "failed to find available port")
	}

	if actualPort != port {
		s.logger.Infow("Port in use, using alternative",
			"requested_port", port,
			"actual_port", actualPort,
		)
	}

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", actualPort),
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Infow("Server ready",
		"url", fmt.Sprintf("http://localhost:%d", actualPort),
		"port", actualPort,
	)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "HTTP server failed")
	}
	return nil
}

// Stop drains in-flight requests and shuts the server down
func (s *Server) Stop() error {
	if s.httpServer == nil {
		return nil
	}

	s.logger.Infow("Initiating server shutdown")

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "graceful shutdown failed")
	}

	s.logger.Infow("Server shutdown complete")
	return nil
}

// isPortAvailable checks if a port is available for binding
func isPortAvailable(port int) bool {
	addr := fmt.Sprintf(":%d", port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return false
	}
	_ = listener.Close()
	return true
}

// findAvailablePort tries the requested port first, then up to 10
// sequential alternatives.
func findAvailablePort(requestedPort int) (int, error) {
	if isPortAvailable(requestedPort) {
		return requestedPort, nil
	}

	for i := 1; i <= 10; i++ {
		port := requestedPort + i
		if isPortAvailable(port) {
			return port, nil
		}
	}

	return 0, errors.Newf("no available ports found (tried %d-%d)", requestedPort, requestedPort+10)
}
