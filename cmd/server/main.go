package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/lychee-technology/minid"
	"github.com/lychee-technology/minid/factory"
	"go.uber.org/zap"
)

// defaultCustomerPrefix is used when MINID_PREFIX is not set.
const defaultCustomerPrefix = "cus"

// Server represents the HTTP server issuing customer identifiers
type Server struct {
	generator *minid.Generator
	mux       *http.ServeMux
}

// NewServer creates a new Server instance
func NewServer(generator *minid.Generator) *Server {
	return &Server{
		generator: generator,
		mux:       http.NewServeMux(),
	}
}

// RegisterRoutes registers all API routes
func (s *Server) RegisterRoutes() {
	s.mux.HandleFunc("POST /customers", s.handleCreateCustomer)
	s.mux.HandleFunc("GET /customers/{id}", s.handleGetCustomer)
	s.mux.HandleFunc("POST /customers/{id}/disable", s.handleDisableCustomer)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context, config minid.ServerConfig) error {
	httpServer := &http.Server{
		Addr:         config.Addr,
		Handler:      s,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.S().Infow("starting server", "addr", config.Addr, "prefix", s.generator.Prefix())
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	zap.S().Infow("shutting down server", "timeout", config.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

func main() {
	config, err := factory.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, err := factory.NewLogger(config.Logging)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)
	sugar := logger.Sugar()

	if config.Generator.Prefix == "" {
		config.Generator.Prefix = defaultCustomerPrefix
	}

	generator, err := factory.NewGenerator(config, nil)
	if err != nil {
		sugar.Fatalf("failed to create generator: %v", err)
	}

	server := NewServer(generator)
	server.RegisterRoutes()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx, config.Server); err != nil {
		sugar.Fatalf("server error: %v", err)
	}
}
