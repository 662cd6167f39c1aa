package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type HTTPServer struct {
	logs            *zap.SugaredLogger
	srv             *http.Server
	shutdownTimeout time.Duration
}

func NewHTTP(logger *zap.SugaredLogger, handler http.Handler, port string, shutdownTimeout time.Duration) *HTTPServer {
	return &HTTPServer{
		logs: logger,
		srv: &http.Server{
			Addr:              net.JoinHostPort("", port),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		shutdownTimeout: shutdownTimeout,
	}
}

// Run starts serving in the background. The returned channel receives the
// error that stopped the server, http.ErrServerClosed after Shutdown.
func (s *HTTPServer) Run() <-chan error {
	errChan := make(chan error, 1)

	go func() {
		s.logs.Infow("http server listening", "addr", s.srv.Addr)
		errChan <- s.srv.ListenAndServe()
	}()

	return errChan
}

func (s *HTTPServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	err := s.srv.Shutdown(ctx)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	s.logs.Infow("http server stopped")
	return nil
}
