package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// shutdownGrace bounds how long in-flight requests may finish after a stop
// signal.
const shutdownGrace = 10 * time.Second

// Run maps all handlers and serves until ctx is cancelled, then shuts down
// gracefully.
func (srv *HTTPServer) Run(ctx context.Context) error {
	if err := srv.mapHandlers(); err != nil {
		return fmt.Errorf("httpserver: failed to map handlers: %w", err)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", srv.port),
		Handler: srv.gin,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "HTTP server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("httpserver: serve failed: %w", err)
	case <-ctx.Done():
	}

	srv.l.Info(ctx, "Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("httpserver: shutdown failed: %w", err)
	}
	return nil
}
