package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// RunHTTPServer serves the gateway until ctx is cancelled, then drains
// in-flight requests for up to ten seconds. The write timeout must outlast
// a full relayed JIRA round trip; inbound payloads are small JSON bodies,
// so the header and idle timeouts stay tight.
func RunHTTPServer(ctx context.Context, handler http.Handler, addr string, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "address", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		// ListenAndServe only returns before cancellation when it failed
		// to serve, e.g. the address is already bound.
		return fmt.Errorf("serving error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	return nil
}
