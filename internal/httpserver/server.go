package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Run serves until ctx is cancelled, then shuts down gracefully.
func (srv *HTTPServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", srv.port),
		Handler: srv.gin,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "[relay] Bookmark relay listening on :%d", srv.port)
		srv.l.Infof(ctx, "[relay] Jibrain extractions: %s", srv.intakeDir)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	srv.l.Info(context.Background(), "[relay] Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), srv.shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
