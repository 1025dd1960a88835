package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Run serves until ctx is cancelled, then shuts down gracefully and waits for
// in-flight webhook re-checks.
func (srv *HTTPServer) Run(ctx context.Context) error {
	srv.srv = &http.Server{
		Addr:              fmt.Sprintf(":%d", srv.port),
		Handler:           srv.gin,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "HTTP server listening on %s", srv.srv.Addr)
		if err := srv.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	srv.l.Info(context.Background(), "Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown: %w", err)
	}
	if srv.webhookHandler != nil {
		srv.webhookHandler.Wait()
	}
	return <-errCh
}
