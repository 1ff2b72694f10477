package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"
)

// Run maps the routes and serves until ctx is cancelled or SIGINT/SIGTERM
// arrives, then drains in-flight requests within the shutdown timeout.
func (srv *HTTPServer) Run(ctx context.Context) error {
	if err := srv.mapHandlers(); err != nil {
		srv.l.Errorf(ctx, "internal.httpserver.Run: failed to map handlers: %v", err)
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpSrv := &http.Server{
		Addr:              net.JoinHostPort(srv.host, strconv.Itoa(srv.port)),
		Handler:           srv.gin,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	srv.l.Infof(ctx, "HTTP server started on %s", httpSrv.Addr)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	srv.l.Info(context.Background(), "Shutting down HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), srv.shutdownTimeout)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		srv.l.Errorf(shutdownCtx, "internal.httpserver.Run: shutdown: %v", err)
		return err
	}

	srv.l.Info(shutdownCtx, "HTTP server stopped")
	return nil
}
