package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// startHTTPServer listens on the configured port and serves until ctx is done.
func (app *application) startHTTPServer(ctx context.Context, router http.Handler) error {
	addr := fmt.Sprintf(":%d", app.config.Server.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return app.serve(ctx, listener, router)
}

// serve runs the HTTP server on listener with graceful shutdown support.
// It returns nil after a clean shutdown triggered by ctx.
func (app *application) serve(ctx context.Context, listener net.Listener, router http.Handler) error {
	server := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: app.config.Server.ReadHeaderTimeout,
		IdleTimeout:       app.config.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		app.logger.Info("Starting server", "addr", listener.Addr().String())
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err, ok := <-serverErr:
		if ok {
			app.logger.Error("Server failed", "error", err)
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		app.logger.Info("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("Server shutdown failed", "error", err)
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	app.logger.Info("Server shutdown completed")
	return nil
}
