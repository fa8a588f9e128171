package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	serverReadHeaderTimeout = 10 * time.Second
	serverReadTimeout       = 15 * time.Second
	serverWriteTimeout      = 15 * time.Second
	serverIdleTimeout       = 60 * time.Second
	shutdownTimeout         = 10 * time.Second
)

// run starts the HTTP server and blocks until it stops, either because of a
// listener error or a shutdown signal. On SIGINT/SIGTERM the server drains
// in-flight requests before the process exits.
func (app *application) run() error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.config.Server.Port),
		Handler:           app.router,
		ReadHeaderTimeout: serverReadHeaderTimeout,
		ReadTimeout:       serverReadTimeout,
		WriteTimeout:      serverWriteTimeout,
		IdleTimeout:       serverIdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.ListenAndServe()
	}()
	app.logger.Info("server listening", slog.String("addr", srv.Addr))

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.closeDatabase()
			return fmt.Errorf("server failed: %w", err)
		}

	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			app.closeDatabase()
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	app.closeDatabase()
	app.logger.Info("server stopped")
	return nil
}

func (app *application) closeDatabase() {
	if app.db == nil {
		return
	}
	if err := app.db.Close(); err != nil {
		app.logger.Warn("failed to close database",
			slog.String("error", err.Error()))
	}
}
