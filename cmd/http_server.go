package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/frahmantamala/finance-tracker/internal"
	"github.com/frahmantamala/finance-tracker/internal/server"
	"github.com/frahmantamala/finance-tracker/internal/storage"
	"github.com/spf13/cobra"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server that stores transactions and budgets and serves the dashboard.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return startHTTPServer(cmd.Context())
	},
}

func startHTTPServer(parent context.Context) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Database close error", "error", err)
		}
	}()

	router, err := server.NewRouter(server.Dependencies{
		Gorm:     db.Gorm,
		SQL:      db.SQL,
		Driver:   db.Driver,
		Logger:   logger,
		Validate: true,
	})
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", "address", addr, "driver", db.Driver)
		serverErrChan <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("Received signal, shutting down...")
		shutdownCtx, cancel := internal.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
			return err
		}
	case err := <-serverErrChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to start", "error", err)
			return err
		}
	}

	logger.Info("Server stopped")
	return nil
}

// openDatabase connects and, for sqlite, creates the tables in place.
func openDatabase(cfg internal.DatabaseConfig, logger *slog.Logger) (*storage.Database, error) {
	db, err := storage.Open(cfg, logger)
	if err != nil {
		return nil, err
	}
	if db.Driver == internal.DriverSQLite {
		if err := storage.AutoMigrate(db.Gorm); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to migrate sqlite schema: %w", err)
		}
	}
	return db, nil
}
