package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"memberqa-backend/internal/api"
	"memberqa-backend/internal/config"
	"memberqa-backend/internal/handlers"
	"memberqa-backend/internal/integrations/messages"
	"memberqa-backend/internal/logging"
	"memberqa-backend/internal/metrics"
	"memberqa-backend/internal/services"
	"memberqa-backend/internal/store"
	"memberqa-backend/internal/store/postgres"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck
	zap.ReplaceGlobals(logger)

	for _, w := range cfg.Warnings {
		logger.Warn("config", zap.String("warning", w))
	}
	logger.Info("starting member QA backend",
		zap.String("port", cfg.HTTPPort),
		zap.String("messages_url", cfg.MessagesURL),
		zap.Duration("messages_timeout", cfg.MessagesTimeout),
	)

	// 2. Question log: Postgres when configured, otherwise discard
	var questionLog store.QuestionLog = store.NopQuestionLog{}
	if cfg.DatabaseURL != "" {
		dbpool, err := openPool(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer dbpool.Close()

		pgStore := postgres.NewPostgresStore(dbpool, logger)
		schemaCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = pgStore.EnsureSchema(schemaCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("failed to create question log schema: %w", err)
		}
		questionLog = pgStore
		logger.Info("question log backed by postgres")
	} else {
		logger.Info("DATABASE_URL not set, question log disabled")
	}

	// 3. Initialize Dependencies
	m := metrics.New(prometheus.DefaultRegisterer)
	source := messages.NewClient(cfg.MessagesURL, cfg.MessagesTimeout, logger)
	askService := services.NewAskService(source, questionLog, m, logger)
	askHandler := handlers.NewAskHandler(askService, logger)

	// 4. Setup Router
	router := api.NewRouter(api.RouterDependencies{
		AskHandler:     askHandler,
		Config:         cfg,
		Logger:         logger,
		MetricsHandler: promhttp.Handler(),
	})
	defer router.Close()

	// 5. Configure and Start HTTP Server
	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
		// The write timeout must outlast a full upstream fetch.
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.MessagesTimeout + 10*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, syscall.SIGINT, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("could not listen on %s: %w", server.Addr, err)
	case sig := <-stopChan:
		logger.Info("shutdown signal received", zap.String("signal", sig.String()))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("server shutdown complete")
	return nil
}

func openPool(databaseURL string) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbpool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("unable to create database connection pool: %w", err)
	}
	if err := dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}
	return dbpool, nil
}
