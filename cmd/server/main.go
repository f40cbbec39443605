// Package main is the entry point for the store catalog API server.
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

	"github.com/klauspost/compress/gzhttp"

	"storecatalog/internal/domain/catalog"
	"storecatalog/internal/domain/catalogs/supplier"
	v1 "storecatalog/internal/infrastructure/http/v1"
	"storecatalog/internal/infrastructure/http/v1/middleware"
	"storecatalog/internal/infrastructure/storage"
	"storecatalog/pkg/logger"
)

func main() {
	// Initialize logger
	development := getEnv("APP_ENV", "development") == "development"
	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: development,
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx := logger.WithLogger(context.Background(), log)

	// --- Storage ---
	driver := getEnv("STORAGE_DRIVER", storage.DriverMemory)
	storageCfg := storage.Config{
		Driver:     driver,
		MaxConns:   int32(getEnvInt("DB_MAX_CONNS", 0)),
		SQLitePath: getEnv("SQLITE_PATH", "data/storecatalog.db"),
	}
	if driver == storage.DriverPostgres {
		storageCfg.DatabaseURL = mustEnv("DATABASE_URL")
	}

	backend, err := storage.Open(ctx, storageCfg)
	if err != nil {
		log.Fatalw("failed to open storage", "driver", driver, "error", err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			log.Warnw("failed to close storage", "error", err)
		}
	}()
	log.Infow("storage ready", "driver", backend.Driver)

	// --- Services ---
	catalogService := catalog.NewService(catalog.Config{
		Stores:     backend.Stores,
		Products:   backend.Products,
		Assortment: backend.Assortment,
		TxManager:  backend.TxManager,
	})
	supplierService := supplier.NewService(backend.Suppliers, backend.TxManager)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Catalog:   catalogService,
		Suppliers: supplierService,
		Logger:    log,
		Storage:   backend,
		Driver:    backend.Driver,
		Metrics:   middleware.NewMetrics("storecatalog"),
		Debug:     development,
	})

	var handler http.Handler = router
	if getEnvBool("GZIP_ENABLED", true) {
		handler = gzhttp.GzipHandler(router)
	}

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second))
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return
	}

	log.Info("server stopped")
}
