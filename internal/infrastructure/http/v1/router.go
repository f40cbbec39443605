// Package v1 provides the HTTP API.
package v1

import (
	"github.com/gin-gonic/gin"

	"storecatalog/internal/domain/catalog"
	"storecatalog/internal/domain/catalogs/supplier"
	"storecatalog/internal/infrastructure/http/v1/handlers"
	"storecatalog/internal/infrastructure/http/v1/middleware"
	"storecatalog/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Catalog serves stores, products and the assortment queries
	Catalog *catalog.Service

	// Suppliers serves the supplier catalog
	Suppliers *supplier.Service

	// Logger for request logging
	Logger *logger.Logger

	// Storage is probed by /health/ready
	Storage handlers.Pinger

	// Driver names the storage backend in readiness output
	Driver string

	// Metrics enables /metrics and request instrumentation when set
	Metrics *middleware.Metrics

	// Debug keeps gin in debug mode
	Debug bool
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Default()
	}

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	if cfg.Metrics != nil {
		router.Use(cfg.Metrics.Middleware())
		router.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}
	router.Use(middleware.ErrorHandler())

	healthHandler := handlers.NewHealthHandler(cfg.Storage, cfg.Driver)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	baseHandler := handlers.NewBaseHandler()

	storeHandler := handlers.NewStoreHandler(baseHandler, cfg.Catalog)
	storeHandler.RegisterRoutes(router.Group("/stores"))

	if cfg.Suppliers != nil {
		supplierHandler := handlers.NewSupplierHandler(baseHandler, cfg.Suppliers)
		RegisterCatalogRoutes(router.Group("/suppliers"), supplierHandler)
	}

	return router
}
