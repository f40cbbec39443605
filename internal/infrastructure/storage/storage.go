// Package storage selects and opens a storage driver.
package storage

import (
	"context"
	"fmt"
	"strings"

	"storecatalog/internal/core/tx"
	"storecatalog/internal/domain/assortment"
	"storecatalog/internal/domain/catalogs/product"
	"storecatalog/internal/domain/catalogs/store"
	"storecatalog/internal/domain/catalogs/supplier"
	"storecatalog/internal/infrastructure/storage/memory"
	"storecatalog/internal/infrastructure/storage/postgres"
	"storecatalog/internal/infrastructure/storage/postgres/catalog_repo"
	"storecatalog/internal/infrastructure/storage/sqlite"
	"storecatalog/pkg/logger"
)

// Supported drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config selects the driver and its connection settings.
type Config struct {
	Driver      string
	DatabaseURL string // postgres only
	MaxConns    int32  // postgres only, 0 keeps the default
	SQLitePath  string // sqlite only
}

// Backend bundles the repositories of one driver.
type Backend struct {
	Driver     string
	Stores     store.Repository
	Products   product.Repository
	Suppliers  supplier.Repository
	Assortment assortment.Repository
	TxManager  tx.Manager

	ping  func(ctx context.Context) error
	close func() error
}

// Ping checks the backend is reachable.
func (b *Backend) Ping(ctx context.Context) error {
	return b.ping(ctx)
}

// Close releases the backend resources.
func (b *Backend) Close() error {
	return b.close()
}

// Open opens the configured driver. An empty driver selects memory.
func Open(ctx context.Context, cfg Config) (*Backend, error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.Driver))
	if driver == "" {
		driver = DriverMemory
	}

	switch driver {
	case DriverMemory:
		db := memory.New()
		return fromMemory(driver, db, db.Ping, db.Close), nil

	case DriverSQLite:
		st, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		b := fromMemory(driver, st.DB, st.Ping, st.Close)
		b.TxManager = st.TxManager()
		logger.FromContext(ctx).WithComponent("storage").Infow("sqlite storage opened", "path", st.Path())
		return b, nil

	case DriverPostgres:
		return openPostgres(ctx, cfg)

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func fromMemory(driver string, db *memory.DB, ping func(context.Context) error, closeFn func() error) *Backend {
	return &Backend{
		Driver:     driver,
		Stores:     db.Stores(),
		Products:   db.Products(),
		Suppliers:  db.Suppliers(),
		Assortment: db.Assortment(),
		TxManager:  db.TxManager(),
		ping:       ping,
		close:      closeFn,
	}
}

func openPostgres(ctx context.Context, cfg Config) (*Backend, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("postgres driver requires a database url")
	}

	poolCfg := postgres.DefaultPoolConfig(cfg.DatabaseURL)
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	postgres.LogPoolStats(ctx, pool)

	txm := postgres.NewTxManager(pool)
	return &Backend{
		Driver:     DriverPostgres,
		Stores:     catalog_repo.NewStoreRepo(txm),
		Products:   catalog_repo.NewProductRepo(txm),
		Suppliers:  catalog_repo.NewSupplierRepo(txm),
		Assortment: catalog_repo.NewAssortmentRepo(txm),
		TxManager:  txm,
		ping:       pool.Ping,
		close: func() error {
			pool.Close()
			return nil
		},
	}, nil
}
