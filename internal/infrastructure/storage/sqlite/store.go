// Package sqlite provides a file-backed storage driver.
//
// Records are served from the memory driver. After every successful
// outermost transaction the full state is written to a single SQLite
// table as one JSON blob per bucket, and it is loaded back on open.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"storecatalog/internal/core/tx"
	"storecatalog/internal/infrastructure/storage/memory"
	"storecatalog/pkg/logger"
)

const (
	bucketStores     = "stores"
	bucketProducts   = "products"
	bucketSuppliers  = "suppliers"
	bucketAssortment = "store_products"
)

var buckets = []string{bucketStores, bucketProducts, bucketSuppliers, bucketAssortment}

// Store is a snapshotting SQLite-backed database.
type Store struct {
	*memory.DB
	db   *sql.DB
	mu   sync.Mutex
	path string

	// txMu serializes outermost transactions so a rollback restores only their own writes
	txMu sync.Mutex
}

// Open opens (or creates) the database file at path and loads its state.
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		path = "storecatalog.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One writer at a time; snapshots are serialized anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create state table: %w", err)
	}

	s := &Store{DB: memory.New(), db: db, path: path}
	if err := s.load(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) load(ctx context.Context) error {
	rows, err := s.db.QueryContext(ctx, `SELECT bucket, payload FROM state`)
	if err != nil {
		return fmt.Errorf("select state: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var state memory.State
	found := false
	for rows.Next() {
		var (
			bucket  string
			payload []byte
		)
		if err := rows.Scan(&bucket, &payload); err != nil {
			return fmt.Errorf("scan: %w", err)
		}

		var target any
		switch bucket {
		case bucketStores:
			target = &state.Stores
		case bucketProducts:
			target = &state.Products
		case bucketSuppliers:
			target = &state.Suppliers
		case bucketAssortment:
			target = &state.Assortment
		default:
			continue
		}
		if err := json.Unmarshal(payload, target); err != nil {
			return fmt.Errorf("decode %s: %w", bucket, err)
		}
		found = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("read state: %w", err)
	}

	if found {
		s.Load(state)
	}
	return nil
}

func (s *Store) persist(ctx context.Context) (retErr error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.State()
	payloads := map[string]any{
		bucketStores:     state.Stores,
		bucketProducts:   state.Products,
		bucketSuppliers:  state.Suppliers,
		bucketAssortment: state.Assortment,
	}

	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = sqlTx.Rollback()
		}
	}()

	for _, bucket := range buckets {
		data, err := json.Marshal(payloads[bucket])
		if err != nil {
			return fmt.Errorf("encode %s: %w", bucket, err)
		}
		if _, err := sqlTx.ExecContext(ctx,
			`INSERT INTO state(bucket,payload) VALUES(?,?) ON CONFLICT(bucket) DO UPDATE SET payload=excluded.payload`,
			bucket, data,
		); err != nil {
			return fmt.Errorf("upsert %s: %w", bucket, err)
		}
	}

	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}

type snapshotKey struct{}

// TxManager returns a manager that snapshots state after each successful
// outermost transaction. Nested calls are passed through. When the snapshot
// fails the in-memory state is restored to what it was before fn ran.
func (s *Store) TxManager() tx.Manager {
	return tx.ManagerFunc(func(ctx context.Context, fn func(ctx context.Context) error) error {
		if ctx.Value(snapshotKey{}) != nil {
			return fn(ctx)
		}

		s.txMu.Lock()
		defer s.txMu.Unlock()

		prev := s.State()
		if err := fn(context.WithValue(ctx, snapshotKey{}, struct{}{})); err != nil {
			return err
		}

		if err := s.persist(ctx); err != nil {
			// Undo the in-memory write so it is neither visible nor saved later.
			s.Load(prev)
			logger.Error(ctx, "sqlite snapshot failed", "path", s.path, "error", err)
			return fmt.Errorf("persist snapshot: %w", err)
		}
		return nil
	})
}

// Ping checks that the database file is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database file.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the configured database path.
func (s *Store) Path() string { return s.path }
