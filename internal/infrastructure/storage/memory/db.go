// Package memory provides an in-process storage driver.
// Data lives for the lifetime of the process unless exported with State.
package memory

import (
	"context"

	"storecatalog/internal/core/id"
	"storecatalog/internal/core/tx"
	"storecatalog/internal/domain/assortment"
	"storecatalog/internal/domain/catalogs/product"
	"storecatalog/internal/domain/catalogs/store"
	"storecatalog/internal/domain/catalogs/supplier"
)

// State is a full copy of the database content, each slice in insertion order.
type State struct {
	Stores     []store.Store       `json:"stores"`
	Products   []product.Product   `json:"products"`
	Suppliers  []supplier.Supplier `json:"suppliers"`
	Assortment []assortment.Item   `json:"assortment"`
}

// DB holds every table of the catalog.
type DB struct {
	stores     *table[store.Store]
	products   *table[product.Product]
	suppliers  *table[supplier.Supplier]
	assortment *table[assortment.Item]
}

// New creates an empty database.
func New() *DB {
	return &DB{
		stores:     newTable[store.Store]("store"),
		products:   newTable[product.Product]("product"),
		suppliers:  newTable[supplier.Supplier]("supplier"),
		assortment: newTable[assortment.Item]("assortment item"),
	}
}

// Stores returns the store repository.
func (db *DB) Stores() *StoreRepo { return &StoreRepo{t: db.stores} }

// Products returns the product repository.
func (db *DB) Products() *ProductRepo { return &ProductRepo{t: db.products} }

// Suppliers returns the supplier repository.
func (db *DB) Suppliers() *SupplierRepo { return &SupplierRepo{t: db.suppliers} }

// Assortment returns the association repository.
func (db *DB) Assortment() *AssortmentRepo { return &AssortmentRepo{t: db.assortment} }

// TxManager returns the transaction manager of the driver.
// Every repository call is atomic on its own, so no transaction is opened.
func (db *DB) TxManager() tx.Manager { return tx.Direct }

// Ping always succeeds.
func (db *DB) Ping(context.Context) error { return nil }

// Close is a no-op.
func (db *DB) Close() error { return nil }

// State exports a copy of the database content.
func (db *DB) State() State {
	return State{
		Stores:     db.stores.scan(nil),
		Products:   db.products.scan(nil),
		Suppliers:  db.suppliers.scan(nil),
		Assortment: db.assortment.scan(nil),
	}
}

// Load replaces the database content with s.
func (db *DB) Load(s State) {
	db.stores.load(s.Stores, func(r store.Store) id.ID { return r.ID })
	db.products.load(s.Products, func(r product.Product) id.ID { return r.ID })
	db.suppliers.load(s.Suppliers, func(r supplier.Supplier) id.ID { return r.ID })
	db.assortment.load(s.Assortment, func(r assortment.Item) id.ID { return r.ID })
}
