// Package assortment links stores to the products they sell.
//
// An Item is one "product P is sold at store S" record. Duplicate
// (store, product) pairs are allowed; readers treat products as a set
// and count stores distinctly.
package assortment

import (
	"storecatalog/internal/core/id"
)

// Item is a single store-to-product association.
type Item struct {
	ID        id.ID `db:"id" json:"id"`
	StoreID   id.ID `db:"store_id" json:"storeId"`
	ProductID id.ID `db:"product_id" json:"productId"`
}

// NewItem creates an association with generated ID.
// Neither side is checked for existence.
func NewItem(storeID, productID id.ID) *Item {
	return &Item{
		ID:        id.New(),
		StoreID:   storeID,
		ProductID: productID,
	}
}
