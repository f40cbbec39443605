package catalog_test

import (
	"storecatalog/internal/core/id"
	"storecatalog/internal/domain/catalogs/product"
)

func ids(products []*product.Product) []id.ID {
	out := make([]id.ID, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}
