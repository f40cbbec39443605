package catalog_repo

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storecatalog/internal/core/id"
	"storecatalog/internal/core/types"
	"storecatalog/internal/domain/assortment"
	"storecatalog/internal/domain/catalogs/product"
	"storecatalog/internal/domain/catalogs/store"
)

func TestStoreRepo_InsertSQL(t *testing.T) {
	repo := NewStoreRepo(nil)
	s := store.NewStore("Магнит", "ул. Ленина", "m@example.com")
	s.UpdatedAt = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	q, err := repo.insertQuery(s)
	require.NoError(t, err)
	sql, args, err := q.ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO cat_stores (email,id,location,name,updated_at) VALUES ($1,$2,$3,$4,$5)",
		sql)
	assert.Equal(t, []any{"m@example.com", s.ID, "ул. Ленина", "Магнит", s.UpdatedAt}, args)
}

func TestStoreRepo_UpdateSQL_NeverWritesID(t *testing.T) {
	repo := NewStoreRepo(nil)
	s := store.NewStore("Магнит", "ул. Ленина", "m@example.com")

	q, err := repo.updateQuery(s)
	require.NoError(t, err)
	sql, args, err := q.ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE cat_stores SET email = $1, location = $2, name = $3, updated_at = $4 WHERE id = $5",
		sql)
	require.Len(t, args, 5)
	assert.Equal(t, s.ID.String(), fmt.Sprint(args[4]))
}

func TestStoreRepo_SelectSQL(t *testing.T) {
	repo := NewStoreRepo(nil)
	storeID := id.New()

	sql, args, err := repo.baseSelect().Where("id = ?", storeID).ToSql()
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT id, name, updated_at, location, email FROM cat_stores WHERE id = $1 ORDER BY id",
		sql)
	assert.Equal(t, []any{storeID}, args)
}

func TestStoreRepo_LocationSQL(t *testing.T) {
	repo := NewStoreRepo(nil)

	sql, args, err := repo.locationQuery("50% off_").ToSql()
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT id, name, updated_at, location, email FROM cat_stores WHERE strpos(location, $1) > 0 ORDER BY id",
		sql)
	assert.Equal(t, []any{"50% off_"}, args)
}

func TestProductRepo_InsertSQL(t *testing.T) {
	repo := NewProductRepo(nil)
	p := product.NewProduct("Молоко", types.MustMoney("89.90"), "")

	q, err := repo.insertQuery(p)
	require.NoError(t, err)
	sql, args, err := q.ToSql()
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO cat_products (category,id,name,price) VALUES ($1,$2,$3,$4)", sql)
	assert.Equal(t, "some", args[0])
}

func TestSupplierRepo_Columns(t *testing.T) {
	repo := NewSupplierRepo(nil)
	assert.Equal(t,
		[]string{"id", "name", "updated_at", "email", "phone", "address", "website"},
		repo.selectCols)
}

func TestAssortmentRepo_SQL(t *testing.T) {
	repo := NewAssortmentRepo(nil)
	item := assortment.NewItem(id.New(), id.New())

	sql, args, err := repo.insertQuery(item).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO store_products (id,store_id,product_id) VALUES ($1,$2,$3)", sql)
	require.Len(t, args, 3)
	assert.Equal(t,
		[]string{item.ID.String(), item.StoreID.String(), item.ProductID.String()},
		[]string{fmt.Sprint(args[0]), fmt.Sprint(args[1]), fmt.Sprint(args[2])})

	sql, args, err = repo.listQuery("store_id", item.StoreID).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, store_id, product_id FROM store_products WHERE store_id = $1 ORDER BY id", sql)
	assert.Equal(t, []any{item.StoreID}, args)
}

func TestBaseCatalogRepo_Delete_SQL(t *testing.T) {
	repo := NewStoreRepo(nil)
	entityID := id.New()

	sql, args, err := repo.Builder().
		Delete(repo.tableName).
		Where("id = ?", entityID).
		ToSql()
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM cat_stores WHERE id = $1", sql)
	assert.Equal(t, []any{entityID}, args)
}
