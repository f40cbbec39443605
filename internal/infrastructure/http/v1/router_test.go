package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storecatalog/internal/core/apperror"
	"storecatalog/internal/domain/assortment"
	"storecatalog/internal/domain/catalog"
	"storecatalog/internal/domain/catalogs/supplier"
	"storecatalog/internal/infrastructure/http/v1/dto"
	"storecatalog/internal/infrastructure/http/v1/middleware"
	"storecatalog/internal/infrastructure/storage/memory"
	"storecatalog/pkg/logger"
)

type testAPI struct {
	t      *testing.T
	db     *memory.DB
	router *gin.Engine
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	db := memory.New()
	svc := catalog.NewService(catalog.Config{
		Stores:     db.Stores(),
		Products:   db.Products(),
		Assortment: db.Assortment(),
		TxManager:  db.TxManager(),
	})

	router := NewRouter(RouterConfig{
		Catalog:   svc,
		Suppliers: supplier.NewService(db.Suppliers(), db.TxManager()),
		Logger:    logger.NewNop(),
		Storage:   db,
		Driver:    "memory",
		Metrics:   middleware.NewMetrics("test"),
	})
	gin.SetMode(gin.TestMode)
	return &testAPI{t: t, db: db, router: router}
}

func (a *testAPI) do(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func (a *testAPI) createStore(name, location, email string) dto.StoreResponse {
	a.t.Helper()
	w := a.do(http.MethodPost, "/stores", dto.StoreRequest{Name: name, Location: location, Email: email})
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())
	return decode[dto.StoreResponse](a.t, w)
}

func (a *testAPI) createProduct(storeID string, body map[string]any) dto.ProductResponse {
	a.t.Helper()
	w := a.do(http.MethodPost, "/stores/product/"+storeID, body)
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())
	return decode[dto.ProductResponse](a.t, w)
}

func TestStores_CRUD(t *testing.T) {
	api := newTestAPI(t)

	created := api.createStore("Магнит", "ул. Ленина, 1", "m@x.ru")
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "m@x.ru", created.Email)

	w := api.do(http.MethodGet, "/stores/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created, decode[dto.StoreResponse](t, w))

	w = api.do(http.MethodPut, "/stores/"+created.ID, dto.StoreRequest{Name: "Пятёрочка", Location: "ул. Вязов", Email: "p@x.ru"})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[dto.StoreResponse](t, w)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Пятёрочка", updated.Name)

	w = api.do(http.MethodDelete, "/stores/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = api.do(http.MethodGet, "/stores/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apperror.CodeNotFound, decode[dto.ErrorResponse](t, w).Code)
}

func TestStores_CreateValidation(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/stores", dto.StoreRequest{Name: "A", Location: "  ", Email: "a@x.ru"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode[dto.ErrorResponse](t, w)
	assert.Equal(t, apperror.CodeValidation, body.Code)
	assert.Equal(t, "location", body.Details["field"])

	w = api.do(http.MethodGet, "/stores", nil)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestStores_BadID(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/stores/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperror.CodeInvalidInput, decode[dto.ErrorResponse](t, w).Code)

	w = api.do(http.MethodPost, "/stores/product/not-a-uuid", map[string]any{"name": "x", "price": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStores_MalformedBody(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/stores", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperror.CodeInvalidInput, decode[dto.ErrorResponse](t, w).Code)
}

func TestStores_ListOmitsEmail(t *testing.T) {
	api := newTestAPI(t)
	api.createStore("B", "ул. Ленина", "b@x.ru")

	w := api.do(http.MethodGet, "/stores", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "email")
}

func TestStores_SortedAndByLocation(t *testing.T) {
	api := newTestAPI(t)
	api.createStore("b", "ул. Ленина", "b@x.ru")
	api.createStore("A", "ул. Вязов", "a@x.ru")
	api.createStore("a", "ул. Ленина", "c@x.ru")

	w := api.do(http.MethodGet, "/stores/sorted", nil)
	require.Equal(t, http.StatusOK, w.Code)
	sorted := decode[[]dto.StoreListItem](t, w)
	require.Len(t, sorted, 3)
	assert.Equal(t, []string{"A", "a", "b"}, []string{sorted[0].Name, sorted[1].Name, sorted[2].Name})

	w = api.do(http.MethodGet, "/stores/location/"+url.PathEscape("Ленина"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]dto.StoreListItem](t, w), 2)
}

func TestStores_Copy(t *testing.T) {
	api := newTestAPI(t)
	src := api.createStore("A", "ул. Ленина", "a@x.ru")

	w := api.do(http.MethodGet, "/stores/"+src.ID+"/copy", nil)
	require.Equal(t, http.StatusOK, w.Code)
	clone := decode[dto.StoreResponse](t, w)
	assert.NotEqual(t, src.ID, clone.ID)
	assert.Equal(t, src.Name, clone.Name)
	assert.Equal(t, src.Location, clone.Location)
	assert.Equal(t, src.Email, clone.Email)
}

func TestProducts_CreateDefaultsCategory(t *testing.T) {
	api := newTestAPI(t)
	st := api.createStore("A", "ул. Ленина", "a@x.ru")

	p := api.createProduct(st.ID, map[string]any{"name": "Молоко", "price": "89.90"})
	assert.Equal(t, "some", p.Category)
	assert.Equal(t, "89.9", p.Price.String())
}

func TestProducts_MissingPrice(t *testing.T) {
	api := newTestAPI(t)
	st := api.createStore("A", "ул. Ленина", "a@x.ru")

	w := api.do(http.MethodPost, "/stores/product/"+st.ID, map[string]any{"name": "Молоко"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "price", decode[dto.ErrorResponse](t, w).Details["field"])
}

func TestProducts_ByLocationAndUnique(t *testing.T) {
	api := newTestAPI(t)
	a := api.createStore("A", "ул. Ленина, 1", "a@x.ru")
	b := api.createStore("B", "ул. Ленина, 2", "b@x.ru")
	c := api.createStore("C", "ул. Вязов", "c@x.ru")

	p1 := api.createProduct(a.ID, map[string]any{"name": "p1", "price": 10})
	p2 := api.createProduct(a.ID, map[string]any{"name": "p2", "price": 20})
	p3 := api.createProduct(c.ID, map[string]any{"name": "p3", "price": 30})
	p4 := api.createProduct(c.ID, map[string]any{"name": "p4", "price": 40})

	// p3 is also sold by B.
	require.NoError(t, api.db.Assortment().Create(context.Background(),
		assortment.NewItem(mustID(t, b.ID), mustID(t, p3.ID))))

	w := api.do(http.MethodGet, "/stores/product/by-location?location="+url.QueryEscape("Ленина"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	byLoc := decode[[]dto.ProductResponse](t, w)
	assert.Equal(t, []string{p1.ID, p2.ID, p3.ID}, productIDs(byLoc))

	w = api.do(http.MethodGet, "/stores/products/unique", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.ElementsMatch(t, []string{p1.ID, p2.ID, p4.ID}, productIDs(decode[[]dto.ProductResponse](t, w)))
}

func TestProducts_ByLocationMissingParam(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/stores/product/by-location", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodGet, "/stores/product/by-location?location=", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestSuppliers_DuplicateEmail(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/suppliers", dto.SupplierRequest{Name: "Молокозавод", Email: "s@x.ru"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	first := decode[dto.SupplierResponse](t, w)

	w = api.do(http.MethodPost, "/suppliers", dto.SupplierRequest{Name: "Другой", Email: "s@x.ru"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = api.do(http.MethodPut, "/suppliers/"+first.ID, dto.SupplierRequest{Name: "Молокозавод №1", Email: "s@x.ru"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Молокозавод №1", decode[dto.SupplierResponse](t, w).Name)

	w = api.do(http.MethodDelete, "/suppliers/"+first.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = api.do(http.MethodDelete, "/suppliers/"+first.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/health/live", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodGet, "/health/ready", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decode[dto.HealthResponse](t, w).Checks["memory"])
}

func TestMetricsEndpoint(t *testing.T) {
	api := newTestAPI(t)
	api.do(http.MethodGet, "/stores", nil)

	w := api.do(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `route="/stores"`)
}
