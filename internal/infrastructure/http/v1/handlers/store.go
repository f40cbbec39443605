package handlers

import (
	"github.com/gin-gonic/gin"

	"storecatalog/internal/core/apperror"
	"storecatalog/internal/domain/catalog"
	"storecatalog/internal/infrastructure/http/v1/dto"
)

// StoreHandler serves the /stores API.
type StoreHandler struct {
	*BaseHandler
	service *catalog.Service
}

// NewStoreHandler creates the store handler.
func NewStoreHandler(base *BaseHandler, service *catalog.Service) *StoreHandler {
	return &StoreHandler{BaseHandler: base, service: service}
}

// RegisterRoutes registers store routes on group.
// Static segments take priority over :id in the gin tree.
func (h *StoreHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("", h.Create)
	group.GET("", h.List)
	group.GET("/sorted", h.ListSorted)
	group.GET("/location/:location", h.ListByLocation)
	group.GET("/product/by-location", h.ProductsByLocation)
	group.GET("/products/unique", h.UniqueProducts)
	group.POST("/product/:storeId", h.CreateProduct)
	group.GET("/:id", h.Get)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
	group.GET("/:id/copy", h.Copy)
}

// Create handles POST /stores.
func (h *StoreHandler) Create(c *gin.Context) {
	var req dto.StoreRequest
	if !h.BindJSON(c, &req) {
		return
	}

	st, err := h.service.CreateStore(c.Request.Context(), req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromStore(st))
}

// Get handles GET /stores/:id.
func (h *StoreHandler) Get(c *gin.Context) {
	storeID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	st, err := h.service.FindStoreByID(c.Request.Context(), storeID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromStore(st))
}

// Update handles PUT /stores/:id.
func (h *StoreHandler) Update(c *gin.Context) {
	storeID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.StoreRequest
	if !h.BindJSON(c, &req) {
		return
	}

	st, err := h.service.UpdateStore(c.Request.Context(), storeID, req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromStore(st))
}

// Delete handles DELETE /stores/:id.
func (h *StoreHandler) Delete(c *gin.Context) {
	storeID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteStore(c.Request.Context(), storeID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// List handles GET /stores.
func (h *StoreHandler) List(c *gin.Context) {
	stores, err := h.service.ListAllStores(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.MapList(stores, dto.FromStoreListItem))
}

// ListSorted handles GET /stores/sorted.
func (h *StoreHandler) ListSorted(c *gin.Context) {
	stores, err := h.service.ListAllStoresSortedByName(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.MapList(stores, dto.FromStoreListItem))
}

// ListByLocation handles GET /stores/location/:location.
func (h *StoreHandler) ListByLocation(c *gin.Context) {
	stores, err := h.service.ListStoresByLocation(c.Request.Context(), c.Param("location"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.MapList(stores, dto.FromStoreListItem))
}

// Copy handles GET /stores/:id/copy.
func (h *StoreHandler) Copy(c *gin.Context) {
	storeID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	st, err := h.service.CopyStore(c.Request.Context(), storeID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromStore(st))
}

// CreateProduct handles POST /stores/product/:storeId.
func (h *StoreHandler) CreateProduct(c *gin.Context) {
	storeID, ok := h.ParseID(c, "storeId")
	if !ok {
		return
	}

	var req dto.ProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	p, err := h.service.CreateProduct(c.Request.Context(), storeID, req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromProduct(p))
}

// ProductsByLocation handles GET /stores/product/by-location?location=.
// An absent parameter is a client error; an empty one matches every store.
func (h *StoreHandler) ProductsByLocation(c *gin.Context) {
	location, ok := c.GetQuery("location")
	if !ok {
		h.Error(c, apperror.NewRequiredField("location"))
		return
	}

	products, err := h.service.FindProductsByLocation(c.Request.Context(), &location)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.MapList(products, dto.FromProduct))
}

// UniqueProducts handles GET /stores/products/unique.
func (h *StoreHandler) UniqueProducts(c *gin.Context) {
	products, err := h.service.FindUniqueProducts(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.MapList(products, dto.FromProduct))
}
