package handlers

import (
	"github.com/gin-gonic/gin"

	"storecatalog/internal/core/entity"
	"storecatalog/internal/domain"
	"storecatalog/internal/infrastructure/http/v1/dto"
)

// CatalogHandler provides generic CRUD handlers for catalog entities.
type CatalogHandler[T entity.Validatable, RequestDTO any] struct {
	*BaseHandler
	service *domain.CatalogService[T]

	mapCreateDTO func(req RequestDTO) T
	mapUpdateDTO func(req RequestDTO, existing T) T
	mapToDTO     func(entity T) any
}

// CatalogHandlerConfig configures the catalog handler.
type CatalogHandlerConfig[T entity.Validatable, RequestDTO any] struct {
	Service      *domain.CatalogService[T]
	MapCreateDTO func(req RequestDTO) T
	MapUpdateDTO func(req RequestDTO, existing T) T
	MapToDTO     func(entity T) any
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler[T entity.Validatable, RequestDTO any](
	base *BaseHandler,
	cfg CatalogHandlerConfig[T, RequestDTO],
) *CatalogHandler[T, RequestDTO] {
	return &CatalogHandler[T, RequestDTO]{
		BaseHandler:  base,
		service:      cfg.Service,
		mapCreateDTO: cfg.MapCreateDTO,
		mapUpdateDTO: cfg.MapUpdateDTO,
		mapToDTO:     cfg.MapToDTO,
	}
}

// List handles GET /{entity}.
func (h *CatalogHandler[T, RequestDTO]) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.MapList(items, h.mapToDTO))
}

// Get handles GET /{entity}/:id.
func (h *CatalogHandler[T, RequestDTO]) Get(c *gin.Context) {
	entityID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	item, err := h.service.GetByID(c.Request.Context(), entityID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, h.mapToDTO(item))
}

// Create handles POST /{entity}. Responds 200 with the created entity.
func (h *CatalogHandler[T, RequestDTO]) Create(c *gin.Context) {
	var req RequestDTO
	if !h.BindJSON(c, &req) {
		return
	}

	item := h.mapCreateDTO(req)
	if err := h.service.Create(c.Request.Context(), item); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, h.mapToDTO(item))
}

// Update handles PUT /{entity}/:id.
func (h *CatalogHandler[T, RequestDTO]) Update(c *gin.Context) {
	ctx := c.Request.Context()

	entityID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req RequestDTO
	if !h.BindJSON(c, &req) {
		return
	}

	existing, err := h.service.GetByID(ctx, entityID)
	if err != nil {
		h.Error(c, err)
		return
	}

	updated := h.mapUpdateDTO(req, existing)
	if err := h.service.Update(ctx, updated); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, h.mapToDTO(updated))
}

// Delete handles DELETE /{entity}/:id.
func (h *CatalogHandler[T, RequestDTO]) Delete(c *gin.Context) {
	entityID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), entityID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
