package catalog

import (
	"net/http"

	sharedContext "github.com/changhyeonkim/mediatheque-api/internal/shared/context"
	"github.com/changhyeonkim/mediatheque-api/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogService *CatalogService
}

func NewCatalogHandler(catalogService *CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) AddMedia(c *gin.Context) {
	var request CreateMediaRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.catalogService.AddMedia(c.Request.Context(), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *CatalogHandler) ListMedia(c *gin.Context) {
	response, err := h.catalogService.ListMedia(c.Request.Context())
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *CatalogHandler) AvailableMedia(c *gin.Context) {
	var query AvailableMediaQuery
	if !handler.BindQuery(c, &query) {
		return
	}

	response, err := h.catalogService.AvailableItemsFor(c.Request.Context(), query.Type)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *CatalogHandler) GetMedia(c *gin.Context) {
	id, ok := sharedContext.RequireUintParam(c, "id")
	if !ok {
		return
	}

	response, err := h.catalogService.GetMedia(c.Request.Context(), c.Param("type"), id)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *CatalogHandler) DeleteMedia(c *gin.Context) {
	id, ok := sharedContext.RequireUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.catalogService.DeleteMedia(c.Request.Context(), c.Param("type"), id); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
