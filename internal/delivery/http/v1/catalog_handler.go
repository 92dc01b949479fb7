package v1

import (
	"net/http"

	"go-quote-backend/internal/delivery/http/response"
	"go-quote-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
}

// NewCatalogHandler registers the public catalog route
func NewCatalogHandler(public *gin.RouterGroup, catalogUC usecase.CatalogUsecase) {
	handler := &CatalogHandler{
		catalogUC: catalogUC,
	}

	public.GET("/services", handler.ListServices)
}

// ListServices godoc
// @Summary      List Service Catalog
// @Description  The ordered categories and services offered on the quote form. Public endpoint.
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	categories := h.catalogUC.Categories(c.Request.Context())
	response.Success(c, http.StatusOK, "Service catalog retrieved", categories)
}
