package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lojinha/catalog-api/internal/core/ports"
)

// CategoryHandler exposes the read-only category side of a product.
type CategoryHandler struct {
	service ports.CategoryService
}

func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// Index handles GET /products/:id/categories.
//
// @Summary      List a product's categories
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Router       /products/{id}/categories [get]
func (h *CategoryHandler) Index(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	categories, err := h.service.ListByProduct(c.Request().Context(), productID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataEnvelope{Data: toCategoryResponses(categories)})
}
