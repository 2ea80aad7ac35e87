package handlers

import (
	"errors"
	"net/http"

	"shoplite/internal/common"
	"shoplite/internal/models"
	"shoplite/internal/services"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

// ProductHandlers handles HTTP requests for the product catalog
type ProductHandlers struct {
	catalogService services.CatalogService
}

func NewProductHandlers(catalogService services.CatalogService) *ProductHandlers {
	return &ProductHandlers{catalogService: catalogService}
}

// ListProducts returns the full catalog. An empty catalog is an empty
// array, never null.
func (h *ProductHandlers) ListProducts(c echo.Context) error {
	products, err := h.catalogService.ListProducts(c.Request().Context())
	if err != nil {
		log.Errorf("product listing failed: %v", err)
		return errorJSON(c, http.StatusInternalServerError, "Server error")
	}
	if products == nil {
		products = []*models.Product{}
	}
	return c.JSON(http.StatusOK, map[string]any{"data": products})
}

// GetProduct returns a single product by id.
func (h *ProductHandlers) GetProduct(c echo.Context) error {
	id, err := common.ValidateUUID(c.Param("id"), "product id")
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid product id")
	}

	product, err := h.catalogService.GetProduct(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return errorJSON(c, http.StatusNotFound, "Product not found")
		}
		log.Errorf("product lookup failed: %v", err)
		return errorJSON(c, http.StatusInternalServerError, "Server error")
	}
	return c.JSON(http.StatusOK, map[string]any{"data": product})
}
