// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/shoplight-backend/internal/config"
	"github.com/your-org/shoplight-backend/internal/domain/catalog"
	"github.com/your-org/shoplight-backend/internal/domain/favorites"
	"github.com/your-org/shoplight-backend/internal/pkg/apperrors"
)

// CatalogHandler handles product catalog endpoints
type CatalogHandler struct {
	catalogService   *catalog.Service
	favoritesService *favorites.Service
	config           *config.Config
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *catalog.Service, favoritesService *favorites.Service, cfg *config.Config) *CatalogHandler {
	return &CatalogHandler{
		catalogService:   catalogService,
		favoritesService: favoritesService,
		config:           cfg,
	}
}

// ListProducts handles GET /products.
// Query, category and sort are combined; the "favorites" category resolves
// against the caller's session.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	sessionID := getOrCreateSessionID(c, h.config)

	var req catalog.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	products := h.catalogService.List(&req, h.favoritesService.Contains(c.Request.Context(), sessionID))

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data": gin.H{
			"products": products,
			"count":    len(products),
			"filter":   req,
		},
	})
}

// GetProduct handles GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.catalogService.Get(c.Param("id"))
	if err != nil {
		c.JSON(apperrors.HTTPStatus(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product,
	})
}

// GetCategories handles GET /products/categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    h.catalogService.Categories(),
	})
}
