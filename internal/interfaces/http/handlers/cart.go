// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/shoplight-backend/internal/config"
	"github.com/your-org/shoplight-backend/internal/domain/cart"
	"github.com/your-org/shoplight-backend/internal/domain/catalog"
	"github.com/your-org/shoplight-backend/internal/infrastructure/storage"
	"github.com/your-org/shoplight-backend/internal/pkg/apperrors"
	"github.com/your-org/shoplight-backend/internal/pkg/notify"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	store          storage.Store
	catalogService *catalog.Service
	notifier       notify.Notifier
	config         *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(store storage.Store, catalogService *catalog.Service, notifier notify.Notifier, cfg *config.Config) *CartHandler {
	return &CartHandler{
		store:          store,
		catalogService: catalogService,
		notifier:       notifier,
		config:         cfg,
	}
}

// AddItemRequest is the body for POST /cart/items.
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// UpdateItemRequest is the body for PUT /cart/items/:id.
type UpdateItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := getOrCreateSessionID(c, h.config)
	svc, _ := h.service()

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    svc.Get(c.Request.Context(), sessionID),
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	sessionID := getOrCreateSessionID(c, h.config)

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	svc, recorder := h.service()
	if err := svc.Add(c.Request.Context(), sessionID, req.ProductID, req.Quantity); err != nil {
		c.JSON(apperrors.HTTPStatus(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Item added to cart successfully",
		"data":          svc.Get(c.Request.Context(), sessionID),
		"notifications": recorder.Events(),
	})
}

// UpdateCartItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	sessionID := getOrCreateSessionID(c, h.config)

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	svc, recorder := h.service()
	if err := svc.UpdateQuantity(c.Request.Context(), sessionID, c.Param("id"), req.Quantity); err != nil {
		c.JSON(apperrors.HTTPStatus(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Cart item updated successfully",
		"data":          svc.Get(c.Request.Context(), sessionID),
		"notifications": recorder.Events(),
	})
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	sessionID := getOrCreateSessionID(c, h.config)

	svc, recorder := h.service()
	if err := svc.Remove(c.Request.Context(), sessionID, c.Param("id")); err != nil {
		c.JSON(apperrors.HTTPStatus(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Item removed from cart successfully",
		"data":          svc.Get(c.Request.Context(), sessionID),
		"notifications": recorder.Events(),
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID := getOrCreateSessionID(c, h.config)

	svc, _ := h.service()
	if err := svc.Clear(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
	})
}

// GetCartCount handles GET /cart/count
func (h *CartHandler) GetCartCount(c *gin.Context) {
	sessionID := getOrCreateSessionID(c, h.config)
	svc, _ := h.service()

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data": gin.H{
			"count": svc.ItemCount(c.Request.Context(), sessionID),
		},
	})
}

// service builds a cart service whose events go to the shared notifier and
// to a per-request recorder, so mutation responses can echo what happened.
func (h *CartHandler) service() (*cart.Service, *notify.Recorder) {
	recorder := notify.NewRecorder()
	svc := cart.NewService(h.store, h.catalogService, notify.Multi{h.notifier, recorder}, h.config.Store.CartKeyPrefix)
	return svc, recorder
}
