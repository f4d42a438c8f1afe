// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/shoplight-backend/internal/config"
	"github.com/your-org/shoplight-backend/internal/domain/cart"
	"github.com/your-org/shoplight-backend/internal/domain/catalog"
	"github.com/your-org/shoplight-backend/internal/domain/checkout"
	"github.com/your-org/shoplight-backend/internal/infrastructure/storage"
	"github.com/your-org/shoplight-backend/internal/pkg/apperrors"
	"github.com/your-org/shoplight-backend/internal/pkg/notify"
	"github.com/your-org/shoplight-backend/internal/pkg/pdf"
)

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct {
	store          storage.Store
	catalogService *catalog.Service
	notifier       notify.Notifier
	pdfService     *pdf.Service
	config         *config.Config
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(store storage.Store, catalogService *catalog.Service, notifier notify.Notifier, cfg *config.Config) *CheckoutHandler {
	return &CheckoutHandler{
		store:          store,
		catalogService: catalogService,
		notifier:       notifier,
		pdfService:     pdf.NewService(cfg),
		config:         cfg,
	}
}

// GetSummary handles GET /checkout/summary
func (h *CheckoutHandler) GetSummary(c *gin.Context) {
	sessionID := getOrCreateSessionID(c, h.config)
	svc, _ := h.service()

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout summary retrieved successfully",
		"data":    svc.Summarize(c.Request.Context(), sessionID),
	})
}

// ConfirmOrder handles POST /checkout/confirm.
// Payment is simulated; the order summary is finalized and the cart cleared.
func (h *CheckoutHandler) ConfirmOrder(c *gin.Context) {
	sessionID := getOrCreateSessionID(c, h.config)
	svc, recorder := h.service()

	if svc.IsEmpty(c.Request.Context(), sessionID) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Cart is empty",
		})
		return
	}

	summary, err := svc.Confirm(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(apperrors.HTTPStatus(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Order confirmed successfully",
		"data":          summary,
		"notifications": recorder.Events(),
	})
}

// GetLastOrder handles GET /checkout/orders/last
func (h *CheckoutHandler) GetLastOrder(c *gin.Context) {
	sessionID := getOrCreateSessionID(c, h.config)
	svc, _ := h.service()

	summary, err := svc.LastOrder(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(apperrors.HTTPStatus(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    summary,
	})
}

// DownloadReceipt handles GET /checkout/orders/last/receipt.
// Returns the printable receipt for the session's last confirmed order.
func (h *CheckoutHandler) DownloadReceipt(c *gin.Context) {
	sessionID := getOrCreateSessionID(c, h.config)
	svc, _ := h.service()

	summary, err := svc.LastOrder(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(apperrors.HTTPStatus(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	pdfBuffer, err := h.pdfService.GenerateReceipt(summary)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate receipt",
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", summary.OrderNumber))
	c.Header("Content-Type", "application/pdf")
	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())
}

func (h *CheckoutHandler) service() (*checkout.Service, *notify.Recorder) {
	recorder := notify.NewRecorder()
	multi := notify.Multi{h.notifier, recorder}
	cartSvc := cart.NewService(h.store, h.catalogService, multi, h.config.Store.CartKeyPrefix)
	svc := checkout.NewService(cartSvc, h.catalogService, h.store, multi, h.config.Store.LastOrderKeyPrefix)
	return svc, recorder
}
