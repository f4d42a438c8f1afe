// internal/interfaces/http/handlers/favorites.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/shoplight-backend/internal/config"
	"github.com/your-org/shoplight-backend/internal/domain/catalog"
	"github.com/your-org/shoplight-backend/internal/domain/favorites"
	"github.com/your-org/shoplight-backend/internal/infrastructure/storage"
	"github.com/your-org/shoplight-backend/internal/pkg/notify"
)

// FavoritesHandler handles favorites endpoints
type FavoritesHandler struct {
	store          storage.Store
	catalogService *catalog.Service
	notifier       notify.Notifier
	config         *config.Config
}

// NewFavoritesHandler creates a new favorites handler
func NewFavoritesHandler(store storage.Store, catalogService *catalog.Service, notifier notify.Notifier, cfg *config.Config) *FavoritesHandler {
	return &FavoritesHandler{
		store:          store,
		catalogService: catalogService,
		notifier:       notifier,
		config:         cfg,
	}
}

// GetFavorites handles GET /favorites
func (h *FavoritesHandler) GetFavorites(c *gin.Context) {
	sessionID := getOrCreateSessionID(c, h.config)
	svc, _ := h.service()

	ids := svc.All(c.Request.Context(), sessionID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Favorites retrieved successfully",
		"data": gin.H{
			"product_ids": ids,
			"count":       len(ids),
		},
	})
}

// ToggleFavorite handles POST /favorites/:id/toggle
func (h *FavoritesHandler) ToggleFavorite(c *gin.Context) {
	sessionID := getOrCreateSessionID(c, h.config)

	svc, recorder := h.service()
	favorited := svc.Toggle(c.Request.Context(), sessionID, c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Favorite toggled successfully",
		"data": gin.H{
			"product_id": c.Param("id"),
			"favorited":  favorited,
		},
		"notifications": recorder.Events(),
	})
}

func (h *FavoritesHandler) service() (*favorites.Service, *notify.Recorder) {
	recorder := notify.NewRecorder()
	svc := favorites.NewService(h.store, h.catalogService, notify.Multi{h.notifier, recorder}, h.config.Store.FavoritesKeyPrefix)
	return svc, recorder
}
