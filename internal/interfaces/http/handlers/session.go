// internal/interfaces/http/handlers/session.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/your-org/shoplight-backend/internal/config"
)

// getOrCreateSessionID gets the session ID from the cookie or creates a new
// one. Cart, favorites and last-order records are all keyed by this id, so a
// browser keeps its state across visits for the cookie's lifetime.
func getOrCreateSessionID(c *gin.Context, cfg *config.Config) string {
	sessionID, err := c.Cookie(cfg.Store.SessionCookie)
	if err != nil || sessionID == "" {
		sessionID = uuid.New().String()
		c.SetCookie(cfg.Store.SessionCookie, sessionID, int(cfg.Store.SessionTTL.Seconds()), "/", "", false, true)
	}

	return sessionID
}
