// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/shoplight-backend/internal/config"
	"github.com/your-org/shoplight-backend/internal/domain/catalog"
	"github.com/your-org/shoplight-backend/internal/domain/favorites"
	"github.com/your-org/shoplight-backend/internal/infrastructure/storage"
	"github.com/your-org/shoplight-backend/internal/interfaces/http/handlers"
	"github.com/your-org/shoplight-backend/internal/pkg/notify"
)

// SetupRoutes wires all API routes onto the given group. All state is
// session-scoped; there is no authentication surface.
func SetupRoutes(rg *gin.RouterGroup, redisClient *redis.Client, catalogService *catalog.Service, cfg *config.Config) {
	store := storage.NewRedisStore(redisClient, cfg.Store.SessionTTL)
	notifier := notify.NewLogNotifier(logrus.StandardLogger())

	SetupCatalogRoutes(rg, store, catalogService, notifier, cfg)
	SetupCartRoutes(rg, store, catalogService, notifier, cfg)
	SetupFavoritesRoutes(rg, store, catalogService, notifier, cfg)
	SetupCheckoutRoutes(rg, store, catalogService, notifier, cfg)
}

// SetupCatalogRoutes sets up product catalog routes
func SetupCatalogRoutes(rg *gin.RouterGroup, store storage.Store, catalogService *catalog.Service, notifier notify.Notifier, cfg *config.Config) {
	favoritesService := favorites.NewService(store, catalogService, notifier, cfg.Store.FavoritesKeyPrefix)
	catalogHandler := handlers.NewCatalogHandler(catalogService, favoritesService, cfg)

	products := rg.Group("/products")
	{
		products.GET("", catalogHandler.ListProducts)
		products.GET("/categories", catalogHandler.GetCategories)
		products.GET("/:id", catalogHandler.GetProduct)
	}
}

// SetupCartRoutes sets up cart routes
func SetupCartRoutes(rg *gin.RouterGroup, store storage.Store, catalogService *catalog.Service, notifier notify.Notifier, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(store, catalogService, notifier, cfg)

	cart := rg.Group("/cart")
	{
		cart.GET("", cartHandler.GetCart)
		cart.GET("/count", cartHandler.GetCartCount)
		cart.POST("/items", cartHandler.AddToCart)
		cart.PUT("/items/:id", cartHandler.UpdateCartItem)
		cart.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cart.DELETE("", cartHandler.ClearCart)
	}
}

// SetupFavoritesRoutes sets up favorites routes
func SetupFavoritesRoutes(rg *gin.RouterGroup, store storage.Store, catalogService *catalog.Service, notifier notify.Notifier, cfg *config.Config) {
	favoritesHandler := handlers.NewFavoritesHandler(store, catalogService, notifier, cfg)

	favorites := rg.Group("/favorites")
	{
		favorites.GET("", favoritesHandler.GetFavorites)
		favorites.POST("/:id/toggle", favoritesHandler.ToggleFavorite)
	}
}

// SetupCheckoutRoutes sets up checkout routes
func SetupCheckoutRoutes(rg *gin.RouterGroup, store storage.Store, catalogService *catalog.Service, notifier notify.Notifier, cfg *config.Config) {
	checkoutHandler := handlers.NewCheckoutHandler(store, catalogService, notifier, cfg)

	checkoutGroup := rg.Group("/checkout")
	{
		checkoutGroup.GET("/summary", checkoutHandler.GetSummary)
		checkoutGroup.POST("/confirm", checkoutHandler.ConfirmOrder)
		checkoutGroup.GET("/orders/last", checkoutHandler.GetLastOrder)
		checkoutGroup.GET("/orders/last/receipt", checkoutHandler.DownloadReceipt)
	}
}
