package router

import (
	"github.com/gin-gonic/gin"
	"github.com/storefront/backend/internal/infrastructure/auth"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/interfaces/http/handler"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// Config carries everything the router needs to mount the API
type Config struct {
	Logger     *zap.Logger
	JWTService *auth.JWTService
	CORS       middleware.CORSConfig

	System     *handler.SystemHandler
	Auth       *handler.AuthHandler
	Items      *handler.ItemHandler
	Categories *handler.CategoryHandler
	Orders     *handler.OrderHandler
	Addresses  *handler.AddressHandler
}

// Setup builds the gin engine with all middleware and routes mounted
func Setup(cfg Config) *gin.Engine {
	middleware.SetupValidator()

	engine := gin.New()

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(cfg.Logger))
	engine.Use(logger.Recovery(cfg.Logger))
	engine.Use(middleware.CORSWithConfig(cfg.CORS))

	engine.GET("/health", cfg.System.Health)

	api := engine.Group("/api")

	// storefront, no authentication
	api.GET("/health", cfg.System.Health)
	api.GET("/items", cfg.Items.List)
	api.GET("/items/:name", cfg.Items.GetByName)
	api.GET("/search", cfg.Items.Search)
	api.GET("/categories/hierarchy", cfg.Categories.Hierarchy)
	api.GET("/categories/:name", cfg.Categories.GetByName)
	api.GET("/homepage", cfg.Items.Homepage)

	api.POST("/register", cfg.Auth.Register)
	api.POST("/token", cfg.Auth.Token)
	api.POST("/token/refresh", cfg.Auth.Refresh)

	authed := api.Group("")
	authed.Use(middleware.JWTAuth(cfg.JWTService, cfg.Logger))

	authed.GET("/me", cfg.Auth.Me)

	authed.POST("/create-order", cfg.Orders.Create)
	authed.GET("/orders", cfg.Orders.List)
	authed.GET("/orders/:id", cfg.Orders.GetByID)
	authed.PUT("/orders/:id/status", cfg.Orders.UpdateStatus)
	authed.POST("/orders/:id/details", cfg.Orders.AddDetail)
	authed.PUT("/orders/:id/details/:detailId", cfg.Orders.UpdateDetail)
	authed.DELETE("/orders/:id/details/:detailId", cfg.Orders.RemoveDetail)

	authed.GET("/address", cfg.Addresses.List)
	authed.POST("/address", cfg.Addresses.Create)
	authed.DELETE("/address/:id", cfg.Addresses.Delete)

	// catalog management
	authed.POST("/categories", cfg.Categories.Create)
	authed.PUT("/categories/:id", cfg.Categories.Rename)
	authed.PUT("/categories/:id/move", cfg.Categories.Move)
	authed.DELETE("/categories/:id", cfg.Categories.Delete)
	authed.POST("/items", cfg.Items.Create)
	authed.PUT("/items/:id", cfg.Items.Update)
	authed.DELETE("/items/:id", cfg.Items.Delete)
	authed.POST("/tags", cfg.Items.CreateTag)
	authed.POST("/suppliers", cfg.Items.CreateSupplier)

	return engine
}
