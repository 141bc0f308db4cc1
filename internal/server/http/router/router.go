package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/plateup/orderflow/internal/server/http/handlers"
	"github.com/plateup/orderflow/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.PlatformFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	restaurantHandler := handlers.NewRestaurantHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade, facade)
	requestHandler := handlers.NewRequestHandler(facade)

	api := engine.Group("/api")
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))

	authed.POST("/restaurants", restaurantHandler.Create)
	authed.GET("/restaurants/mine", restaurantHandler.Mine)

	authed.POST("/orders", orderHandler.Place)
	authed.GET("/orders", orderHandler.List)
	authed.GET("/orders/:id", orderHandler.Get)
	authed.PUT("/orders/:id/status", orderHandler.UpdateStatus)
	authed.PUT("/orders/:id/cancel", orderHandler.Cancel)
	authed.POST("/orders/:id/status-requests", requestHandler.Submit)

	authed.GET("/requests", requestHandler.List)
	authed.PUT("/requests/:id/approve", requestHandler.Approve)
	authed.PUT("/requests/:id/reject", requestHandler.Reject)

	return engine
}
