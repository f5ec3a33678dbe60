package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/yappari/coffeebar-admin/internal/server/http/handlers"
	"github.com/yappari/coffeebar-admin/internal/server/http/middleware"
)

// Setup configures the gin router with handlers and middleware.
func Setup(facade handlers.AdminFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	orderHandler := handlers.NewOrderHandler(facade)
	historyHandler := handlers.NewHistoryHandler(facade)
	feedbackHandler := handlers.NewFeedbackHandler(facade)
	analyticsHandler := handlers.NewAnalyticsHandler(facade)

	api := engine.Group("/api")
	admin := api.Group("/admin")

	orders := admin.Group("/orders")
	orders.GET("", orderHandler.List)
	orders.GET("/selection", orderHandler.Selection)
	orders.POST("/selection/all", orderHandler.SelectAll)
	orders.DELETE("/selection", orderHandler.ClearSelection)
	orders.POST("/complete", orderHandler.BatchComplete)
	orders.GET("/:id/status", orderHandler.Status)
	orders.POST("/:id/status", orderHandler.UpdateStatus)
	orders.POST("/:id/select", orderHandler.Select)
	orders.DELETE("/:id/select", orderHandler.Deselect)

	admin.GET("/history", historyHandler.List)
	admin.GET("/feedback", feedbackHandler.List)
	admin.GET("/analytics/sales", analyticsHandler.Sales)

	return engine
}
