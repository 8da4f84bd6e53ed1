// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vend/config"
	"vend/internal/delivery/api/middleware"
	"vend/internal/delivery/api/router/handler"
	"vend/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler  *handler.AccountHandler
	CatalogHandler  *handler.CatalogHandler
	PurchaseHandler *handler.PurchaseHandler
	OrderHandler    *handler.OrderHandler
	SnapshotHandler *handler.SnapshotHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler  *handler.AccountHandler
	catalogHandler  *handler.CatalogHandler
	purchaseHandler *handler.PurchaseHandler
	orderHandler    *handler.OrderHandler
	snapshotHandler *handler.SnapshotHandler
	authMiddleware  *middleware.AuthMiddleware
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:  params.AccountHandler,
		catalogHandler:  params.CatalogHandler,
		purchaseHandler: params.PurchaseHandler,
		orderHandler:    params.OrderHandler,
		snapshotHandler: params.SnapshotHandler,
		authMiddleware:  params.AuthMiddleware,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.accountHandler.Login)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	// Account and ledger routes
	apiV1.GET("/account", r.accountHandler.GetAccount)

	// Catalog routes
	productsGroup := apiV1.Group("/products")
	{
		productsGroup.GET("", r.catalogHandler.ListProducts)
		productsGroup.GET("/:id", r.catalogHandler.GetProduct)
	}

	// Purchase route
	apiV1.POST("/purchases", r.purchaseHandler.CreatePurchase)

	// Order routes
	ordersGroup := apiV1.Group("/orders")
	{
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/:code", r.orderHandler.GetOrder)
		ordersGroup.GET("/:code/qr", r.orderHandler.GetOrderQR)
	}

	// Admin routes (require admin role)
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(string(entity.RoleAdmin)))
	{
		adminGroup.POST("/products/:id/stock", r.catalogHandler.AddStock)
		adminGroup.POST("/accounts/:id/credit", r.accountHandler.AdjustCredit)
		adminGroup.POST("/snapshot/export", r.snapshotHandler.ExportSnapshot)
		adminGroup.POST("/snapshot/import", r.snapshotHandler.ImportSnapshot)
	}
}
