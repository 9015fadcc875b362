// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tourquote/internal/delivery/http/middleware"
	"tourquote/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler *handler.CatalogHandler
	QuoteHandler   *handler.QuoteHandler
	StreamHandler  *handler.StreamHandler
	GateMiddleware *middleware.GateMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler *handler.CatalogHandler
	quoteHandler   *handler.QuoteHandler
	streamHandler  *handler.StreamHandler
	gateMiddleware *middleware.GateMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler: params.CatalogHandler,
		quoteHandler:   params.QuoteHandler,
		streamHandler:  params.StreamHandler,
		gateMiddleware: params.GateMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Admin catalog routes, guarded by the console passphrase
	catalogGroup := e.Group("/api/catalog")
	catalogGroup.Use(r.gateMiddleware.Check)
	{
		catalogGroup.GET("/stream/:collection", r.streamHandler.StreamCollection)

		catalogGroup.GET("/countries", r.catalogHandler.ListCountries)
		catalogGroup.POST("/countries", r.catalogHandler.CreateCountry)
		catalogGroup.PUT("/countries/:id", r.catalogHandler.RenameCountry)
		catalogGroup.DELETE("/countries/:id", r.catalogHandler.DeleteCountry)

		catalogGroup.GET("/cities", r.catalogHandler.ListCities)
		catalogGroup.POST("/cities", r.catalogHandler.CreateCity)
		catalogGroup.PUT("/cities/:id", r.catalogHandler.UpdateCity)
		catalogGroup.DELETE("/cities/:id", r.catalogHandler.DeleteCity)

		catalogGroup.GET("/categories", r.catalogHandler.ListCategories)
		catalogGroup.POST("/categories", r.catalogHandler.CreateCategory)
		catalogGroup.PUT("/categories/:id", r.catalogHandler.RenameCategory)
		catalogGroup.DELETE("/categories/:id", r.catalogHandler.DeleteCategory)

		catalogGroup.GET("/products", r.catalogHandler.ListProducts)
		catalogGroup.POST("/products", r.catalogHandler.CreateProduct)
		catalogGroup.PUT("/products/:id", r.catalogHandler.UpdateProduct)
		catalogGroup.DELETE("/products/:id", r.catalogHandler.DeleteProduct)
	}

	// Quote builder routes
	quoteGroup := e.Group("/api/quotes")
	quoteGroup.Use(r.gateMiddleware.Check)
	{
		quoteGroup.POST("", r.quoteHandler.CreateQuote)
		quoteGroup.GET("/:id", r.quoteHandler.GetQuote)
		quoteGroup.PUT("/:id/info", r.quoteHandler.UpdateInfo)

		quoteGroup.POST("/:id/days", r.quoteHandler.AddDay)
		quoteGroup.DELETE("/:id/days/:dayId", r.quoteHandler.RemoveDay)

		quoteGroup.POST("/:id/days/:dayId/items", r.quoteHandler.AddItem)
		quoteGroup.PATCH("/:id/days/:dayId/items/:itemId", r.quoteHandler.UpdateItem)
		quoteGroup.DELETE("/:id/days/:dayId/items/:itemId", r.quoteHandler.RemoveItem)

		quoteGroup.GET("/:id/export/text", r.quoteHandler.ExportText)
		quoteGroup.GET("/:id/export/csv", r.quoteHandler.ExportCSV)
	}
}
