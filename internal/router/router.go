// Package router wires the storefront handlers onto an Echo instance. All
// API routes live under /api; the catalog reads additionally go through the
// optional response-cache middleware.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/farazfarwa/fashionhub/internal/handler"
)

// API bundles every handler the storefront exposes.
type API struct {
	Auth         *handler.AuthHandler
	Users        *handler.UserHandler
	Categories   *handler.CategoryHandler
	Products     *handler.ProductHandler
	Orders       *handler.OrderHandler
	Transactions *handler.TransactionHandler
	Contact      *handler.ContactHandler
	Analytics    *handler.AnalyticsHandler
}

// Register attaches all routes. cache may be nil when response caching is
// disabled.
func Register(e *echo.Echo, api API, cache echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)

	g := e.Group("/api")

	// Accounts. No session or token scheme: the client keeps the returned
	// user in local storage and the API trusts it.
	g.POST("/signup", api.Auth.Signup)
	g.POST("/login", api.Auth.Login)
	g.GET("/users", api.Users.List)
	g.PUT("/users/:id", api.Users.UpdateRole)

	// Catalog reads are cacheable; writes are not.
	catalog := []echo.MiddlewareFunc{}
	if cache != nil {
		catalog = append(catalog, cache)
	}
	g.GET("/products", api.Products.List, catalog...)
	g.GET("/products/:id", api.Products.Get, catalog...)
	g.POST("/products", api.Products.Create)
	g.PUT("/products/:id", api.Products.Update)
	g.DELETE("/products/:id", api.Products.Delete)

	g.GET("/categories", api.Categories.List, catalog...)
	g.GET("/categories/:id", api.Categories.Get, catalog...)
	g.POST("/categories", api.Categories.Create)
	g.PUT("/categories/:id", api.Categories.Update)
	g.DELETE("/categories/:id", api.Categories.Delete)

	// Checkout and the legacy transaction records.
	g.GET("/orders", api.Orders.List)
	g.POST("/orders", api.Orders.Create)
	g.PUT("/orders/:id", api.Orders.UpdateStatus)

	g.GET("/transactions", api.Transactions.List)
	g.POST("/transactions", api.Transactions.Create)
	g.PUT("/transactions/:id", api.Transactions.UpdateStatus)

	g.POST("/contact", api.Contact.Create)
	g.GET("/analytics", api.Analytics.Get, catalog...)
}
