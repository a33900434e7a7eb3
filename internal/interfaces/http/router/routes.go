package router

import (
	"github.com/bizops/backend/internal/interfaces/http/handler"
)

// CurrencyRoutes builds the /currency group
func CurrencyRoutes(currencies *handler.CurrencyHandler, rates *handler.ExchangeRateHandler) *DomainGroup {
	g := NewDomainGroup("currency", "/currency")

	g.GET("/currencies", currencies.List).
		POST("/currencies", currencies.Create).
		GET("/currencies/:code", currencies.Get).
		PUT("/currencies/:code", currencies.Update).
		DELETE("/currencies/:code", currencies.Deactivate).
		POST("/currencies/:code/base", currencies.SetBase).
		GET("/base", currencies.GetBase)

	g.POST("/rates", rates.Upsert).
		GET("/rates/:code", rates.Resolve).
		GET("/rates/:code/history", rates.History).
		DELETE("/rates/:id", rates.Deactivate).
		POST("/convert", rates.Convert).
		POST("/price", rates.Price)

	return g
}

// InventoryRoutes builds the /inventory group
func InventoryRoutes(products *handler.ProductHandler, categories *handler.CategoryHandler, stock *handler.StockHandler) *DomainGroup {
	g := NewDomainGroup("inventory", "/inventory")

	g.GET("/products", products.List).
		POST("/products", products.Create).
		GET("/products/:id", products.Get).
		PUT("/products/:id", products.Update).
		POST("/products/:id/activate", products.Activate).
		POST("/products/:id/deactivate", products.Deactivate).
		GET("/products/:id/stock", products.Stock).
		GET("/products/:id/movements", products.Movements)

	g.POST("/movements", stock.RecordMovement).
		GET("/alerts", stock.Alerts).
		POST("/alerts/export", stock.ExportAlerts).
		GET("/alerts/exports/*key", stock.DownloadExport)

	g.GET("/categories", categories.List).
		POST("/categories", categories.Create).
		PUT("/categories/:id/parent", categories.Move)

	return g
}
