package inventory

import (
	"sort"

	"github.com/bizops/backend/internal/domain/catalog"
	"github.com/google/uuid"
)

// CurrentStock folds a product's movements into its on-hand quantity. The
// result does not depend on the order of movements and is not clamped at
// zero, so inconsistent histories surface as negative stock.
func CurrentStock(movements []StockMovement) int64 {
	var stock int64
	for _, m := range movements {
		stock += m.SignedQuantity()
	}
	return stock
}

// IsCritical reports whether stock has fallen to or below the threshold.
func IsCritical(stock, criticalLevel int64) bool {
	return stock <= criticalLevel
}

// CanIssue reports whether an outbound movement of quantity fits in stock.
func CanIssue(stock, quantity int64) bool {
	return stock >= quantity
}

// Alert flags a product whose stock is at or below its critical level.
type Alert struct {
	ProductID          uuid.UUID
	ProductCode        string
	ProductName        string
	CurrentStock       int64
	CriticalStockLevel int64
	Shortage           int64
}

// StockLevel pairs a product with its folded stock.
type StockLevel struct {
	Product catalog.Product
	Stock   int64
}

// BuildAlerts keeps the critical levels and orders them by ascending
// shortage, breaking ties by product ID so the order is deterministic.
func BuildAlerts(levels []StockLevel) []Alert {
	alerts := make([]Alert, 0, len(levels))
	for _, l := range levels {
		if !l.Product.IsActive || !IsCritical(l.Stock, l.Product.CriticalStockLevel) {
			continue
		}
		alerts = append(alerts, Alert{
			ProductID:          l.Product.ID,
			ProductCode:        l.Product.Code,
			ProductName:        l.Product.Name,
			CurrentStock:       l.Stock,
			CriticalStockLevel: l.Product.CriticalStockLevel,
			Shortage:           l.Product.CriticalStockLevel - l.Stock,
		})
	}
	sort.Slice(alerts, func(i, j int) bool {
		if alerts[i].Shortage != alerts[j].Shortage {
			return alerts[i].Shortage < alerts[j].Shortage
		}
		return alerts[i].ProductID.String() < alerts[j].ProductID.String()
	})
	return alerts
}
