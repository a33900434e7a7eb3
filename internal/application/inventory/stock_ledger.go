// Package inventory holds the stock ledger and catalog application services.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bizops/backend/internal/domain/catalog"
	"github.com/bizops/backend/internal/domain/inventory"
	"github.com/bizops/backend/internal/domain/shared"
	"github.com/bizops/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StockLedger derives stock levels from the movement ledger and appends new
// movements. Stock is never stored; every read folds the full history.
type StockLedger struct {
	productRepo  catalog.ProductRepository
	movementRepo inventory.MovementRepository
	txScope      TransactionScope
	logger       *zap.Logger
	metrics      *telemetry.BusinessMetrics
}

// NewStockLedger creates a new StockLedger. metrics may be nil.
func NewStockLedger(
	productRepo catalog.ProductRepository,
	movementRepo inventory.MovementRepository,
	txScope TransactionScope,
	logger *zap.Logger,
	metrics *telemetry.BusinessMetrics,
) *StockLedger {
	return &StockLedger{
		productRepo:  productRepo,
		movementRepo: movementRepo,
		txScope:      txScope,
		logger:       logger,
		metrics:      metrics,
	}
}

// CurrentStock returns the product's on-hand quantity
func (l *StockLedger) CurrentStock(ctx context.Context, productID uuid.UUID) (int64, error) {
	if _, err := l.productRepo.FindByID(ctx, productID); err != nil {
		return 0, err
	}
	return l.fold(ctx, l.movementRepo, productID)
}

func (l *StockLedger) fold(ctx context.Context, repo inventory.MovementRepository, productID uuid.UUID) (int64, error) {
	movements, err := repo.FindByProduct(ctx, productID)
	if err != nil {
		return 0, err
	}
	return inventory.CurrentStock(movements), nil
}

// IsCritical reports whether the product's stock is at or below its
// critical level
func (l *StockLedger) IsCritical(ctx context.Context, productID uuid.UUID) (bool, error) {
	summary, err := l.StockSummary(ctx, productID)
	if err != nil {
		return false, err
	}
	return summary.IsCritical, nil
}

// StockSummary returns the product's stock alongside its threshold
func (l *StockLedger) StockSummary(ctx context.Context, productID uuid.UUID) (*StockSummaryResponse, error) {
	product, err := l.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	stock, err := l.fold(ctx, l.movementRepo, productID)
	if err != nil {
		return nil, err
	}
	return &StockSummaryResponse{
		ProductID:          product.ID,
		ProductCode:        product.Code,
		Stock:              stock,
		CriticalStockLevel: product.CriticalStockLevel,
		IsCritical:         inventory.IsCritical(stock, product.CriticalStockLevel),
	}, nil
}

// RecordMovement appends a movement and returns the resulting stock.
//
// The product row stays locked from the stock check to the insert, so
// concurrent outbound movements of one product are serialized and cannot
// jointly overdraw it. An outbound movement larger than the current stock
// fails with shared.ErrInsufficientStock and writes nothing.
func (l *StockLedger) RecordMovement(ctx context.Context, req RecordMovementRequest) (*MovementResult, error) {
	start := time.Now()
	ctx, span := telemetry.StartServiceSpan(ctx, "stock_ledger", "record_movement",
		telemetry.SpanAttrProductID, req.ProductID.String(),
		telemetry.SpanAttrMovementType, req.MovementType,
		telemetry.SpanAttrQuantity, req.Quantity,
	)
	defer span.End()

	movementType, err := inventory.ParseMovementType(req.MovementType)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	movement, err := inventory.NewStockMovement(req.ProductID, movementType, req.Quantity)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	movement.WithReference(req.Reference).WithNote(req.Note)

	var result *MovementResult
	err = l.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		product, err := repos.LockProduct(ctx, req.ProductID)
		if err != nil {
			return err
		}
		movements := repos.MovementRepo()

		if movementType == inventory.MovementTypeOut {
			stock, err := l.fold(ctx, movements, product.ID)
			if err != nil {
				return err
			}
			if !inventory.CanIssue(stock, movement.Quantity) {
				return shared.ErrInsufficientStock.WithMessage(fmt.Sprintf(
					"Insufficient stock for %s: available %d, requested %d",
					product.Code, stock, movement.Quantity))
			}
		}

		if err := movements.Insert(ctx, movement); err != nil {
			return err
		}

		stock, err := l.fold(ctx, movements, product.ID)
		if err != nil {
			return err
		}
		result = &MovementResult{
			Movement:   ToMovementResponse(movement),
			Stock:      stock,
			IsCritical: inventory.IsCritical(stock, product.CriticalStockLevel),
		}
		return nil
	})

	elapsed := time.Since(start)
	if err != nil {
		telemetry.RecordError(span, err)
		if errors.Is(err, shared.ErrInsufficientStock) {
			l.metrics.RecordMovement(ctx, string(movementType), telemetry.OutcomeInsufficientStock, elapsed)
			l.logger.Warn("Movement rejected",
				zap.String("product_id", req.ProductID.String()),
				zap.Int64("quantity", req.Quantity),
				zap.String("reason", err.Error()))
		} else {
			l.metrics.RecordMovement(ctx, string(movementType), telemetry.OutcomeFailed, elapsed)
		}
		return nil, err
	}

	l.metrics.RecordMovement(ctx, string(movementType), telemetry.OutcomeRecorded, elapsed)
	telemetry.SetAttributes(span, telemetry.SpanAttrStock, result.Stock)
	l.logger.Info("Stock movement recorded",
		zap.String("movement_id", movement.ID.String()),
		zap.String("product_id", req.ProductID.String()),
		zap.String("movement_type", string(movementType)),
		zap.Int64("quantity", movement.Quantity),
		zap.Int64("stock", result.Stock))
	return result, nil
}

// CriticalAlerts lists every active product at or below its critical level,
// least short first, ties broken by product ID.
func (l *StockLedger) CriticalAlerts(ctx context.Context) ([]inventory.Alert, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "stock_ledger", "critical_alerts")
	defer span.End()

	products, err := l.productRepo.FindActive(ctx)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	if len(products) == 0 {
		l.metrics.RecordCriticalProducts(ctx, 0)
		return []inventory.Alert{}, nil
	}

	ids := make([]uuid.UUID, len(products))
	for i := range products {
		ids[i] = products[i].ID
	}
	movements, err := l.movementRepo.FindByProducts(ctx, ids)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	byProduct := make(map[uuid.UUID][]inventory.StockMovement, len(products))
	for _, m := range movements {
		byProduct[m.ProductID] = append(byProduct[m.ProductID], m)
	}

	levels := make([]inventory.StockLevel, len(products))
	for i := range products {
		levels[i] = inventory.StockLevel{
			Product: products[i],
			Stock:   inventory.CurrentStock(byProduct[products[i].ID]),
		}
	}

	alerts := inventory.BuildAlerts(levels)
	l.metrics.RecordCriticalProducts(ctx, len(alerts))
	telemetry.SetAttributes(span, "alert_count", len(alerts))
	return alerts, nil
}

// ListMovements pages a product's movements, newest first
func (l *StockLedger) ListMovements(ctx context.Context, productID uuid.UUID, filter MovementListFilter) (shared.Paginated[MovementResponse], error) {
	if _, err := l.productRepo.FindByID(ctx, productID); err != nil {
		return shared.Paginated[MovementResponse]{}, err
	}

	page, pageSize := filter.Page, filter.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 50
	}

	movements, total, err := l.movementRepo.ListByProduct(ctx, productID, inventory.MovementFilter{
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	})
	if err != nil {
		return shared.Paginated[MovementResponse]{}, err
	}

	items := make([]MovementResponse, len(movements))
	for i := range movements {
		items[i] = ToMovementResponse(&movements[i])
	}
	return shared.NewPaginated(items, total, page, pageSize), nil
}
