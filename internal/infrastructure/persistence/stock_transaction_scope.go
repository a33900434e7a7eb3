package persistence

import (
	"context"

	appinv "github.com/bizops/backend/internal/application/inventory"
	"github.com/bizops/backend/internal/domain/catalog"
	"github.com/bizops/backend/internal/domain/inventory"
	"github.com/bizops/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStockTransactionScope implements TransactionScope using GORM transactions
type GormStockTransactionScope struct {
	db *gorm.DB
}

// NewGormStockTransactionScope creates a new GormStockTransactionScope
func NewGormStockTransactionScope(db *gorm.DB) *GormStockTransactionScope {
	return &GormStockTransactionScope{db: db}
}

// Execute runs fn within a database transaction. It is rolled back if fn
// returns an error and committed otherwise.
func (s *GormStockTransactionScope) Execute(ctx context.Context, fn func(repos appinv.TransactionalRepositories) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStockRepositories{tx: tx})
	})
	return translateError(err)
}

type gormStockRepositories struct {
	tx *gorm.DB
}

// LockProduct loads the product with SELECT ... FOR UPDATE
func (r *gormStockRepositories) LockProduct(ctx context.Context, productID uuid.UUID) (*catalog.Product, error) {
	var model models.ProductModel
	if err := r.tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, "id = ?", productID).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// MovementRepo returns the movement repository scoped to the transaction
func (r *gormStockRepositories) MovementRepo() inventory.MovementRepository {
	return NewGormStockMovementRepository(r.tx)
}

var _ appinv.TransactionScope = (*GormStockTransactionScope)(nil)
var _ appinv.TransactionalRepositories = (*gormStockRepositories)(nil)
