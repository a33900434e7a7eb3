package inventory

import (
	"context"

	"github.com/bizops/backend/internal/domain/catalog"
	"github.com/bizops/backend/internal/domain/inventory"
	"github.com/google/uuid"
)

// TransactionScope runs ledger writes atomically.
type TransactionScope interface {
	// Execute runs fn in one database transaction, rolling back if fn
	// returns an error.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories are bound to the surrounding transaction.
type TransactionalRepositories interface {
	// LockProduct loads the product and holds a row lock on it until the
	// transaction ends, serializing movements of the same product.
	LockProduct(ctx context.Context, productID uuid.UUID) (*catalog.Product, error)
	// MovementRepo returns the movement repository scoped to the transaction
	MovementRepo() inventory.MovementRepository
}

// NoOpTransactionScope runs fn directly without a transaction or lock.
// It is meant for tests.
type NoOpTransactionScope struct {
	productRepo  catalog.ProductRepository
	movementRepo inventory.MovementRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope
func NewNoOpTransactionScope(productRepo catalog.ProductRepository, movementRepo inventory.MovementRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{productRepo: productRepo, movementRepo: movementRepo}
}

// Execute runs fn without a transaction
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// LockProduct loads the product without locking it
func (s *NoOpTransactionScope) LockProduct(ctx context.Context, productID uuid.UUID) (*catalog.Product, error) {
	return s.productRepo.FindByID(ctx, productID)
}

// MovementRepo returns the movement repository
func (s *NoOpTransactionScope) MovementRepo() inventory.MovementRepository {
	return s.movementRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
