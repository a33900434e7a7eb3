package shared

import (
	"context"
	"time"
)

// IdempotencyStore remembers the outcome of requests carrying an idempotency
// key so that retries replay the first response instead of repeating a write.
type IdempotencyStore interface {
	// Reserve claims key for ttl. It returns false if the key is already
	// claimed, whether or not the first request has finished.
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Complete records the serialized response for a reserved key.
	Complete(ctx context.Context, key string, response []byte, ttl time.Duration) error

	// Lookup returns the recorded response, or nil while the first request
	// is still in flight or the key is unknown.
	Lookup(ctx context.Context, key string) ([]byte, error)

	// Release drops a reservation so the request may be retried.
	Release(ctx context.Context, key string) error

	// Close releases resources held by the store
	Close() error
}

// IdempotencyConfig holds configuration for idempotency handling
type IdempotencyConfig struct {
	// TTL is how long a key and its recorded response are kept
	TTL time.Duration

	Enabled bool
}

// DefaultIdempotencyConfig returns the default idempotency configuration
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{
		TTL:     24 * time.Hour,
		Enabled: true,
	}
}
