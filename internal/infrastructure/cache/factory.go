package cache

import (
	"github.com/bizops/backend/internal/domain/shared"
	"github.com/bizops/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewIdempotencyStore picks the Redis store when a client is available and
// falls back to the in-memory store otherwise.
func NewIdempotencyStore(client *redis.Client, cfg config.IdempotencyConfig, logger *zap.Logger) shared.IdempotencyStore {
	if client != nil {
		logger.Info("Using Redis idempotency store", zap.String("prefix", cfg.Prefix))
		return NewRedisIdempotencyStore(client, cfg.Prefix)
	}
	logger.Warn("Redis disabled, using in-memory idempotency store; " +
		"retries routed to another instance will not be deduplicated")
	return NewInMemoryIdempotencyStore()
}
