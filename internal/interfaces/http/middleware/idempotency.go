package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/bizops/backend/internal/domain/shared"
	"github.com/bizops/backend/internal/infrastructure/logger"
	"github.com/bizops/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Idempotency headers
const (
	IdempotencyKeyHeader   = "Idempotency-Key"
	IdempotentReplayHeader = "Idempotent-Replayed"
)

// MaxIdempotencyKeyLength bounds client-supplied keys
const MaxIdempotencyKeyLength = 255

type storedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

type capturingWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *capturingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *capturingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency replays the first response of a POST retried with the same
// Idempotency-Key. A duplicate arriving while the first request is still
// running gets 409. Server errors release the key so the client may retry.
// Store failures are logged and the request proceeds unprotected.
func Idempotency(store shared.IdempotencyStore, cfg shared.IdempotencyConfig) gin.HandlerFunc {
	if store == nil || !cfg.Enabled {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		clientKey := c.GetHeader(IdempotencyKeyHeader)
		if c.Request.Method != http.MethodPost || clientKey == "" {
			c.Next()
			return
		}
		if len(clientKey) > MaxIdempotencyKeyLength {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeBadRequest, "Idempotency-Key is too long", GetRequestID(c)))
			return
		}

		ctx := c.Request.Context()
		log := logger.FromContext(ctx)
		key := c.Request.Method + ":" + c.Request.URL.Path + ":" + clientKey

		reserved, err := store.Reserve(ctx, key, cfg.TTL)
		if err != nil {
			log.Error("Idempotency reserve failed", zap.String("key", clientKey), zap.Error(err))
			c.Next()
			return
		}

		if !reserved {
			replay(c, store, key, clientKey, log)
			return
		}

		// a panicking handler must not leave the key reserved for the whole TTL
		defer func() {
			if r := recover(); r != nil {
				if err := store.Release(context.WithoutCancel(ctx), key); err != nil {
					log.Error("Idempotency release failed", zap.String("key", clientKey), zap.Error(err))
				}
				panic(r)
			}
		}()

		writer := &capturingWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()

		status := writer.Status()
		if status >= http.StatusInternalServerError {
			if err := store.Release(ctx, key); err != nil {
				log.Error("Idempotency release failed", zap.String("key", clientKey), zap.Error(err))
			}
			return
		}

		data, err := json.Marshal(storedResponse{
			Status:      status,
			ContentType: writer.Header().Get("Content-Type"),
			Body:        writer.body.Bytes(),
		})
		if err == nil {
			err = store.Complete(ctx, key, data, cfg.TTL)
		}
		if err != nil {
			log.Error("Idempotency complete failed", zap.String("key", clientKey), zap.Error(err))
		}
	}
}

func replay(c *gin.Context, store shared.IdempotencyStore, key, clientKey string, log *zap.Logger) {
	data, err := store.Lookup(c.Request.Context(), key)
	if err != nil {
		log.Error("Idempotency lookup failed", zap.String("key", clientKey), zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponseWithRequestID(
			dto.ErrCodeInternal, "Failed to check Idempotency-Key", GetRequestID(c)))
		return
	}
	if data == nil {
		c.AbortWithStatusJSON(http.StatusConflict, dto.NewErrorResponseWithRequestID(
			dto.ErrCodeRequestInFlight,
			"A request with this Idempotency-Key is still being processed",
			GetRequestID(c)))
		return
	}

	var stored storedResponse
	if err := json.Unmarshal(data, &stored); err != nil {
		log.Error("Corrupt idempotent response", zap.String("key", clientKey), zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponseWithRequestID(
			dto.ErrCodeInternal, "Failed to replay response", GetRequestID(c)))
		return
	}

	log.Info("Replaying idempotent response", zap.String("key", clientKey), zap.Int("status", stored.Status))
	c.Header(IdempotentReplayHeader, "true")
	c.Data(stored.Status, stored.ContentType, stored.Body)
	c.Abort()
}
