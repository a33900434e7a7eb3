package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	out := map[string]metricdata.Metrics{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func TestBusinessMetrics_Record(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	bm, err := NewBusinessMetrics(provider.Meter("test"))
	require.NoError(t, err)

	ctx := context.Background()
	bm.RecordMovement(ctx, "out", OutcomeRecorded, 3*time.Millisecond)
	bm.RecordMovement(ctx, "out", OutcomeInsufficientStock, time.Millisecond)
	bm.RecordMovement(ctx, "out", OutcomeRecorded, time.Millisecond)
	bm.RecordCriticalProducts(ctx, 4)
	bm.RecordConversion(ctx, "cross", "USD", "EUR")
	bm.RecordRateUpsert(ctx, "manual")
	bm.RecordBaseSwitch(ctx)

	metrics := collect(t, reader)

	movements, ok := metrics["bizops.stock.movements"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	var total int64
	for _, dp := range movements.DataPoints {
		total += dp.Value
	}
	assert.Equal(t, int64(3), total)
	assert.Len(t, movements.DataPoints, 2, "one series per outcome")

	gauge, ok := metrics["bizops.stock.critical_products"].Data.(metricdata.Gauge[int64])
	require.True(t, ok)
	require.Len(t, gauge.DataPoints, 1)
	assert.Equal(t, int64(4), gauge.DataPoints[0].Value)

	assert.Contains(t, metrics, "bizops.currency.conversions")
	assert.Contains(t, metrics, "bizops.currency.rate_upserts")
	assert.Contains(t, metrics, "bizops.currency.base_switches")
	assert.Contains(t, metrics, "bizops.stock.record_duration")
}

func TestBusinessMetrics_NilIsNoop(t *testing.T) {
	var bm *BusinessMetrics
	ctx := context.Background()
	assert.NotPanics(t, func() {
		bm.RecordMovement(ctx, "in", OutcomeRecorded, time.Millisecond)
		bm.RecordCriticalProducts(ctx, 1)
		bm.RecordConversion(ctx, "identity", "USD", "USD")
		bm.RecordRateUpsert(ctx, "manual")
		bm.RecordBaseSwitch(ctx)
	})
}
