package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys.
const (
	AttrMovementType   = attribute.Key("movement_type")
	AttrOutcome        = attribute.Key("outcome")
	AttrConversionKind = attribute.Key("conversion_kind")
	AttrFromCurrency   = attribute.Key("from_currency")
	AttrToCurrency     = attribute.Key("to_currency")
	AttrRateSource     = attribute.Key("rate_source")
)

// Movement outcomes.
const (
	OutcomeRecorded          = "recorded"
	OutcomeInsufficientStock = "insufficient_stock"
	OutcomeFailed            = "failed"
)

// BusinessMetrics records ledger and currency activity. A nil
// *BusinessMetrics is valid and records nothing.
type BusinessMetrics struct {
	movements        metric.Int64Counter
	movementDuration metric.Float64Histogram
	criticalProducts metric.Int64Gauge
	conversions      metric.Int64Counter
	rateUpserts      metric.Int64Counter
	baseSwitches     metric.Int64Counter
}

// NewBusinessMetrics creates the instruments on meter.
func NewBusinessMetrics(meter metric.Meter) (*BusinessMetrics, error) {
	bm := &BusinessMetrics{}
	var err error

	if bm.movements, err = meter.Int64Counter("bizops.stock.movements",
		metric.WithDescription("Stock movement attempts by type and outcome"),
		metric.WithUnit("{movement}")); err != nil {
		return nil, &MetricsError{Instrument: "bizops.stock.movements", Err: err}
	}
	if bm.movementDuration, err = meter.Float64Histogram("bizops.stock.record_duration",
		metric.WithDescription("Time spent recording a movement, including the product lock wait"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(1, 5, 10, 25, 50, 100, 250, 500, 1000)); err != nil {
		return nil, &MetricsError{Instrument: "bizops.stock.record_duration", Err: err}
	}
	if bm.criticalProducts, err = meter.Int64Gauge("bizops.stock.critical_products",
		metric.WithDescription("Active products at or below their critical stock level"),
		metric.WithUnit("{product}")); err != nil {
		return nil, &MetricsError{Instrument: "bizops.stock.critical_products", Err: err}
	}
	if bm.conversions, err = meter.Int64Counter("bizops.currency.conversions",
		metric.WithDescription("Currency conversions by kind"),
		metric.WithUnit("{conversion}")); err != nil {
		return nil, &MetricsError{Instrument: "bizops.currency.conversions", Err: err}
	}
	if bm.rateUpserts, err = meter.Int64Counter("bizops.currency.rate_upserts",
		metric.WithDescription("Exchange rate upserts by source"),
		metric.WithUnit("{rate}")); err != nil {
		return nil, &MetricsError{Instrument: "bizops.currency.rate_upserts", Err: err}
	}
	if bm.baseSwitches, err = meter.Int64Counter("bizops.currency.base_switches",
		metric.WithDescription("Base currency changes"),
		metric.WithUnit("{switch}")); err != nil {
		return nil, &MetricsError{Instrument: "bizops.currency.base_switches", Err: err}
	}
	return bm, nil
}

// RecordMovement counts a movement attempt and how long it took.
func (bm *BusinessMetrics) RecordMovement(ctx context.Context, movementType, outcome string, elapsed time.Duration) {
	if bm == nil {
		return
	}
	attrs := metric.WithAttributes(AttrMovementType.String(movementType), AttrOutcome.String(outcome))
	bm.movements.Add(ctx, 1, attrs)
	bm.movementDuration.Record(ctx, float64(elapsed.Microseconds())/1000, attrs)
}

// RecordCriticalProducts sets the current number of critical products.
func (bm *BusinessMetrics) RecordCriticalProducts(ctx context.Context, count int) {
	if bm == nil {
		return
	}
	bm.criticalProducts.Record(ctx, int64(count))
}

// RecordConversion counts a conversion. kind is identity, base or cross.
func (bm *BusinessMetrics) RecordConversion(ctx context.Context, kind, from, to string) {
	if bm == nil {
		return
	}
	bm.conversions.Add(ctx, 1, metric.WithAttributes(
		AttrConversionKind.String(kind),
		AttrFromCurrency.String(from),
		AttrToCurrency.String(to),
	))
}

// RecordRateUpsert counts an ingested rate.
func (bm *BusinessMetrics) RecordRateUpsert(ctx context.Context, source string) {
	if bm == nil {
		return
	}
	bm.rateUpserts.Add(ctx, 1, metric.WithAttributes(AttrRateSource.String(source)))
}

// RecordBaseSwitch counts a base currency change.
func (bm *BusinessMetrics) RecordBaseSwitch(ctx context.Context) {
	if bm == nil {
		return
	}
	bm.baseSwitches.Add(ctx, 1)
}

// MetricsError reports an instrument that could not be created.
type MetricsError struct {
	Instrument string
	Err        error
}

func (e *MetricsError) Error() string {
	return fmt.Sprintf("failed to create metric %s: %v", e.Instrument, e.Err)
}

func (e *MetricsError) Unwrap() error {
	return e.Err
}
