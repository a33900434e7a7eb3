package inventory

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AlertStorage stores exported alert reports.
// Implemented by the infrastructure layer (S3 or a local stub).
type AlertStorage interface {
	// Upload writes data under key
	Upload(ctx context.Context, key string, data []byte, contentType string) error

	// GenerateDownloadURL returns a presigned URL for key and its expiry
	GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, time.Time, error)
}

// AlertExporterConfig holds configuration for the alert exporter
type AlertExporterConfig struct {
	KeyPrefix         string
	DownloadURLExpiry time.Duration
}

// DefaultAlertExporterConfig returns the default exporter configuration
func DefaultAlertExporterConfig() AlertExporterConfig {
	return AlertExporterConfig{
		KeyPrefix:         "alerts",
		DownloadURLExpiry: 15 * time.Minute,
	}
}

var alertCSVHeader = []string{
	"product_id", "product_code", "product_name",
	"current_stock", "critical_stock_level", "shortage",
}

// AlertExporter snapshots the critical stock alerts into a CSV report
type AlertExporter struct {
	ledger  *StockLedger
	storage AlertStorage
	config  AlertExporterConfig
	logger  *zap.Logger
	now     func() time.Time
	newID   func() string
}

// NewAlertExporter creates a new AlertExporter
func NewAlertExporter(ledger *StockLedger, storage AlertStorage, config AlertExporterConfig, logger *zap.Logger) *AlertExporter {
	if config.KeyPrefix == "" {
		config.KeyPrefix = DefaultAlertExporterConfig().KeyPrefix
	}
	if config.DownloadURLExpiry <= 0 {
		config.DownloadURLExpiry = DefaultAlertExporterConfig().DownloadURLExpiry
	}
	return &AlertExporter{
		ledger:  ledger,
		storage: storage,
		config:  config,
		logger:  logger,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Export uploads the current alerts and returns a download link
func (e *AlertExporter) Export(ctx context.Context) (*AlertExportResponse, error) {
	alerts, err := e.ledger.CriticalAlerts(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(alertCSVHeader); err != nil {
		return nil, err
	}
	for _, a := range alerts {
		record := []string{
			a.ProductID.String(),
			csvCell(a.ProductCode),
			csvCell(a.ProductName),
			strconv.FormatInt(a.CurrentStock, 10),
			strconv.FormatInt(a.CriticalStockLevel, 10),
			strconv.FormatInt(a.Shortage, 10),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	generatedAt := e.now().UTC()
	key := fmt.Sprintf("%s/critical-%s-%s.csv", e.config.KeyPrefix, generatedAt.Format("20060102T150405Z"), e.newID())
	if err := e.storage.Upload(ctx, key, buf.Bytes(), "text/csv"); err != nil {
		e.logger.Error("Failed to upload alert report", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("upload alert report: %w", err)
	}

	url, expires, err := e.storage.GenerateDownloadURL(ctx, key, e.config.DownloadURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("generate download url: %w", err)
	}

	e.logger.Info("Alert report exported",
		zap.String("key", key),
		zap.Int("alert_count", len(alerts)))
	return &AlertExportResponse{
		Key:         key,
		URL:         url,
		URLExpires:  expires,
		AlertCount:  len(alerts),
		GeneratedAt: generatedAt,
	}, nil
}

// csvCell quotes a leading formula character so spreadsheets read the cell as text.
func csvCell(s string) string {
	if s != "" && strings.ContainsRune("=+-@", rune(s[0])) {
		return "'" + s
	}
	return s
}
