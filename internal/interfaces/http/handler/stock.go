package handler

import (
	"net/http"
	"strings"

	inventoryapp "github.com/bizops/backend/internal/application/inventory"
	"github.com/bizops/backend/internal/infrastructure/storage"
	"github.com/gin-gonic/gin"
)

// ReportReader serves stored reports back to clients
type ReportReader interface {
	Get(key string) (storage.Object, bool)
}

// StockHandler handles the movement ledger and critical stock alerts
type StockHandler struct {
	BaseHandler
	ledger   *inventoryapp.StockLedger
	exporter *inventoryapp.AlertExporter
	reports  ReportReader
}

// NewStockHandler creates a new StockHandler. reports may be nil when the
// exports live in object storage.
func NewStockHandler(ledger *inventoryapp.StockLedger, exporter *inventoryapp.AlertExporter, reports ReportReader) *StockHandler {
	return &StockHandler{ledger: ledger, exporter: exporter, reports: reports}
}

// RecordMovement godoc
// @ID           recordMovement
// @Summary      Record a stock movement
// @Description  Appends a movement to the product's ledger. Outbound movements larger than the current stock are rejected and nothing is written. Transfers do not change the product's total.
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Replays the first response for retried requests"
// @Param        request body inventoryapp.RecordMovementRequest true "Movement"
// @Success      201 {object} APIResponse[inventoryapp.MovementResult]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse "Insufficient stock"
// @Router       /inventory/movements [post]
func (h *StockHandler) RecordMovement(c *gin.Context) {
	var req inventoryapp.RecordMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	result, err := h.ledger.RecordMovement(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, result)
}

// Alerts godoc
// @ID           listCriticalAlerts
// @Summary      List critical stock alerts
// @Description  Active products whose stock is at or below their critical level, smallest shortage first.
// @Tags         stock
// @Produce      json
// @Success      200 {object} APIResponse[[]inventoryapp.AlertResponse]
// @Router       /inventory/alerts [get]
func (h *StockHandler) Alerts(c *gin.Context) {
	alerts, err := h.ledger.CriticalAlerts(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	responses := make([]inventoryapp.AlertResponse, len(alerts))
	for i := range alerts {
		responses[i] = inventoryapp.ToAlertResponse(alerts[i])
	}
	h.Success(c, responses)
}

// ExportAlerts godoc
// @ID           exportCriticalAlerts
// @Summary      Export critical stock alerts as CSV
// @Description  Uploads the current alerts and returns a time-limited download link.
// @Tags         stock
// @Produce      json
// @Param        Idempotency-Key header string false "Replays the first response for retried requests"
// @Success      201 {object} APIResponse[inventoryapp.AlertExportResponse]
// @Failure      500 {object} ErrorResponse
// @Router       /inventory/alerts/export [post]
func (h *StockHandler) ExportAlerts(c *gin.Context) {
	resp, err := h.exporter.Export(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, resp)
}

// DownloadExport godoc
// @ID           downloadAlertExport
// @Summary      Download an exported alert report
// @Description  Only available when reports are kept in process memory.
// @Tags         stock
// @Produce      text/csv
// @Param        key path string true "Report key"
// @Success      200 {file} file
// @Failure      404 {object} ErrorResponse
// @Router       /inventory/alerts/exports/{key} [get]
func (h *StockHandler) DownloadExport(c *gin.Context) {
	if h.reports == nil {
		h.NotFound(c, "Report downloads are served by object storage")
		return
	}
	key := strings.TrimPrefix(c.Param("key"), "/")
	obj, ok := h.reports.Get(key)
	if !ok {
		h.NotFound(c, "Report not found")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+key[strings.LastIndex(key, "/")+1:]+`"`)
	c.Data(http.StatusOK, obj.ContentType, obj.Data)
}
