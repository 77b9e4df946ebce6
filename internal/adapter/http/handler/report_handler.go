package handler

import (
	"context"
	"net/http"

	"github.com/finvision/corpledger/internal/domain"
	"github.com/finvision/corpledger/internal/infrastructure/metrics"
)

// ReportService defines the behavior needed by ReportHandler.
type ReportService interface {
	BuildReport(ctx context.Context, from, to string) (*domain.Report, error)
}

// ReportHandler handles report HTTP requests.
type ReportHandler struct {
	reportUC ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportUC ReportService) *ReportHandler {
	return &ReportHandler{reportUC: reportUC}
}

// Get builds the report for the requested date range. The report value is
// the wire format; rendering it (HTML, PDF) is the consumer's concern.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, "missing date range", "from and to query parameters are required")
		return
	}

	report, err := h.reportUC.BuildReport(r.Context(), from, to)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to build report", err.Error())
		return
	}

	metrics.ReportsBuilt.Inc()
	writeJSON(w, http.StatusOK, report)
}
