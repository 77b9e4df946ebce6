package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/finvision/corpledger/internal/adapter/http/dto"
	"github.com/finvision/corpledger/internal/domain"
	"github.com/finvision/corpledger/internal/infrastructure/metrics"
)

// CloseService defines the behavior needed by CloseHandler.
type CloseService interface {
	CloseIfDue(ctx context.Context, now time.Time) (*domain.ArchiveRecord, bool, error)
}

// ArchiveService defines archive read access needed by CloseHandler.
type ArchiveService interface {
	List(ctx context.Context) ([]*domain.ArchiveRecord, error)
	Get(ctx context.Context, label string) (*domain.ArchiveRecord, error)
}

// CloseHandler handles monthly-close and archive HTTP requests.
type CloseHandler struct {
	closeUC   CloseService
	archiveUC ArchiveService
}

// NewCloseHandler creates a new CloseHandler.
func NewCloseHandler(closeUC CloseService, archiveUC ArchiveService) *CloseHandler {
	return &CloseHandler{closeUC: closeUC, archiveUC: archiveUC}
}

// Close triggers the monthly close check. Closing an already-closed period
// reports closed=false; it is not an error.
func (h *CloseHandler) Close(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	record, closed, err := h.closeUC.CloseIfDue(r.Context(), time.Now())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to close period", err.Error())
		return
	}

	resp := dto.CloseResponse{Closed: closed}
	if closed {
		metrics.ClosesPerformed.Inc()
		metrics.CloseDuration.Observe(time.Since(start).Seconds())
		resp.Archive = dto.ArchiveFromDomain(record)
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListArchives lists all archived periods, most recent first.
func (h *CloseHandler) ListArchives(w http.ResponseWriter, r *http.Request) {
	archives, err := h.archiveUC.List(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list archives", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.ArchivesFromDomain(archives))
}

// GetArchive returns one archived period by its label.
func (h *CloseHandler) GetArchive(w http.ResponseWriter, r *http.Request) {
	label := chi.URLParam(r, "period")
	if label == "" {
		writeError(w, http.StatusBadRequest, "missing period label", "")
		return
	}

	archive, err := h.archiveUC.Get(r.Context(), label)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get archive", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.ArchiveFromDomain(archive))
}
