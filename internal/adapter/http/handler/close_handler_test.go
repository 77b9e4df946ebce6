package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finvision/corpledger/internal/adapter/http/dto"
	"github.com/finvision/corpledger/internal/domain"
)

type closeServiceStub struct {
	closeFn func(ctx context.Context, now time.Time) (*domain.ArchiveRecord, bool, error)
}

func (s *closeServiceStub) CloseIfDue(ctx context.Context, now time.Time) (*domain.ArchiveRecord, bool, error) {
	return s.closeFn(ctx, now)
}

type archiveServiceStub struct {
	listFn func(ctx context.Context) ([]*domain.ArchiveRecord, error)
	getFn  func(ctx context.Context, label string) (*domain.ArchiveRecord, error)
}

func (s *archiveServiceStub) List(ctx context.Context) ([]*domain.ArchiveRecord, error) {
	return s.listFn(ctx)
}

func (s *archiveServiceStub) Get(ctx context.Context, label string) (*domain.ArchiveRecord, error) {
	return s.getFn(ctx, label)
}

func TestCloseHandler_Close_Performed(t *testing.T) {
	record := &domain.ArchiveRecord{
		Period:        "2026-01",
		Incomes:       []domain.Entry{{ID: "i1", Amount: decimal.NewFromInt(5000)}},
		Expenses:      []domain.Entry{{ID: "e1", Amount: decimal.NewFromInt(2000)}},
		EndingBalance: decimal.NewFromInt(3000),
		ArchivedAt:    time.Now().UTC(),
	}

	handler := NewCloseHandler(&closeServiceStub{
		closeFn: func(ctx context.Context, now time.Time) (*domain.ArchiveRecord, bool, error) {
			return record, true, nil
		},
	}, &archiveServiceStub{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/close", nil)
	w := httptest.NewRecorder()

	handler.Close(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.CloseResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.Closed)
	require.NotNil(t, resp.Archive)
	assert.Equal(t, "2026-01", resp.Archive.Period)
	assert.Len(t, resp.Archive.Incomes, 1)
	assert.Len(t, resp.Archive.Expenses, 1)
}

func TestCloseHandler_Close_NotDue(t *testing.T) {
	handler := NewCloseHandler(&closeServiceStub{
		closeFn: func(ctx context.Context, now time.Time) (*domain.ArchiveRecord, bool, error) {
			return nil, false, nil
		},
	}, &archiveServiceStub{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/close", nil)
	w := httptest.NewRecorder()

	handler.Close(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.CloseResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.False(t, resp.Closed)
	assert.Nil(t, resp.Archive)
}

func TestCloseHandler_ListArchives(t *testing.T) {
	handler := NewCloseHandler(&closeServiceStub{}, &archiveServiceStub{
		listFn: func(ctx context.Context) ([]*domain.ArchiveRecord, error) {
			return []*domain.ArchiveRecord{
				{Period: "2026-02", EndingBalance: decimal.NewFromInt(200)},
				{Period: "2026-01", EndingBalance: decimal.NewFromInt(100)},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/archives", nil)
	w := httptest.NewRecorder()

	handler.ListArchives(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []*dto.ArchiveResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "2026-02", resp[0].Period)
}

func TestCloseHandler_GetArchive_NotFound(t *testing.T) {
	handler := NewCloseHandler(&closeServiceStub{}, &archiveServiceStub{
		getFn: func(ctx context.Context, label string) (*domain.ArchiveRecord, error) {
			return nil, domain.ErrArchiveNotFound
		},
	})

	router := chi.NewRouter()
	router.Get("/api/v1/archives/{period}", handler.GetArchive)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/archives/1999-01", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
