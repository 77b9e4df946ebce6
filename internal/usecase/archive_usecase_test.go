package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finvision/corpledger/internal/domain"
	"github.com/finvision/corpledger/internal/usecase"
	"github.com/finvision/corpledger/internal/usecase/mocks"
)

func TestArchiveUseCase_ListAndGet(t *testing.T) {
	store := mocks.NewMockDocumentStore()
	ctx := context.Background()

	for _, period := range []string{"2026-01", "2026-02", "2025-12"} {
		err := store.SaveArchive(ctx, &domain.ArchiveRecord{
			Period:        period,
			EndingBalance: decimal.NewFromInt(100),
			ArchivedAt:    time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("save archive: %v", err)
		}
	}

	uc := usecase.NewArchiveUseCase(store)

	records, err := uc.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 archives, got %d", len(records))
	}
	if records[0].Period != "2026-02" || records[2].Period != "2025-12" {
		t.Errorf("expected most recent first, got [%s, %s, %s]",
			records[0].Period, records[1].Period, records[2].Period)
	}

	record, err := uc.Get(ctx, "2026-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Period != "2026-01" {
		t.Errorf("period = %q", record.Period)
	}
}

func TestArchiveUseCase_GetMissing(t *testing.T) {
	uc := usecase.NewArchiveUseCase(mocks.NewMockDocumentStore())

	_, err := uc.Get(context.Background(), "1999-01")
	if !errors.Is(err, domain.ErrArchiveNotFound) {
		t.Errorf("expected ErrArchiveNotFound, got %v", err)
	}
}
