package usecase

import (
	"context"

	"github.com/finvision/corpledger/internal/domain"
)

// ReportUseCase assembles range reports from a document snapshot.
type ReportUseCase struct {
	store DocumentStore
}

// NewReportUseCase creates a new ReportUseCase.
func NewReportUseCase(store DocumentStore) *ReportUseCase {
	return &ReportUseCase{store: store}
}

// BuildReport builds the report for [from, to]. It reads the document and
// the carried balance and mutates neither; it never triggers a close.
func (uc *ReportUseCase) BuildReport(ctx context.Context, from, to string) (*domain.Report, error) {
	if err := domain.ValidateDate(from); err != nil {
		return nil, err
	}
	if err := domain.ValidateDate(to); err != nil {
		return nil, err
	}

	doc, err := uc.store.LoadDocument(ctx)
	if err != nil {
		return nil, err
	}
	carried, err := uc.store.CarriedBalance(ctx)
	if err != nil {
		return nil, err
	}

	return domain.BuildReport(doc, carried, from, to), nil
}
