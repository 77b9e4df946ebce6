package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finvision/corpledger/internal/domain"
)

// CloseUseCase performs the monthly close: archive the outgoing period,
// reset the current entry lists and carry the ending balance forward.
type CloseUseCase struct {
	store DocumentStore
}

// NewCloseUseCase creates a new CloseUseCase.
func NewCloseUseCase(store DocumentStore) *CloseUseCase {
	return &CloseUseCase{store: store}
}

// CloseIfDue runs the close when now's calendar period differs from the
// last-closed label. It returns the archive record it wrote and whether a
// close happened; a second invocation in the same period is a no-op.
//
// The last-closed label is advanced only after every other write succeeded,
// so a failed close re-runs in full on the next invocation. Re-running
// before the label advances recomputes identical state from the unchanged
// document; after the label advances the close for that period never runs
// again. If more than one period elapsed between invocations, the gap is
// absorbed into a single archive keyed by the previous label.
func (uc *CloseUseCase) CloseIfDue(ctx context.Context, now time.Time) (*domain.ArchiveRecord, bool, error) {
	current := domain.PeriodLabel(now)

	last, err := uc.store.LastClosedPeriod(ctx)
	if err != nil {
		return nil, false, err
	}
	if last == current {
		return nil, false, nil
	}

	doc, err := uc.store.LoadDocument(ctx)
	if err != nil {
		return nil, false, err
	}

	ending := doc.Balance()

	label := last
	if label == "" {
		label = domain.InitialPeriodLabel
	}
	record := &domain.ArchiveRecord{
		Period:        label,
		Incomes:       doc.Incomes,
		Expenses:      doc.Expenses,
		EndingBalance: ending,
		ArchivedAt:    now.UTC(),
	}
	if err := uc.store.SaveArchive(ctx, record); err != nil {
		return nil, false, err
	}

	doc.Incomes = []domain.Entry{}
	doc.Expenses = []domain.Entry{}
	doc.OpeningBalance = ending
	if len(doc.Accounts) > 0 {
		// The first account carries the full ending balance; the remaining
		// opening balances were consumed by it and are reset, keeping the
		// new opening total equal to the outgoing ending balance.
		doc.Accounts[0].OpeningBalance = ending
		for i := 1; i < len(doc.Accounts); i++ {
			doc.Accounts[i].OpeningBalance = decimal.Zero
		}
	}
	if err := uc.store.SaveDocument(ctx, doc); err != nil {
		return nil, false, err
	}

	if err := uc.store.SetCarriedBalance(ctx, ending); err != nil {
		return nil, false, err
	}

	if err := uc.store.SetLastClosedPeriod(ctx, current); err != nil {
		return nil, false, err
	}

	return record, true, nil
}
