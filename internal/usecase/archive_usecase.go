package usecase

import (
	"context"

	"github.com/finvision/corpledger/internal/domain"
)

// ArchiveUseCase reads closed-period archives.
type ArchiveUseCase struct {
	store DocumentStore
}

// NewArchiveUseCase creates a new ArchiveUseCase.
func NewArchiveUseCase(store DocumentStore) *ArchiveUseCase {
	return &ArchiveUseCase{store: store}
}

// List returns all archives, most recent period first.
func (uc *ArchiveUseCase) List(ctx context.Context) ([]*domain.ArchiveRecord, error) {
	return uc.store.ListArchives(ctx)
}

// Get returns the archive for a period label.
func (uc *ArchiveUseCase) Get(ctx context.Context, label string) (*domain.ArchiveRecord, error) {
	return uc.store.GetArchive(ctx, label)
}
