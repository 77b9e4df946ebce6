package mocks

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/finvision/corpledger/internal/domain"
)

// MockDocumentStore is an in-memory implementation of usecase.DocumentStore.
// Default behavior mimics a real store (bootstrap on first load, archives
// keyed by period); set the Func fields to override individual calls.
type MockDocumentStore struct {
	mu         sync.RWMutex
	document   *domain.Document
	lastClosed string
	carried    decimal.Decimal
	archives   map[string]*domain.ArchiveRecord

	LoadDocumentFunc        func(ctx context.Context) (*domain.Document, error)
	SaveDocumentFunc        func(ctx context.Context, doc *domain.Document) error
	LastClosedPeriodFunc    func(ctx context.Context) (string, error)
	SetLastClosedPeriodFunc func(ctx context.Context, label string) error
	CarriedBalanceFunc      func(ctx context.Context) (decimal.Decimal, error)
	SetCarriedBalanceFunc   func(ctx context.Context, balance decimal.Decimal) error
	SaveArchiveFunc         func(ctx context.Context, record *domain.ArchiveRecord) error
	GetArchiveFunc          func(ctx context.Context, label string) (*domain.ArchiveRecord, error)
	ListArchivesFunc        func(ctx context.Context) ([]*domain.ArchiveRecord, error)
}

func NewMockDocumentStore() *MockDocumentStore {
	return &MockDocumentStore{
		carried:  decimal.Zero,
		archives: make(map[string]*domain.ArchiveRecord),
	}
}

func (m *MockDocumentStore) LoadDocument(ctx context.Context) (*domain.Document, error) {
	if m.LoadDocumentFunc != nil {
		return m.LoadDocumentFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.document == nil {
		m.document = domain.DefaultDocument()
	}
	copied := *m.document
	return &copied, nil
}

func (m *MockDocumentStore) SaveDocument(ctx context.Context, doc *domain.Document) error {
	if m.SaveDocumentFunc != nil {
		return m.SaveDocumentFunc(ctx, doc)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *doc
	m.document = &copied
	return nil
}

func (m *MockDocumentStore) LastClosedPeriod(ctx context.Context) (string, error) {
	if m.LastClosedPeriodFunc != nil {
		return m.LastClosedPeriodFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastClosed, nil
}

func (m *MockDocumentStore) SetLastClosedPeriod(ctx context.Context, label string) error {
	if m.SetLastClosedPeriodFunc != nil {
		return m.SetLastClosedPeriodFunc(ctx, label)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastClosed = label
	return nil
}

func (m *MockDocumentStore) CarriedBalance(ctx context.Context) (decimal.Decimal, error) {
	if m.CarriedBalanceFunc != nil {
		return m.CarriedBalanceFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.carried, nil
}

func (m *MockDocumentStore) SetCarriedBalance(ctx context.Context, balance decimal.Decimal) error {
	if m.SetCarriedBalanceFunc != nil {
		return m.SetCarriedBalanceFunc(ctx, balance)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.carried = balance
	return nil
}

func (m *MockDocumentStore) SaveArchive(ctx context.Context, record *domain.ArchiveRecord) error {
	if m.SaveArchiveFunc != nil {
		return m.SaveArchiveFunc(ctx, record)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *record
	m.archives[record.Period] = &copied
	return nil
}

func (m *MockDocumentStore) GetArchive(ctx context.Context, label string) (*domain.ArchiveRecord, error) {
	if m.GetArchiveFunc != nil {
		return m.GetArchiveFunc(ctx, label)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if rec, ok := m.archives[label]; ok {
		return rec, nil
	}
	return nil, domain.ErrArchiveNotFound
}

func (m *MockDocumentStore) ListArchives(ctx context.Context) ([]*domain.ArchiveRecord, error) {
	if m.ListArchivesFunc != nil {
		return m.ListArchivesFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	records := make([]*domain.ArchiveRecord, 0, len(m.archives))
	for _, rec := range m.archives {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Period > records[j].Period
	})
	return records, nil
}

// ArchiveCount returns the number of stored archives.
func (m *MockDocumentStore) ArchiveCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.archives)
}

// SequenceIDGenerator generates deterministic sequential IDs for tests.
type SequenceIDGenerator struct {
	mu   sync.Mutex
	next int

	GenerateFunc func() string
}

func NewSequenceIDGenerator() *SequenceIDGenerator {
	return &SequenceIDGenerator{}
}

func (g *SequenceIDGenerator) Generate() string {
	if g.GenerateFunc != nil {
		return g.GenerateFunc()
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("id-%04d", g.next)
}
