package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/finvision/corpledger/internal/domain"
)

const (
	keyPrefix     = "corporate:"
	docKey        = keyPrefix + "data"
	lastClosedKey = keyPrefix + "last_closed"
	carryKey      = keyPrefix + "carry_balance"
	archivePrefix = keyPrefix + "history:"
)

// Store implements usecase.DocumentStore on PostgreSQL. The layout mirrors
// the KV contract: one documents table, one row per fixed key, jsonb values.
type Store struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewStore creates a new Store.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		pool:    pool,
		retrier: NewRetrier(),
	}
}

// Ping reports whether the backing database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.pool.QueryRow(ctx,
		`SELECT value FROM documents WHERE key = $1`, key,
	).Scan(&value)
	return value, err
}

func (s *Store) set(ctx context.Context, key string, value []byte) error {
	return s.retrier.Retry(ctx, func() error {
		_, err := s.pool.Exec(ctx,
			`INSERT INTO documents (key, value, updated_at)
			 VALUES ($1, $2, now())
			 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
			key, value,
		)
		return err
	})
}

// LoadDocument returns the current document, bootstrapping and persisting
// the default document when none is stored yet.
func (s *Store) LoadDocument(ctx context.Context) (*domain.Document, error) {
	raw, err := s.get(ctx, docKey)
	if errors.Is(err, pgx.ErrNoRows) {
		doc := domain.DefaultDocument()
		if err := s.SaveDocument(ctx, doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	return decodeDocument(raw)
}

// SaveDocument writes the whole document back under its fixed key.
func (s *Store) SaveDocument(ctx context.Context, doc *domain.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := s.set(ctx, docKey, raw); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

func (s *Store) LastClosedPeriod(ctx context.Context) (string, error) {
	raw, err := s.get(ctx, lastClosedKey)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load last closed period: %w", err)
	}
	var label string
	if err := json.Unmarshal(raw, &label); err != nil {
		return "", fmt.Errorf("%w: last closed period", domain.ErrCorruptDocument)
	}
	return label, nil
}

func (s *Store) SetLastClosedPeriod(ctx context.Context, label string) error {
	raw, _ := json.Marshal(label)
	if err := s.set(ctx, lastClosedKey, raw); err != nil {
		return fmt.Errorf("save last closed period: %w", err)
	}
	return nil
}

func (s *Store) CarriedBalance(ctx context.Context) (decimal.Decimal, error) {
	raw, err := s.get(ctx, carryKey)
	if errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("load carried balance: %w", err)
	}
	var balance decimal.Decimal
	if err := json.Unmarshal(raw, &balance); err != nil {
		return decimal.Zero, fmt.Errorf("%w: carried balance", domain.ErrCorruptDocument)
	}
	return balance, nil
}

func (s *Store) SetCarriedBalance(ctx context.Context, balance decimal.Decimal) error {
	raw, err := json.Marshal(balance)
	if err != nil {
		return fmt.Errorf("encode carried balance: %w", err)
	}
	if err := s.set(ctx, carryKey, raw); err != nil {
		return fmt.Errorf("save carried balance: %w", err)
	}
	return nil
}

func (s *Store) SaveArchive(ctx context.Context, record *domain.ArchiveRecord) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode archive: %w", err)
	}
	if err := s.set(ctx, archivePrefix+record.Period, raw); err != nil {
		return fmt.Errorf("save archive %s: %w", record.Period, err)
	}
	return nil
}

func (s *Store) GetArchive(ctx context.Context, label string) (*domain.ArchiveRecord, error) {
	raw, err := s.get(ctx, archivePrefix+label)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrArchiveNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load archive %s: %w", label, err)
	}
	return decodeArchive(raw)
}

// ListArchives returns all archives, most recent period first.
func (s *Store) ListArchives(ctx context.Context) ([]*domain.ArchiveRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT value FROM documents WHERE key LIKE $1`, archivePrefix+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("list archives: %w", err)
	}
	defer rows.Close()

	var records []*domain.ArchiveRecord
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("list archives: %w", err)
		}
		record, err := decodeArchive(raw)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list archives: %w", err)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Period > records[j].Period
	})
	return records, nil
}

func decodeDocument(raw []byte) (*domain.Document, error) {
	var doc domain.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptDocument, err)
	}
	if doc.SchemaVersion != domain.SchemaVersion {
		return nil, fmt.Errorf("%w: version %d", domain.ErrUnsupportedSchema, doc.SchemaVersion)
	}
	return &doc, nil
}

func decodeArchive(raw []byte) (*domain.ArchiveRecord, error) {
	var record domain.ArchiveRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptDocument, err)
	}
	return &record, nil
}
