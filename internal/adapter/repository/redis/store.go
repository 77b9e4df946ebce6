package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"
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

// Store implements usecase.DocumentStore on Redis. Each logical document
// lives under one fixed key; archives live under a per-period key.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Store.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Ping reports whether the backing Redis is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// LoadDocument returns the current document, bootstrapping and persisting
// the default document when none is stored yet.
func (s *Store) LoadDocument(ctx context.Context) (*domain.Document, error) {
	raw, err := s.client.Get(ctx, docKey).Bytes()
	if errors.Is(err, redis.Nil) {
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
	if err := s.client.Set(ctx, docKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

func (s *Store) LastClosedPeriod(ctx context.Context) (string, error) {
	label, err := s.client.Get(ctx, lastClosedKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load last closed period: %w", err)
	}
	return label, nil
}

func (s *Store) SetLastClosedPeriod(ctx context.Context, label string) error {
	if err := s.client.Set(ctx, lastClosedKey, label, 0).Err(); err != nil {
		return fmt.Errorf("save last closed period: %w", err)
	}
	return nil
}

func (s *Store) CarriedBalance(ctx context.Context) (decimal.Decimal, error) {
	raw, err := s.client.Get(ctx, carryKey).Result()
	if errors.Is(err, redis.Nil) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("load carried balance: %w", err)
	}
	balance, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: carried balance %q", domain.ErrCorruptDocument, raw)
	}
	return balance, nil
}

func (s *Store) SetCarriedBalance(ctx context.Context, balance decimal.Decimal) error {
	if err := s.client.Set(ctx, carryKey, balance.String(), 0).Err(); err != nil {
		return fmt.Errorf("save carried balance: %w", err)
	}
	return nil
}

func (s *Store) SaveArchive(ctx context.Context, record *domain.ArchiveRecord) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode archive: %w", err)
	}
	if err := s.client.Set(ctx, archivePrefix+record.Period, raw, 0).Err(); err != nil {
		return fmt.Errorf("save archive %s: %w", record.Period, err)
	}
	return nil
}

func (s *Store) GetArchive(ctx context.Context, label string) (*domain.ArchiveRecord, error) {
	raw, err := s.client.Get(ctx, archivePrefix+label).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrArchiveNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load archive %s: %w", label, err)
	}
	return decodeArchive(raw)
}

// ListArchives scans the archive prefix and returns all records, most recent
// period first.
func (s *Store) ListArchives(ctx context.Context) ([]*domain.ArchiveRecord, error) {
	var records []*domain.ArchiveRecord

	iter := s.client.Scan(ctx, 0, archivePrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		raw, err := s.client.Get(ctx, iter.Val()).Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load archive %s: %w", strings.TrimPrefix(iter.Val(), archivePrefix), err)
		}
		record, err := decodeArchive(raw)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan archives: %w", err)
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
