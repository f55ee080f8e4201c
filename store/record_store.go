package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"kuesioner/models"
)

// DefaultKey is the slot the questionnaire has always used.
const DefaultKey = "kuesioner_responses"

// RecordStore is the append-only log of submitted responses. There is no
// update or delete path.
type RecordStore struct {
	storage Storage
	key     string
	now     func() time.Time
	logger  *zap.Logger
	onAdd   func()

	mu sync.Mutex
}

type Option func(*RecordStore)

// WithKey overrides the slot name.
func WithKey(key string) Option {
	return func(s *RecordStore) {
		if key != "" {
			s.key = key
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *RecordStore) { s.now = now }
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *RecordStore) { s.logger = logger }
}

// WithAppendHook registers fn to run after every successful append.
func WithAppendHook(fn func()) Option {
	return func(s *RecordStore) { s.onAdd = fn }
}

func NewRecordStore(storage Storage, opts ...Option) *RecordStore {
	s := &RecordStore{
		storage: storage,
		key:     DefaultKey,
		now:     time.Now,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the slot name.
func (s *RecordStore) Key() string {
	return s.key
}

// Append stamps record with the current time and adds it to the slot.
// On any fault the slot keeps its previous content and an error is
// returned; a corrupted slot is never overwritten.
func (s *RecordStore) Append(ctx context.Context, record models.ResponseRecord) (models.ResponseRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx)
	if err != nil {
		s.logger.Error("append response: read slot", zap.String("key", s.key), zap.Error(err))
		return nil, err
	}

	stamped := record.Stamped(s.now())
	records = append(records, stamped)

	b, err := json.Marshal(records)
	if err != nil {
		s.logger.Error("append response: encode", zap.String("key", s.key), zap.Error(err))
		return nil, fmt.Errorf("encode responses: %w", err)
	}
	if err := s.storage.Set(ctx, s.key, string(b)); err != nil {
		s.logger.Error("append response: write slot", zap.String("key", s.key), zap.Error(err))
		return nil, fmt.Errorf("write responses: %w", err)
	}

	s.logger.Debug("response appended", zap.String("key", s.key), zap.Int("count", len(records)))
	if s.onAdd != nil {
		s.onAdd()
	}
	return stamped.Clone(), nil
}

// ReadAll returns every stored record in insertion order. A missing,
// unreadable or corrupted slot reads as empty.
func (s *RecordStore) ReadAll(ctx context.Context) []models.ResponseRecord {
	records, err := s.load(ctx)
	if err != nil {
		s.logger.Warn("read responses", zap.String("key", s.key), zap.Error(err))
		return []models.ResponseRecord{}
	}
	return records
}

func (s *RecordStore) load(ctx context.Context) ([]models.ResponseRecord, error) {
	raw, found, err := s.storage.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("read responses: %w", err)
	}
	if !found || strings.TrimSpace(raw) == "" {
		return []models.ResponseRecord{}, nil
	}

	var records []models.ResponseRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}
	if records == nil {
		// "null" in the slot
		records = []models.ResponseRecord{}
	}
	return records, nil
}
