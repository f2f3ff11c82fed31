// Package store keeps one kind's records in memory and mirrors every
// successful mutation to that kind's snapshot.
package store

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/thenoetrevino/fete/internal/models"
	"github.com/thenoetrevino/fete/internal/storage"
)

// DocumentVersion is the snapshot schema version written by this package
const DocumentVersion = 1

// Document is the encoded form of a kind's snapshot
type Document[P any] struct {
	Version   int          `json:"version" yaml:"version"`
	Kind      models.Kind  `json:"kind" yaml:"kind"`
	UpdatedAt time.Time    `json:"updated_at" yaml:"updated_at"`
	UpdatedBy string       `json:"updated_by,omitempty" yaml:"updated_by,omitempty"`
	Records   map[string]P `json:"records" yaml:"records"`
}

// Recorder receives persistence measurements; satisfied by *metrics.Metrics
type Recorder interface {
	ObservePersist(kind string, d time.Duration, err error)
	SetRecords(kind string, n int)
}

// validator is implemented by payloads with fields that need checking
type validator interface {
	Validate() error
}

// cloner is implemented by payloads holding reference types
type cloner[P any] interface {
	Clone() P
}

type settings struct {
	logger   *zap.Logger
	retry    RetryPolicy
	recorder Recorder
	author   string
	now      func() time.Time
}

// Option configures a Store
type Option func(*settings)

// WithLogger sets the logger; defaults to a no-op logger
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRetry overrides the save retry policy
func WithRetry(p RetryPolicy) Option {
	return func(s *settings) { s.retry = p }
}

// WithRecorder reports persist timings and record counts
func WithRecorder(r Recorder) Option {
	return func(s *settings) { s.recorder = r }
}

// WithAuthor sets the updated_by value written into snapshots
func WithAuthor(name string) Option {
	return func(s *settings) { s.author = name }
}

// WithClock replaces time.Now for snapshot timestamps
func WithClock(now func() time.Time) Option {
	return func(s *settings) { s.now = now }
}

// Store holds the ID -> payload mapping of a single kind.
// All methods are safe for concurrent use.
type Store[P any] struct {
	mu      sync.Mutex
	kind    models.Kind
	records map[string]P
	backend storage.Backend
	codec   storage.Codec
	settings
}

// New returns an empty store; call Load to read the existing snapshot
func New[P any](kind models.Kind, backend storage.Backend, codec storage.Codec, opts ...Option) *Store[P] {
	s := &Store[P]{
		kind:    kind,
		records: make(map[string]P),
		backend: backend,
		codec:   codec,
		settings: settings{
			logger: zap.NewNop(),
			retry:  DefaultRetry(),
			now:    time.Now,
		},
	}
	for _, opt := range opts {
		opt(&s.settings)
	}
	s.logger = s.logger.With(zap.String("kind", string(kind)))
	return s
}

// Kind returns the kind this store holds
func (s *Store[P]) Kind() models.Kind { return s.kind }

// Load replaces the in-memory mapping with the kind's snapshot.
// A missing snapshot leaves the store empty and is not an error.
func (s *Store[P]) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.backend.Load(ctx, s.kind.Plural())
	if errors.Is(err, storage.ErrNotExist) {
		s.records = make(map[string]P)
		s.logger.Debug("no snapshot found, starting empty")
		s.recordCount()
		return nil
	}
	if err != nil {
		return &PersistenceError{Kind: s.kind, Op: "load", Err: err}
	}

	var doc Document[P]
	if err := s.codec.Unmarshal(data, &doc); err != nil {
		return &PersistenceError{Kind: s.kind, Op: "load", Err: fmt.Errorf("decode %s snapshot: %w", s.codec.Name(), err)}
	}
	if doc.Version > DocumentVersion {
		return &PersistenceError{Kind: s.kind, Op: "load", Err: fmt.Errorf("snapshot version %d is newer than supported version %d", doc.Version, DocumentVersion)}
	}
	if doc.Kind != "" && doc.Kind != s.kind {
		return &PersistenceError{Kind: s.kind, Op: "load", Err: fmt.Errorf("snapshot holds %s records", doc.Kind)}
	}

	if doc.Records == nil {
		doc.Records = make(map[string]P)
	}
	s.records = doc.Records
	s.logger.Debug("snapshot loaded", zap.Int("records", len(s.records)))
	s.recordCount()
	return nil
}

// Add inserts payload under id and persists the kind.
// The mapping is left untouched when id exists or the save fails.
func (s *Store[P]) Add(ctx context.Context, id string, payload P) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkLocked(id, payload); err != nil {
		return err
	}

	s.records[id] = s.clone(payload)
	if err := s.persistLocked(ctx); err != nil {
		delete(s.records, id)
		return err
	}

	s.logger.Info("record added", zap.String("id", id))
	return nil
}

// Check reports the error Add would return for id and payload before
// persisting: ErrEmptyID, an InvalidValueError or a DuplicateKeyError.
func (s *Store[P]) Check(id string, payload P) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkLocked(id, payload)
}

func (s *Store[P]) checkLocked(id string, payload P) error {
	if strings.TrimSpace(id) == "" {
		return ErrEmptyID
	}
	if !utf8.ValidString(id) {
		return &InvalidValueError{Kind: s.kind, ID: id, Field: "ID", Reason: models.ReasonNotUTF8}
	}
	switch p := any(payload).(type) {
	case string:
		if !utf8.ValidString(p) {
			return &InvalidValueError{Kind: s.kind, ID: id, Field: "name", Reason: models.ReasonNotUTF8}
		}
	case validator:
		if err := p.Validate(); err != nil {
			var fe *models.FieldError
			if errors.As(err, &fe) {
				return &InvalidValueError{Kind: s.kind, ID: id, Field: fe.Field, Reason: fe.Reason}
			}
			return &InvalidValueError{Kind: s.kind, ID: id, Field: "payload", Reason: err.Error()}
		}
	}
	if _, ok := s.records[id]; ok {
		return &DuplicateKeyError{Kind: s.kind, ID: id}
	}
	return nil
}

// Delete removes id and persists the kind
func (s *Store[P]) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.records[id]
	if !ok {
		return &NotFoundError{Kind: s.kind, ID: id}
	}

	delete(s.records, id)
	if err := s.persistLocked(ctx); err != nil {
		s.records[id] = prev
		return err
	}

	s.logger.Info("record deleted", zap.String("id", id))
	return nil
}

// Get returns a copy of the payload stored under id
func (s *Store[P]) Get(id string) (P, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.records[id]
	if !ok {
		var zero P
		return zero, &NotFoundError{Kind: s.kind, ID: id}
	}
	return s.clone(p), nil
}

// Persist writes the full mapping to the kind's snapshot
func (s *Store[P]) Persist(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLocked(ctx)
}

// Len returns the number of records
func (s *Store[P]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Contains reports whether id is present
func (s *Store[P]) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.records[id]
	return ok
}

// Each calls fn for every record in ID order until fn returns false.
// fn must not call back into the store.
func (s *Store[P]) Each(fn func(id string, payload P) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range slices.Sorted(maps.Keys(s.records)) {
		if !fn(id, s.clone(s.records[id])) {
			return
		}
	}
}

func (s *Store[P]) persistLocked(ctx context.Context) error {
	doc := Document[P]{
		Version:   DocumentVersion,
		Kind:      s.kind,
		UpdatedAt: s.now().UTC().Truncate(time.Second),
		UpdatedBy: s.author,
		Records:   s.records,
	}
	data, err := s.codec.Marshal(doc)
	if err != nil {
		return &PersistenceError{Kind: s.kind, Op: "save", Err: fmt.Errorf("encode %s snapshot: %w", s.codec.Name(), err)}
	}

	start := time.Now()
	err = s.retry.Do(ctx, s.logger, func(ctx context.Context) error {
		return s.backend.Save(ctx, s.kind.Plural(), data)
	})
	if s.recorder != nil {
		s.recorder.ObservePersist(string(s.kind), time.Since(start), err)
	}
	if err != nil {
		s.logger.Error("snapshot save failed",
			zap.String("backend", s.backend.Name()),
			zap.Error(err))
		return &PersistenceError{Kind: s.kind, Op: "save", Err: err}
	}

	s.recordCount()
	return nil
}

func (s *Store[P]) recordCount() {
	if s.recorder != nil {
		s.recorder.SetRecords(string(s.kind), len(s.records))
	}
}

func (s *Store[P]) clone(p P) P {
	if c, ok := any(p).(cloner[P]); ok {
		return c.Clone()
	}
	return p
}
