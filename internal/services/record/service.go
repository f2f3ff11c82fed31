package record

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/thenoetrevino/fete/internal/logging"
	"github.com/thenoetrevino/fete/internal/metrics"
	"github.com/thenoetrevino/fete/internal/models"
	"github.com/thenoetrevino/fete/internal/store"
)

// Service defines every record operation a caller can issue
type Service interface {
	// Write operations
	Add(ctx context.Context, req AddRequest) (*models.Record, error)
	AddEvent(ctx context.Context, req AddEventRequest) (*models.Record, error)
	Delete(ctx context.Context, kind models.Kind, id string) error

	// Read operations
	Get(ctx context.Context, kind models.Kind, id string) (*models.Record, error)
}

// AddRequest encapsulates data for adding a name-keyed record
type AddRequest struct {
	Kind models.Kind
	ID   string
	Name string
}

// AddEventRequest encapsulates data for adding an event
type AddEventRequest struct {
	ID    string
	Event models.Event
}

// NameStore is the store contract for kinds whose payload is a name
type NameStore interface {
	Add(ctx context.Context, id string, name string) error
	Delete(ctx context.Context, id string) error
	Get(id string) (string, error)
	Contains(id string) bool
}

// EventStore is the store contract for the event kind
type EventStore interface {
	Add(ctx context.Context, id string, ev models.Event) error
	Check(id string, ev models.Event) error
	Delete(ctx context.Context, id string) error
	Get(id string) (models.Event, error)
	Contains(id string) bool
	Each(fn func(id string, ev models.Event) bool)
}

// Recorder counts finished operations; satisfied by *metrics.Metrics
type Recorder interface {
	IncOperation(kind, op, outcome string)
}

// Option configures the service
type Option func(*service)

// WithLogger sets the service logger
func WithLogger(l *zap.Logger) Option {
	return func(s *service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRecorder reports operation outcomes
func WithRecorder(r Recorder) Option {
	return func(s *service) { s.recorder = r }
}

// WithStrictReferences makes events reference only existing records
// and blocks deleting records an event still points at
func WithStrictReferences(strict bool) Option {
	return func(s *service) { s.strict = strict }
}

// service implements Service over one store per kind
type service struct {
	names    map[models.Kind]NameStore
	events   EventStore
	logger   *zap.Logger
	recorder Recorder
	strict   bool

	// serializes reference checks with the mutation they guard
	refMu sync.Mutex
}

// NewService creates a record service. names must hold a store for every name kind.
func NewService(names map[models.Kind]NameStore, events EventStore, opts ...Option) Service {
	s := &service{
		names:  names,
		events: events,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add stores a name under a new id
func (s *service) Add(ctx context.Context, req AddRequest) (rec *models.Record, err error) {
	defer func() { s.finish(ctx, req.Kind, "add", req.ID, err) }()

	if req.Kind == models.KindEvent {
		return nil, ErrEventRequiresDetails
	}
	st, err := s.nameStore(req.Kind)
	if err != nil {
		return nil, err
	}

	if err := st.Add(ctx, req.ID, req.Name); err != nil {
		return nil, err
	}
	return &models.Record{Kind: req.Kind, ID: req.ID, Name: req.Name}, nil
}

// AddEvent stores an event under a new id
func (s *service) AddEvent(ctx context.Context, req AddEventRequest) (rec *models.Record, err error) {
	defer func() { s.finish(ctx, models.KindEvent, "add", req.ID, err) }()

	if s.strict {
		s.refMu.Lock()
		defer s.refMu.Unlock()

		// blank ids, unstorable values and duplicates are reported first
		if err := s.events.Check(req.ID, req.Event); err != nil {
			return nil, err
		}
		if err := s.checkReferences(req.ID, req.Event); err != nil {
			return nil, err
		}
	}

	ev := req.Event.Clone()
	if err := s.events.Add(ctx, req.ID, ev); err != nil {
		return nil, err
	}
	return &models.Record{Kind: models.KindEvent, ID: req.ID, Event: &ev}, nil
}

// Delete removes the record of kind stored under id
func (s *service) Delete(ctx context.Context, kind models.Kind, id string) (err error) {
	defer func() { s.finish(ctx, kind, "delete", id, err) }()

	if kind == models.KindEvent {
		return s.events.Delete(ctx, id)
	}
	st, err := s.nameStore(kind)
	if err != nil {
		return err
	}

	if s.strict {
		s.refMu.Lock()
		defer s.refMu.Unlock()

		if eventID, ok := s.referencedBy(kind, id); ok {
			return &ReferenceError{Kind: kind, ID: id, EventID: eventID, Err: ErrStillReferenced}
		}
	}
	return st.Delete(ctx, id)
}

// Get returns the record of kind stored under id
func (s *service) Get(ctx context.Context, kind models.Kind, id string) (rec *models.Record, err error) {
	defer func() { s.finish(ctx, kind, "get", id, err) }()

	if kind == models.KindEvent {
		ev, err := s.events.Get(id)
		if err != nil {
			return nil, err
		}
		return &models.Record{Kind: kind, ID: id, Event: &ev}, nil
	}

	st, err := s.nameStore(kind)
	if err != nil {
		return nil, err
	}
	name, err := st.Get(id)
	if err != nil {
		return nil, err
	}
	return &models.Record{Kind: kind, ID: id, Name: name}, nil
}

func (s *service) nameStore(kind models.Kind) (NameStore, error) {
	st, ok := s.names[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return st, nil
}

// checkReferences verifies every id the event points at exists
func (s *service) checkReferences(eventID string, ev models.Event) error {
	check := func(kind models.Kind, id string) error {
		st, ok := s.names[kind]
		if !ok || !st.Contains(id) {
			return &ReferenceError{Kind: kind, ID: id, EventID: eventID, Err: ErrUnknownReference}
		}
		return nil
	}

	if ev.ClientID != "" {
		if err := check(models.KindClient, ev.ClientID); err != nil {
			return err
		}
	}
	for _, id := range ev.GuestIDs {
		if err := check(models.KindGuest, id); err != nil {
			return err
		}
	}
	for _, id := range ev.SupplierIDs {
		if err := check(models.KindSupplier, id); err != nil {
			return err
		}
	}
	return nil
}

// referencedBy returns the first event, by id, that points at kind/id
func (s *service) referencedBy(kind models.Kind, id string) (string, bool) {
	var eventID string
	s.events.Each(func(evID string, ev models.Event) bool {
		if ev.References(kind, id) {
			eventID = evID
			return false
		}
		return true
	})
	return eventID, eventID != ""
}

// finish records metrics and logs the outcome of one operation
func (s *service) finish(ctx context.Context, kind models.Kind, op, id string, err error) {
	outcome := Outcome(err)
	if s.recorder != nil {
		s.recorder.IncOperation(string(kind), op, outcome)
	}

	logger := logging.WithRequestID(ctx, s.logger)
	fields := []zap.Field{
		zap.String("kind", string(kind)),
		zap.String("op", op),
		zap.String("id", id),
		zap.String("outcome", outcome),
	}
	switch outcome {
	case metrics.OutcomeSuccess:
		logger.Debug("record operation", fields...)
	case metrics.OutcomePersistence, metrics.OutcomeError:
		logger.Error("record operation failed", append(fields, zap.Error(err))...)
	default:
		logger.Info("record operation rejected", append(fields, zap.Error(err))...)
	}
}

// Outcome classifies an operation error into a metrics outcome label
func Outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, store.ErrDuplicateKey):
		return metrics.OutcomeDuplicate
	case errors.Is(err, store.ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, store.ErrEmptyID),
		errors.Is(err, store.ErrInvalidValue),
		errors.Is(err, ErrUnknownKind),
		errors.Is(err, ErrEventRequiresDetails):
		return metrics.OutcomeInvalid
	case errors.Is(err, ErrUnknownReference), errors.Is(err, ErrStillReferenced):
		return metrics.OutcomeReference
	case errors.Is(err, store.ErrPersistence):
		return metrics.OutcomePersistence
	default:
		return metrics.OutcomeError
	}
}
