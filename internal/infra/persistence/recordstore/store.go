// Package recordstore persists the three collections of the priority board
// as opaque JSON values under stable keys.
package recordstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/notarydesk/priorities/internal/event"
	"go.uber.org/zap"
)

type Key string

const (
	KeyEmployees   Key = "priority-system-employees"
	KeyPriorities  Key = "priority-system-priorities"
	KeyAssignments Key = "priority-system-assignments"
)

// Keys lists every collection in backup order.
var Keys = []Key{KeyEmployees, KeyPriorities, KeyAssignments}

// Backend is the storage medium. Implementations copy values in and out; the
// caller may reuse its buffers.
type Backend interface {
	// Load returns ok=false when nothing was ever stored under key.
	Load(ctx context.Context, key Key) (value []byte, ok bool, err error)
	Save(ctx context.Context, key Key, value []byte) error
	// ReplaceAll writes every value or none of them.
	ReplaceAll(ctx context.Context, values map[Key][]byte) error
	Ping(ctx context.Context) error
	Close() error
}

// Transactional backends run a write section inside their own transaction.
type Transactional interface {
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
}

type sectionKey struct{}

type section struct {
	pending []event.Event
}

// Store serializes writers and announces changes once a write section has
// completed successfully.
type Store struct {
	backend Backend
	emitter event.Emitter
	logger  *zap.Logger

	mu sync.Mutex
}

func New(backend Backend, emitter event.Emitter, logger *zap.Logger) *Store {
	return &Store{backend: backend, emitter: emitter, logger: logger.Named("recordstore")}
}

// Execute runs fn as one write section. Sections are exclusive per process
// and nest through ctx: an inner Execute joins the outer one.
func (s *Store) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(sectionKey{}).(*section); ok {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sec := &section{}
	inner := context.WithValue(ctx, sectionKey{}, sec)

	var err error
	if tx, ok := s.backend.(Transactional); ok {
		err = tx.Execute(inner, fn)
	} else {
		err = fn(inner)
	}
	if err != nil {
		return err
	}

	for _, ev := range sec.pending {
		s.emitter.Publish(ctx, ev)
	}
	return nil
}

func (s *Store) Load(ctx context.Context, key Key) ([]byte, bool, error) {
	value, ok, err := s.backend.Load(ctx, key)
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", key, err)
	}
	return value, ok, nil
}

func (s *Store) Save(ctx context.Context, key Key, value []byte) error {
	return s.Execute(ctx, func(ctx context.Context) error {
		if err := s.backend.Save(ctx, key, value); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
		s.enqueue(ctx, event.Event{Kind: event.KindCollectionWritten, Keys: []string{string(key)}})
		return nil
	})
}

// ReplaceAll overwrites the given collections together.
func (s *Store) ReplaceAll(ctx context.Context, values map[Key][]byte) error {
	return s.Execute(ctx, func(ctx context.Context) error {
		if err := s.backend.ReplaceAll(ctx, values); err != nil {
			return fmt.Errorf("replace collections: %w", err)
		}
		keys := make([]string, 0, len(values))
		for _, k := range Keys {
			if _, ok := values[k]; ok {
				keys = append(keys, string(k))
			}
		}
		s.enqueue(ctx, event.Event{Kind: event.KindCollectionReplaced, Keys: keys})
		s.logger.Info("collections replaced", zap.Strings("keys", keys))
		return nil
	})
}

func (s *Store) Ping(ctx context.Context) error {
	return s.backend.Ping(ctx)
}

func (s *Store) Close() error {
	return s.backend.Close()
}

func (s *Store) enqueue(ctx context.Context, ev event.Event) {
	sec := ctx.Value(sectionKey{}).(*section)
	sec.pending = append(sec.pending, ev)
}
