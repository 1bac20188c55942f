// Package event carries change notifications between the record store and
// the components that derive state from it.
package event

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/google/wire"
)

var Provider = wire.NewSet(NewBus, wire.Bind(new(Emitter), new(*Bus)), NewRedisRelay)

type Kind string

const (
	// KindCollectionWritten follows a single collection save.
	KindCollectionWritten Kind = "collection_written"
	// KindCollectionReplaced follows a bulk replacement, i.e. a backup import.
	KindCollectionReplaced Kind = "collection_replaced"
)

type Event struct {
	Kind      Kind     `json:"kind"`
	Keys      []string `json:"keys"`
	Source    string   `json:"source,omitempty"`
	Timestamp int64    `json:"ts,omitempty"`

	// Remote is set on events received from another instance.
	Remote bool `json:"-"`
}

type Handler func(ctx context.Context, ev Event)

type Emitter interface {
	Publish(ctx context.Context, ev Event)
}

// Bus dispatches events synchronously, in subscription order.
type Bus struct {
	instanceID string

	mu       sync.RWMutex
	nextID   int
	handlers map[int]Handler
	order    []int
}

func NewBus() *Bus {
	return &Bus{
		instanceID: uuid.NewString(),
		handlers:   make(map[int]Handler),
	}
}

func (b *Bus) InstanceID() string {
	return b.instanceID
}

// Subscribe registers h and returns a func that removes it.
func (b *Bus) Subscribe(h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	b.handlers[id] = h
	b.order = append(b.order, id)
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers, id)
		for i, v := range b.order {
			if v == id {
				b.order = append(b.order[:i], b.order[i+1:]...)
				break
			}
		}
	}
}

func (b *Bus) Publish(ctx context.Context, ev Event) {
	if ev.Source == "" {
		ev.Source = b.instanceID
	}
	if ev.Timestamp == 0 {
		ev.Timestamp = time.Now().UnixMilli()
	}
	b.dispatch(ctx, ev)
}

func (b *Bus) dispatch(ctx context.Context, ev Event) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.order))
	for _, id := range b.order {
		handlers = append(handlers, b.handlers[id])
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(ctx, ev)
	}
}
