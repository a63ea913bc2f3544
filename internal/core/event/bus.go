package event

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Handler consumes one job lifecycle event. A handler error is logged by the
// bus and never stops delivery to the remaining handlers.
type Handler func(ctx context.Context, e Event) error

type Bus interface {
	Publish(ctx context.Context, e Event)
	Subscribe(t EventType, h Handler) (unsubscribe func())
}

// NewBus returns an in-process bus. Handlers run synchronously on the
// publishing goroutine.
func NewBus() Bus {
	return &bus{handlers: make(map[EventType]map[uint64]Handler)}
}

type bus struct {
	mu       sync.RWMutex
	handlers map[EventType]map[uint64]Handler
	lastID   uint64
}

func (b *bus) Publish(ctx context.Context, e Event) {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}

	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.handlers[e.Type]))
	for _, h := range b.handlers[e.Type] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		if err := h(ctx, e); err != nil {
			log.Error().Err(err).
				Str("event", string(e.Type)).
				Str("job_id", e.Job.JobID).
				Msg("event handler error")
		}
	}
}

func (b *bus) Subscribe(t EventType, h Handler) func() {
	b.mu.Lock()
	b.lastID++
	id := b.lastID
	if b.handlers[t] == nil {
		b.handlers[t] = make(map[uint64]Handler)
	}
	b.handlers[t][id] = h
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.handlers[t], id)
		b.mu.Unlock()
	}
}
