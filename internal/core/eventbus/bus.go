// Package eventbus provides a typed publish/subscribe event bus for
// cross-component communication within gridmark.
package eventbus

import (
	"context"
	"sync"
)

// Event identifies an event type on the bus.
type Event string

// Event names. Keep list sorted A-Z.
const (
	EventDocumentChanged       Event = "document.changed"
	EventGridChanged           Event = "grid.changed"
	EventNotificationPublished Event = "notification.published"
	EventTableSynced           Event = "table.synced"
	EventWriteDropped          Event = "write.dropped"
)

// envelope pairs an event with its payload for dispatch.
type envelope struct {
	event   Event
	payload any
}

// EventBus delivers typed events to subscribers on a single dispatch
// goroutine. Publishing never blocks; events are dropped when the buffer is
// full and the OnDrop hooks fire instead.
type EventBus struct {
	ch    chan envelope
	mu    sync.RWMutex
	subs  map[Event][]func(any)
	hooks hooks

	closeOnce sync.Once
	done      chan struct{}
}

// New creates an event bus with the given buffer size.
func New(buffer int) *EventBus {
	if buffer <= 0 {
		buffer = 64
	}
	return &EventBus{
		ch:   make(chan envelope, buffer),
		subs: make(map[Event][]func(any)),
		done: make(chan struct{}),
	}
}

// Run dispatches events until the context is cancelled or the bus is closed.
func (bus *EventBus) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-bus.done:
			return
		case env := <-bus.ch:
			bus.dispatch(env)
		}
	}
}

// Close stops the dispatch loop. Pending events are discarded.
func (bus *EventBus) Close() {
	bus.closeOnce.Do(func() { close(bus.done) })
}

func (bus *EventBus) dispatch(env envelope) {
	bus.mu.RLock()
	handlers := make([]func(any), len(bus.subs[env.event]))
	copy(handlers, bus.subs[env.event])
	bus.mu.RUnlock()

	for _, fn := range handlers {
		bus.invoke(env, fn)
	}
}

func (bus *EventBus) invoke(env envelope, fn func(any)) {
	defer func() {
		if r := recover(); r != nil {
			bus.runOnPanic(env.event, env.payload, r)
		}
	}()
	fn(env.payload)
}

func (bus *EventBus) subscribe(event Event, fn func(any)) {
	bus.mu.Lock()
	bus.subs[event] = append(bus.subs[event], fn)
	bus.mu.Unlock()
	bus.runOnSubscribe(event)
}
