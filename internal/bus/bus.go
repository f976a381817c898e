// Package bus provides a small typed in-process publish/subscribe channel.
//
// The sync engine announces DataChanged after any write external observers
// must reflect, and listens for DataMutated signals to schedule a
// reconciliation pass. Delivery is broadcast, fire-and-forget, same-process
// only. The bus is an explicit owned instance, constructed once per
// application session and passed by reference to whoever needs it.
package bus

import (
	"sync"

	"github.com/pkruglov/notesync/models"
)

// Handler receives the record kind an event concerns.
type Handler func(kind models.RecordKind)

// Bus is a process-local broadcast channel with two topics: data-changed
// (engine → observers) and data-mutated (editors → engine).
type Bus struct {
	mu     sync.Mutex
	nextID int

	changed map[int]Handler
	mutated map[int]Handler
}

// New returns an empty Bus ready for use.
func New() *Bus {
	return &Bus{
		changed: make(map[int]Handler),
		mutated: make(map[int]Handler),
	}
}

// SubscribeDataChanged registers fn for DataChanged events and returns an
// unsubscribe function. Unsubscribing twice is a no-op.
func (b *Bus) SubscribeDataChanged(fn Handler) func() {
	return b.subscribe(b.changed, fn)
}

// SubscribeDataMutated registers fn for DataMutated events and returns an
// unsubscribe function.
func (b *Bus) SubscribeDataMutated(fn Handler) func() {
	return b.subscribe(b.mutated, fn)
}

// PublishDataChanged broadcasts that records of the given kind changed on
// this device as a result of synchronization or conflict resolution.
func (b *Bus) PublishDataChanged(kind models.RecordKind) {
	b.publish(b.changed, kind)
}

// PublishDataMutated broadcasts that a local editor mutated records of the
// given kind; the scheduler uses this to debounce a sync pass.
func (b *Bus) PublishDataMutated(kind models.RecordKind) {
	b.publish(b.mutated, kind)
}

func (b *Bus) subscribe(topic map[int]Handler, fn Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	topic[id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(topic, id)
	}
}

func (b *Bus) publish(topic map[int]Handler, kind models.RecordKind) {
	b.mu.Lock()
	handlers := make([]Handler, 0, len(topic))
	for _, fn := range topic {
		handlers = append(handlers, fn)
	}
	b.mu.Unlock()

	// Handlers run outside the lock so a subscriber may publish or
	// unsubscribe without deadlocking.
	for _, fn := range handlers {
		fn(kind)
	}
}
