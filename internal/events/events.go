// Package events carries the renderer signal surface: in-process
// notifications that a collection or the derived statistics changed.
package events

import (
	"sync"
	"time"
)

const (
	TopicEmployeesChanged     = "employees.changed"
	TopicEquipmentChanged     = "equipment.changed"
	TopicServiceOrdersChanged = "serviceorders.changed"
	TopicUsersChanged         = "users.changed"
	TopicStatsChanged         = "stats.changed"
)

// Change describes a single collection mutation.
type Change struct {
	Collection string    `json:"collection"`
	Action     string    `json:"action"` // created, updated, replaced, reseeded
	RecordID   string    `json:"record_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Bus is a synchronous in-process publish/subscribe hub. Handlers run
// on the publishing goroutine; every collection change also fans out
// to the stats topic.
type Bus struct {
	mu   sync.RWMutex
	subs map[string][]func(Change)
}

func NewBus() *Bus {
	return &Bus{subs: make(map[string][]func(Change))}
}

func (b *Bus) Subscribe(topic string, fn func(Change)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[topic] = append(b.subs[topic], fn)
}

func (b *Bus) Publish(topic string, change Change) {
	if change.OccurredAt.IsZero() {
		change.OccurredAt = time.Now().UTC()
	}

	b.mu.RLock()
	handlers := append([]func(Change){}, b.subs[topic]...)
	if topic != TopicStatsChanged {
		handlers = append(handlers, b.subs[TopicStatsChanged]...)
	}
	b.mu.RUnlock()

	for _, fn := range handlers {
		fn(change)
	}
}
