package identity

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// EventType classifies a session change.
type EventType string

const (
	EventSignedIn        EventType = "signed-in"
	EventSignedOut       EventType = "signed-out"
	EventLocationUpdated EventType = "location-updated"
)

// SessionEvent is delivered to subscribers whenever the authenticated state
// of a user changes. Consumers (the dashboard orchestrator) react to these
// instead of polling.
type SessionEvent struct {
	Type   EventType
	UserID uuid.UUID
	User   *UserAccount // nil for signed-out
	At     time.Time
}

const subscriberBuffer = 16

// Broadcaster fans session events out to any number of subscribers. Delivery
// is non-blocking: a subscriber that stops draining its channel loses events
// rather than stalling publishers.
type Broadcaster struct {
	mu   sync.Mutex
	subs map[int]chan SessionEvent
	next int
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[int]chan SessionEvent)}
}

// Subscribe registers a new subscriber. The returned cancel function removes
// the subscription and closes the channel; it is safe to call more than once.
func (b *Broadcaster) Subscribe() (<-chan SessionEvent, func()) {
	b.mu.Lock()
	id := b.next
	b.next++
	ch := make(chan SessionEvent, subscriberBuffer)
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			if sub, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub)
			}
			b.mu.Unlock()
		})
	}
	return ch, cancel
}

// Publish delivers the event to every current subscriber.
func (b *Broadcaster) Publish(ev SessionEvent) {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
			// Subscriber is not draining; drop.
		}
	}
}

// SubscriberCount returns the number of active subscriptions. Test helper.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
