package identity

import (
	"testing"

	"github.com/google/uuid"
)

func TestBroadcaster_FanOut(t *testing.T) {
	b := NewBroadcaster()

	ch1, cancel1 := b.Subscribe()
	ch2, cancel2 := b.Subscribe()
	defer cancel1()
	defer cancel2()

	userID := uuid.New()
	b.Publish(SessionEvent{Type: EventSignedIn, UserID: userID})

	for i, ch := range []<-chan SessionEvent{ch1, ch2} {
		select {
		case ev := <-ch:
			if ev.Type != EventSignedIn || ev.UserID != userID {
				t.Errorf("subscriber %d: unexpected event %+v", i, ev)
			}
			if ev.At.IsZero() {
				t.Errorf("subscriber %d: expected timestamp", i)
			}
		default:
			t.Errorf("subscriber %d: expected an event", i)
		}
	}
}

func TestBroadcaster_CancelRemovesSubscriber(t *testing.T) {
	b := NewBroadcaster()

	ch, cancel := b.Subscribe()
	if b.SubscriberCount() != 1 {
		t.Fatalf("expected 1 subscriber, got %d", b.SubscriberCount())
	}

	cancel()
	if b.SubscriberCount() != 0 {
		t.Errorf("expected 0 subscribers after cancel, got %d", b.SubscriberCount())
	}
	if _, open := <-ch; open {
		t.Error("expected channel closed after cancel")
	}

	// Second cancel is a no-op.
	cancel()
}

func TestBroadcaster_SlowSubscriberDoesNotBlock(t *testing.T) {
	b := NewBroadcaster()

	_, cancel := b.Subscribe()
	defer cancel()

	// Publish past the buffer; must not deadlock.
	for i := 0; i < subscriberBuffer*2; i++ {
		b.Publish(SessionEvent{Type: EventSignedIn, UserID: uuid.New()})
	}
}

func TestBroadcaster_PublishWithNoSubscribers(t *testing.T) {
	b := NewBroadcaster()
	b.Publish(SessionEvent{Type: EventSignedOut, UserID: uuid.New()})
}
