package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNotifier_PublishSubscribe(t *testing.T) {
	n := NewNotifier()

	ch, unsubscribe := n.Subscribe()
	defer unsubscribe()

	userID := uuid.New()
	n.Publish(Event{Kind: EventSignedIn, UserID: userID})

	select {
	case e := <-ch:
		assert.Equal(t, EventSignedIn, e.Kind)
		assert.Equal(t, userID, e.UserID)
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestNotifier_FanOut(t *testing.T) {
	n := NewNotifier()

	ch1, unsub1 := n.Subscribe()
	defer unsub1()
	ch2, unsub2 := n.Subscribe()
	defer unsub2()

	n.Publish(Event{Kind: EventProfileChanged, UserID: uuid.New()})

	for _, ch := range []<-chan Event{ch1, ch2} {
		select {
		case e := <-ch:
			assert.Equal(t, EventProfileChanged, e.Kind)
		case <-time.After(time.Second):
			t.Fatal("event was not delivered to all subscribers")
		}
	}
}

func TestNotifier_UnsubscribeClosesChannel(t *testing.T) {
	n := NewNotifier()

	ch, unsubscribe := n.Subscribe()
	unsubscribe()

	_, open := <-ch
	assert.False(t, open)

	// Unsubscribing twice is harmless.
	unsubscribe()

	// Publishing after unsubscribe must not panic.
	n.Publish(Event{Kind: EventSignedOut, UserID: uuid.New()})
}

func TestNotifier_SlowSubscriberDoesNotBlock(t *testing.T) {
	n := NewNotifier()

	_, unsubscribe := n.Subscribe()
	defer unsubscribe()

	// Overflow the subscriber buffer; Publish must never block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			n.Publish(Event{Kind: EventSignedIn, UserID: uuid.New()})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a slow subscriber")
	}
}
