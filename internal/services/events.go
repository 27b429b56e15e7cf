package services

import (
	"sync"

	"github.com/google/uuid"
)

// EventKind classifies an authentication-state change.
type EventKind string

// Authentication-state event kinds.
const (
	EventSignedIn       EventKind = "signed_in"
	EventSignedOut      EventKind = "signed_out"
	EventProfileChanged EventKind = "profile_changed"
)

// Event is a discrete authentication-state notification pushed to subscribers.
type Event struct {
	Kind   EventKind
	UserID uuid.UUID
}

// Notifier fans authentication-state events out to subscribers.
// Delivery is push-driven; subscribers that fall behind miss events
// rather than blocking the publisher.
type Notifier struct {
	mu   sync.Mutex
	subs map[int]chan Event
	next int
}

// NewNotifier creates an empty Notifier.
func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[int]chan Event)}
}

// Publish delivers the event to every subscriber without blocking.
func (n *Notifier) Publish(e Event) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, ch := range n.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

// Subscribe registers a listener. The returned function unsubscribes it
// and closes the channel.
func (n *Notifier) Subscribe() (<-chan Event, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.next
	n.next++

	ch := make(chan Event, 16)
	n.subs[id] = ch

	unsubscribe := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if _, ok := n.subs[id]; ok {
			delete(n.subs, id)
			close(ch)
		}
	}

	return ch, unsubscribe
}
