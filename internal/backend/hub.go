package backend

import (
	"sync"

	"omnichat/client/internal/model"
)

const subscriptionBuffer = 256

// Hub fans push events out to subscribers. Each subscriber receives events in
// the order they were published.
type Hub struct {
	mu   sync.Mutex
	subs map[*Subscription]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[*Subscription]struct{})}
}

// Subscription is a live registration on the hub. It must be closed by its owner.
type Subscription struct {
	hub    *Hub
	events chan model.StreamEvent
	done   chan struct{}
	once   sync.Once
}

// Subscribe registers a new subscriber.
func (h *Hub) Subscribe() *Subscription {
	sub := &Subscription{
		hub:    h,
		events: make(chan model.StreamEvent, subscriptionBuffer),
		done:   make(chan struct{}),
	}
	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()
	return sub
}

// Events returns the delivery channel. It is never closed; use Done to stop reading.
func (s *Subscription) Events() <-chan model.StreamEvent { return s.events }

// Done is closed when the subscription is closed.
func (s *Subscription) Done() <-chan struct{} { return s.done }

// Close unregisters the subscription. Safe to call more than once and from
// the goroutine that reads Events.
func (s *Subscription) Close() {
	s.once.Do(func() {
		close(s.done)
		s.hub.mu.Lock()
		delete(s.hub.subs, s)
		s.hub.mu.Unlock()
	})
}

// Publish delivers ev to every current subscriber, blocking on a full buffer
// until the subscriber reads or closes.
func (h *Hub) Publish(ev model.StreamEvent) {
	h.mu.Lock()
	targets := make([]*Subscription, 0, len(h.subs))
	for sub := range h.subs {
		targets = append(targets, sub)
	}
	h.mu.Unlock()

	for _, sub := range targets {
		select {
		case sub.events <- ev:
		case <-sub.done:
		}
	}
}

// Len returns the number of live subscriptions.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
