package server

import (
	"encoding/json"
	"sync"

	"github.com/playperu/jeopardy/internal/controller"
)

// wireEvent is the JSON form of a controller event.
type wireEvent struct {
	Type controller.EventKind `json:"type"`
	Data any                  `json:"data,omitempty"`
}

// message is one encoded event as delivered to subscribers.
type message struct {
	Type controller.EventKind
	Data []byte
}

// Broker is an in-process pub/sub for game events, keyed by session ID.
type Broker struct {
	mu     sync.RWMutex
	subs   map[string]map[chan message]struct{}
	closed map[string]struct{}
	done   bool
}

func NewBroker() *Broker {
	return &Broker{
		subs:   make(map[string]map[chan message]struct{}),
		closed: make(map[string]struct{}),
	}
}

// Subscribe returns a channel that receives encoded events for the session.
// The channel is closed when the session is closed or the broker shuts
// down. Subscribing to a closed session returns an already closed channel.
func (b *Broker) Subscribe(sessionID string) chan message {
	ch := make(chan message, 16)
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, closed := b.closed[sessionID]; closed || b.done {
		close(ch)
		return ch
	}
	if b.subs[sessionID] == nil {
		b.subs[sessionID] = make(map[chan message]struct{})
	}
	b.subs[sessionID][ch] = struct{}{}
	return ch
}

// Unsubscribe removes a channel from the session's subscribers.
func (b *Broker) Unsubscribe(sessionID string, ch chan message) {
	b.mu.Lock()
	if _, ok := b.subs[sessionID][ch]; ok {
		delete(b.subs[sessionID], ch)
		close(ch)
	}
	if len(b.subs[sessionID]) == 0 {
		delete(b.subs, sessionID)
	}
	b.mu.Unlock()
}

// Publish sends an event to all subscribers of the session.
func (b *Broker) Publish(sessionID string, e controller.Event) {
	data, _ := json.Marshal(wireEvent{Type: e.Kind, Data: e.Payload})
	msg := message{Type: e.Kind, Data: data}

	b.mu.RLock()
	for ch := range b.subs[sessionID] {
		select {
		case ch <- msg:
		default:
			// Drop if subscriber is slow; clients re-query on the next event.
		}
	}
	b.mu.RUnlock()
}

// Close drops every subscriber of the session and closes their channels.
// Later subscriptions to the session are refused.
func (b *Broker) Close(sessionID string) {
	b.mu.Lock()
	for ch := range b.subs[sessionID] {
		close(ch)
	}
	delete(b.subs, sessionID)
	b.closed[sessionID] = struct{}{}
	b.mu.Unlock()
}

// Shutdown closes every subscriber channel so open event streams return,
// and refuses new subscriptions.
func (b *Broker) Shutdown() {
	b.mu.Lock()
	for id, subs := range b.subs {
		for ch := range subs {
			close(ch)
		}
		delete(b.subs, id)
	}
	b.done = true
	b.mu.Unlock()
}

// Subscribers returns the number of live subscribers for the session.
func (b *Broker) Subscribers(sessionID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[sessionID])
}
