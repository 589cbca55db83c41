// Package sse implements a Server-Sent Events broker that pushes portfolio
// and save events to the rendering page.
package sse

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"
)

// Event represents an SSE event to broadcast.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Broker manages SSE client connections and broadcasts events.
//
// Concurrency model: a single internal event loop (goroutine) owns mutable
// state (clients + edit throttle). Public methods communicate with this loop
// through channels, so no mutexes are required.
//
// Edits arrive in bursts while the owner types, so portfolio.updated is
// throttled: at most one broadcast per interval, with a trailing broadcast
// when edits were suppressed, so listeners always converge on the latest
// snapshot. Save events bypass the throttle.
type Broker struct {
	editMin time.Duration

	subscribeCh   chan chan []byte
	unsubscribeCh chan chan []byte
	publishCh     chan Event
	editCh        chan struct{}
	countReqCh    chan chan int

	stopCh  chan struct{}
	stopped chan struct{}
	closed  atomic.Bool
}

// NewBroker creates a new SSE broker with the given edit throttle interval.
func NewBroker(editThrottle time.Duration) *Broker {
	if editThrottle <= 0 {
		editThrottle = 500 * time.Millisecond
	}

	b := &Broker{
		editMin:       editThrottle,
		subscribeCh:   make(chan chan []byte),
		unsubscribeCh: make(chan chan []byte),
		publishCh:     make(chan Event, 256),
		editCh:        make(chan struct{}, 256),
		countReqCh:    make(chan chan int),
		stopCh:        make(chan struct{}),
		stopped:       make(chan struct{}),
	}

	go b.run()
	return b
}

func (b *Broker) run() {
	defer close(b.stopped)

	clients := make(map[chan []byte]struct{})
	var lastEdit time.Time
	var pendingEdit bool
	trailing := time.NewTimer(b.editMin)
	if !trailing.Stop() {
		<-trailing.C
	}

	broadcast := func(event Event) {
		payload, err := json.Marshal(event.Data)
		if err != nil {
			return
		}
		msg := fmt.Sprintf("event: %s\ndata: %s\n\n", event.Type, payload)
		raw := []byte(msg)

		for ch := range clients {
			select {
			case ch <- raw:
			default:
				// Client buffer full; skip to avoid blocking broker loop.
			}
		}
	}

	broadcastEdit := func() {
		lastEdit = time.Now()
		pendingEdit = false
		broadcast(Event{Type: "portfolio.updated", Data: map[string]string{}})
	}

	for {
		select {
		case <-b.stopCh:
			trailing.Stop()
			for ch := range clients {
				close(ch)
			}
			return

		case ch := <-b.subscribeCh:
			clients[ch] = struct{}{}

		case ch := <-b.unsubscribeCh:
			if _, ok := clients[ch]; ok {
				delete(clients, ch)
				close(ch)
			}

		case event := <-b.publishCh:
			broadcast(event)

		case <-b.editCh:
			if time.Since(lastEdit) >= b.editMin {
				broadcastEdit()
				continue
			}
			if !pendingEdit {
				pendingEdit = true
				trailing.Reset(b.editMin - time.Since(lastEdit))
			}

		case <-trailing.C:
			if pendingEdit {
				broadcastEdit()
			}

		case resp := <-b.countReqCh:
			resp <- len(clients)
		}
	}
}

// Close gracefully stops the broker loop and closes all client channels.
func (b *Broker) Close() {
	if b.closed.CompareAndSwap(false, true) {
		close(b.stopCh)
	}
	<-b.stopped
}

// Subscribe adds a new client and returns its channel.
func (b *Broker) Subscribe() chan []byte {
	ch := make(chan []byte, 64)
	if b.closed.Load() {
		close(ch)
		return ch
	}

	select {
	case b.subscribeCh <- ch:
	case <-b.stopped:
		close(ch)
	}

	return ch
}

// Unsubscribe removes a client and closes its channel.
func (b *Broker) Unsubscribe(ch chan []byte) {
	if b.closed.Load() {
		return
	}
	select {
	case b.unsubscribeCh <- ch:
	case <-b.stopped:
	}
}

// ClientCount returns the number of connected clients.
func (b *Broker) ClientCount() int {
	if b.closed.Load() {
		return 0
	}

	resp := make(chan int, 1)
	select {
	case b.countReqCh <- resp:
	case <-b.stopped:
		return 0
	}

	select {
	case n := <-resp:
		return n
	case <-b.stopped:
		return 0
	}
}

// Publish sends an event to all connected clients, bypassing the throttle.
func (b *Broker) Publish(event Event) {
	if b.closed.Load() {
		return
	}
	select {
	case b.publishCh <- event:
	case <-b.stopped:
	}
}

// PublishEdit signals that the snapshot changed. Broadcasts are throttled.
func (b *Broker) PublishEdit() {
	if b.closed.Load() {
		return
	}
	select {
	case b.editCh <- struct{}{}:
	case <-b.stopped:
	}
}

// PublishSave broadcasts a save lifecycle event (started, completed, failed).
func (b *Broker) PublishSave(kind string, data map[string]string) {
	if data == nil {
		data = map[string]string{}
	}
	b.Publish(Event{Type: "save." + kind, Data: data})
}

// ServeHTTP is the SSE endpoint handler (GET /api/events).
func (b *Broker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			_, _ = w.Write(msg)
			flusher.Flush()
		}
	}
}
