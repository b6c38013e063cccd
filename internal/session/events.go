package session

import "sync"

// emitter is a minimal broadcast primitive for the session-expired signal.
// Subscribers get a buffered channel; emit never blocks, and a subscriber
// that hasn't drained its channel simply coalesces repeated signals.
type emitter struct {
	mu   sync.Mutex
	subs []chan struct{}
}

func (e *emitter) subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	e.mu.Lock()
	e.subs = append(e.subs, ch)
	e.mu.Unlock()
	return ch
}

func (e *emitter) emit() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, ch := range e.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
