// Package frame provides a display-synchronised callback queue: callbacks
// requested now run on the next Tick, once each.
package frame

// ID identifies a requested callback. The zero ID is never issued.
type ID uint64

type request struct {
	id ID
	fn func()
}

// Loop is not safe for concurrent use; the frontend that owns it calls
// Tick once per display refresh on its render goroutine.
type Loop struct {
	last    ID
	pending []request
	// live holds requests that have been made and neither run nor cancelled.
	live map[ID]struct{}
}

func NewLoop() *Loop {
	return &Loop{live: map[ID]struct{}{}}
}

// Request queues fn for the next Tick.
func (l *Loop) Request(fn func()) ID {
	l.last++
	l.pending = append(l.pending, request{id: l.last, fn: fn})
	l.live[l.last] = struct{}{}
	return l.last
}

// Cancel drops a request that has not run yet. Unknown IDs are ignored.
func (l *Loop) Cancel(id ID) {
	delete(l.live, id)
}

// Pending is the number of requests that will run on the next Tick.
func (l *Loop) Pending() int {
	return len(l.live)
}

// Tick runs, in request order, every callback requested before it was
// called. Requests made by those callbacks wait for the following Tick.
// It returns the number of callbacks run.
func (l *Loop) Tick() int {
	batch := l.pending
	l.pending = nil

	ran := 0
	for _, r := range batch {
		if _, ok := l.live[r.id]; !ok {
			continue
		}
		delete(l.live, r.id)
		r.fn()
		ran++
	}
	return ran
}
