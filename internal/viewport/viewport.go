// Package viewport tests page rectangles for overlap and reports when a
// target starts or stops intersecting the visible area.
package viewport

// Rect is an axis-aligned rectangle in page coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Intersects reports whether r and o share a strictly positive area.
func (r Rect) Intersects(o Rect) bool {
	if r.W <= 0 || r.H <= 0 || o.W <= 0 || o.H <= 0 {
		return false
	}
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Observer reports when a target starts or stops intersecting the
// viewport.
type Observer struct {
	notify       func(intersecting bool)
	intersecting bool
	seen         bool
}

// Observe creates an observer and reports the current state right away.
func Observe(view, target Rect, notify func(intersecting bool)) *Observer {
	o := &Observer{notify: notify}
	o.Update(view, target)
	return o
}

// Update re-evaluates the target and notifies only on a change.
func (o *Observer) Update(view, target Rect) {
	now := view.Intersects(target)
	if o.seen && now == o.intersecting {
		return
	}
	o.seen = true
	o.intersecting = now
	o.notify(now)
}

// Intersecting is the last reported state.
func (o *Observer) Intersecting() bool {
	return o.intersecting
}
