// Package page models the document the particle canvas lives in: the
// viewport, the scroll offset, surfaces by id, and the notifications the
// simulator subscribes to.
package page

import (
	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/frame"
	"github.com/iburimskiy/particle-field/internal/simulator"
	"github.com/iburimskiy/particle-field/internal/surface"
	"github.com/iburimskiy/particle-field/internal/viewport"
)

type observation struct {
	id       string
	observer *viewport.Observer
}

// Page lays out surfaces one viewport tall, stacked from the top of a
// document PageScreens viewports tall. Surfaces are stacked in the order
// they were added.
type Page struct {
	w, h    int
	scrollY float64
	hidden  bool

	ids      []string
	surfaces map[string]surface.Surface
	resizers []func(w, h int)
	watches  []observation
	loop     *frame.Loop
}

func New(w, h int) *Page {
	return &Page{
		w:        max(w, 0),
		h:        max(h, 0),
		surfaces: map[string]surface.Surface{},
		loop:     frame.NewLoop(),
	}
}

// Add registers a surface under id.
func (p *Page) Add(id string, s surface.Surface) {
	if _, ok := p.surfaces[id]; !ok {
		p.ids = append(p.ids, id)
	}
	p.surfaces[id] = s
}

func (p *Page) Surface(id string) (surface.Surface, bool) {
	s, ok := p.surfaces[id]
	return s, ok
}

func (p *Page) Viewport() (int, int) {
	return p.w, p.h
}

func (p *Page) OnResize(fn func(w, h int)) {
	p.resizers = append(p.resizers, fn)
}

// Observe reports whether surface id intersects the viewport, right away
// and then on every change. Unknown ids are never reported.
func (p *Page) Observe(id string, fn func(intersecting bool)) {
	if _, ok := p.surfaces[id]; !ok {
		return
	}
	o := viewport.Observe(p.view(), p.rect(id), fn)
	p.watches = append(p.watches, observation{id: id, observer: o})
}

func (p *Page) Frames() simulator.Scheduler {
	return p.loop
}

// Frame runs one display refresh and returns the number of callbacks run.
func (p *Page) Frame() int {
	return p.loop.Tick()
}

// Resize sets the viewport, notifies subscribers and re-clamps scrolling.
func (p *Page) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	if w == p.w && h == p.h {
		return
	}
	p.w, p.h = w, h
	for _, fn := range p.resizers {
		fn(w, h)
	}
	p.ScrollTo(p.scrollY)
}

func (p *Page) ScrollBy(dy float64) {
	p.ScrollTo(p.scrollY + dy)
}

// ScrollTo moves the top of the viewport to y, clamped to the document.
func (p *Page) ScrollTo(y float64) {
	p.scrollY = min(max(y, 0), p.MaxScroll())
	p.update()
}

// SetHidden marks the whole viewport as not showing anything, as when
// the window is minimised.
func (p *Page) SetHidden(hidden bool) {
	if p.hidden == hidden {
		return
	}
	p.hidden = hidden
	p.update()
}

func (p *Page) ScrollY() float64 {
	return p.scrollY
}

func (p *Page) Height() float64 {
	return float64(p.h * config.PageScreens)
}

func (p *Page) MaxScroll() float64 {
	return max(p.Height()-float64(p.h), 0)
}

// Rect is the page rectangle of surface id.
func (p *Page) Rect(id string) (viewport.Rect, bool) {
	if _, ok := p.surfaces[id]; !ok {
		return viewport.Rect{}, false
	}
	return p.rect(id), true
}

// Section is the page rectangle of the i-th viewport-tall band.
func (p *Page) Section(i int) viewport.Rect {
	return viewport.Rect{X: 0, Y: float64(i * p.h), W: float64(p.w), H: float64(p.h)}
}

func (p *Page) rect(id string) viewport.Rect {
	for i, sid := range p.ids {
		if sid == id {
			return p.Section(i)
		}
	}
	return viewport.Rect{}
}

func (p *Page) view() viewport.Rect {
	if p.hidden {
		return viewport.Rect{}
	}
	return viewport.Rect{X: 0, Y: p.scrollY, W: float64(p.w), H: float64(p.h)}
}

func (p *Page) update() {
	view := p.view()
	for _, w := range p.watches {
		w.observer.Update(view, p.rect(w.id))
	}
}
