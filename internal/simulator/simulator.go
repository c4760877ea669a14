// Package simulator runs the particle field: it owns the particles and
// their surface, draws one frame pass per display refresh while the
// surface is visible, and goes idle when it is not.
package simulator

import (
	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/frame"
	"github.com/iburimskiy/particle-field/internal/particle"
	"github.com/iburimskiy/particle-field/internal/surface"
)

// Scheduler runs callbacks before the next repaint.
type Scheduler interface {
	Request(fn func()) frame.ID
	Cancel(id frame.ID)
}

// Environment is what the simulator needs from the page hosting it.
type Environment interface {
	Surface(id string) (surface.Surface, bool)
	Viewport() (w, h int)
	OnResize(fn func(w, h int))
	Observe(id string, fn func(intersecting bool))
	Frames() Scheduler
}

type State int

const (
	Idle State = iota
	Active
)

func (s State) String() string {
	if s == Active {
		return "active"
	}
	return "idle"
}

type Simulator struct {
	surface   surface.Surface
	frames    Scheduler
	src       particle.Source
	particles []particle.Particle
	w, h      float64

	state   State
	next    frame.ID
	pending bool
	passes  uint64
}

// New builds a simulator for a viewport of w x h, sizing the surface to
// match. The particle count is fixed here for the simulator's lifetime.
// A nil surface yields a nil simulator, whose methods do nothing.
func New(s surface.Surface, frames Scheduler, src particle.Source, w, h int) *Simulator {
	if s == nil {
		return nil
	}
	sim := &Simulator{
		surface: s,
		frames:  frames,
		src:     src,
	}
	sim.Resize(w, h)
	sim.particles = particle.NewField(src, particle.Count(w), sim.w, sim.h)
	return sim
}

// Mount looks up the canvas in env and wires the simulator to its
// resize and visibility notifications. It returns nil, having done
// nothing, when the page has no canvas.
func Mount(env Environment, src particle.Source) *Simulator {
	s, ok := env.Surface(config.CanvasID)
	if !ok || s == nil {
		return nil
	}
	w, h := env.Viewport()
	sim := New(s, env.Frames(), src, w, h)
	env.OnResize(sim.Resize)
	env.Observe(config.CanvasID, sim.SetVisible)
	return sim
}

// Resize matches the surface to a new viewport. Particles keep their
// coordinates; those now outside respawn on their next step.
func (s *Simulator) Resize(w, h int) {
	if s == nil {
		return
	}
	s.w, s.h = float64(max(w, 0)), float64(max(h, 0))
	s.surface.Resize(max(w, 0), max(h, 0))
}

// SetVisible is the visibility observer callback.
func (s *Simulator) SetVisible(intersecting bool) {
	if intersecting {
		s.Start()
	} else {
		s.Stop()
	}
}

// Start moves Idle to Active and schedules the first pass. It is a no-op
// while Active.
func (s *Simulator) Start() {
	if s == nil || s.state == Active {
		return
	}
	s.state = Active
	s.schedule()
}

// Stop moves Active to Idle and cancels the scheduled pass. A pass that
// is already running finishes but does not schedule another.
func (s *Simulator) Stop() {
	if s == nil || s.state == Idle {
		return
	}
	s.state = Idle
	if s.pending {
		s.frames.Cancel(s.next)
		s.pending = false
	}
}

func (s *Simulator) schedule() {
	if s.pending {
		return
	}
	s.next = s.frames.Request(s.tick)
	s.pending = true
}

func (s *Simulator) tick() {
	s.pending = false
	s.Pass()
	if s.state == Active {
		s.schedule()
	}
}

// Pass runs one frame: clear, advance and respawn, circles, then links.
func (s *Simulator) Pass() {
	if s == nil {
		return
	}
	s.surface.Clear()
	particle.Advance(s.particles, s.src, s.w, s.h)
	for _, p := range s.particles {
		s.surface.FillCircle(p.X, p.Y, p.Size, surface.Tint(p.Opacity))
	}
	particle.Links(s.particles, func(a, b particle.Particle, alpha float64) {
		s.surface.StrokeLine(a.X, a.Y, b.X, b.Y, config.LinkWidth, surface.Tint(alpha))
	})
	s.passes++
}

func (s *Simulator) State() State {
	if s == nil {
		return Idle
	}
	return s.state
}

// Scheduled reports whether a pass is waiting for the next refresh.
func (s *Simulator) Scheduled() bool {
	return s != nil && s.pending
}

func (s *Simulator) Len() int {
	if s == nil {
		return 0
	}
	return len(s.particles)
}

// Passes is the number of frame passes run so far.
func (s *Simulator) Passes() uint64 {
	if s == nil {
		return 0
	}
	return s.passes
}

// Particles returns a copy of the current field.
func (s *Simulator) Particles() []particle.Particle {
	if s == nil {
		return nil
	}
	out := make([]particle.Particle, len(s.particles))
	copy(out, s.particles)
	return out
}

// Bounds is the current surface size.
func (s *Simulator) Bounds() (w, h float64) {
	if s == nil {
		return 0, 0
	}
	return s.w, s.h
}
