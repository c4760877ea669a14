// Package particle holds the particle record and the pure functions that
// advance a field of them and find their connections.
package particle

import (
	"math"

	"github.com/iburimskiy/particle-field/internal/config"
)

// Source is the random stream particles are drawn from. *rand.Rand
// satisfies it.
type Source interface {
	Float64() float64
}

// Particle is one drifting dot.
type Particle struct {
	X, Y           float64
	Size           float64
	SpeedX, SpeedY float64
	Opacity        float64
}

// Count is the population for a viewport of the given width.
func Count(viewportWidth int) int {
	if viewportWidth <= 0 {
		return 0
	}
	return min(config.MaxParticles, viewportWidth/config.WidthPerParticle)
}

// Spawn returns a freshly randomised particle inside a w x h surface.
func Spawn(src Source, w, h float64) Particle {
	return Particle{
		X:       below(src.Float64()*w, 0, w),
		Y:       below(src.Float64()*h, 0, h),
		Size:    below(src.Float64()*config.SizeSpan+config.SizeBase, config.SizeBase, config.SizeMax),
		SpeedX:  below((src.Float64()-0.5)*config.SpeedSpan, -config.SpeedMax, config.SpeedMax),
		SpeedY:  below((src.Float64()-0.5)*config.SpeedSpan, -config.SpeedMax, config.SpeedMax),
		Opacity: below(src.Float64()*config.OpacitySpan+config.OpacityBase, config.OpacityBase, config.OpacityMax),
	}
}

// below pulls v under the exclusive bound hi. Scaling a draw just under 1
// can round up onto hi.
func below(v, lo, hi float64) float64 {
	if v >= hi && hi > lo {
		return math.Nextafter(hi, lo)
	}
	return v
}

// NewField allocates n particles spawned inside a w x h surface.
func NewField(src Source, n int, w, h float64) []Particle {
	ps := make([]Particle, n)
	for i := range ps {
		ps[i] = Spawn(src, w, h)
	}
	return ps
}

// OutOfBounds reports whether p has left the w x h surface. The edges
// themselves are inside.
func (p Particle) OutOfBounds(w, h float64) bool {
	return p.X < 0 || p.X > w || p.Y < 0 || p.Y > h
}

// Advance moves every particle by its velocity and respawns the ones
// that left the surface. It returns how many were respawned.
func Advance(ps []Particle, src Source, w, h float64) int {
	respawned := 0
	for i := range ps {
		p := &ps[i]
		p.X += p.SpeedX
		p.Y += p.SpeedY
		if p.OutOfBounds(w, h) {
			*p = Spawn(src, w, h)
			respawned++
		}
	}
	return respawned
}

// LinkAlpha is the alpha of the line between two particles d apart, and
// false when they are too far apart to be linked.
func LinkAlpha(d float64) (float64, bool) {
	if d < 0 || d >= config.LinkDistance {
		return 0, false
	}
	return config.LinkAlpha * (1 - d/config.LinkDistance), true
}

// Links calls fn for every unordered pair i < j close enough to be
// linked, with the alpha of their line.
func Links(ps []Particle, fn func(a, b Particle, alpha float64)) {
	for i := range ps {
		for j := i + 1; j < len(ps); j++ {
			dx := ps[i].X - ps[j].X
			dy := ps[i].Y - ps[j].Y
			if alpha, ok := LinkAlpha(math.Sqrt(dx*dx + dy*dy)); ok {
				fn(ps[i], ps[j], alpha)
			}
		}
	}
}
