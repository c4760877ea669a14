// Package cursor eases decorative markers toward the mouse.
package cursor

import "github.com/iburimskiy/particle-field/internal/config"

// Follower closes a fixed fraction of the distance to its target on
// every step.
type Follower struct {
	X, Y float64
	Rate float64
}

func (f *Follower) Step(tx, ty float64) {
	f.X += (tx - f.X) * f.Rate
	f.Y += (ty - f.Y) * f.Rate
}

// Pair is the slow glow and the quick dot that trail the mouse together.
type Pair struct {
	Glow Follower
	Dot  Follower
}

func NewPair() *Pair {
	return &Pair{
		Glow: Follower{Rate: config.GlowRate},
		Dot:  Follower{Rate: config.DotRate},
	}
}

func (p *Pair) Step(mouseX, mouseY float64) {
	p.Glow.Step(mouseX, mouseY)
	p.Dot.Step(mouseX, mouseY)
}
