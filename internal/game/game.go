// Package game shows the particle page in a resizable ebiten window.
package game

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/cursor"
	"github.com/iburimskiy/particle-field/internal/page"
	"github.com/iburimskiy/particle-field/internal/particle"
	"github.com/iburimskiy/particle-field/internal/simulator"
	"github.com/iburimskiy/particle-field/internal/surface"
)

type Game struct {
	page   *page.Page
	canvas *Canvas
	sim    *simulator.Simulator
	cursor *cursor.Pair

	// window size reported by Layout, applied on the next Update
	outW, outH int

	// HUD
	passes    *passTap
	activeFor time.Duration
}

// input is what one Update read from the keyboard and wheel.
type input struct {
	wheelY   float64
	up, down bool
	pageUp   bool
	pageDown bool
	home     bool
	end      bool
}

func New(src particle.Source) *Game {
	g := &Game{
		page:   page.New(config.WindowWidth, config.WindowHeight),
		canvas: NewCanvas(),
		cursor: cursor.NewPair(),
		passes: newPassTap(config.PassRingSize),
		outW:   config.WindowWidth,
		outH:   config.WindowHeight,
	}
	g.page.Add(config.CanvasID, g.canvas)
	g.sim = simulator.Mount(g.page, src)
	log.Printf("window %dx%d, %d particles", config.WindowWidth, config.WindowHeight, g.sim.Len())
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	// Resize notification
	g.page.Resize(g.outW, g.outH)

	_, wheelY := ebiten.Wheel()
	g.applyScroll(input{
		wheelY:   wheelY,
		up:       ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		down:     ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		pageUp:   inpututil.IsKeyJustPressed(ebiten.KeyPageUp),
		pageDown: inpututil.IsKeyJustPressed(ebiten.KeyPageDown),
		home:     inpututil.IsKeyJustPressed(ebiten.KeyHome),
		end:      inpututil.IsKeyJustPressed(ebiten.KeyEnd),
	})
	g.page.SetHidden(ebiten.IsWindowMinimized())

	mouseX, mouseY := ebiten.CursorPosition()
	g.cursor.Step(float64(mouseX), float64(mouseY))

	if g.sim.State() == simulator.Active {
		g.activeFor += time.Second / time.Duration(ebiten.TPS())
	}
	return nil
}

func (g *Game) applyScroll(in input) {
	_, h := g.page.Viewport()
	switch {
	case in.home:
		g.page.ScrollTo(0)
	case in.end:
		g.page.ScrollTo(g.page.MaxScroll())
	case in.pageUp:
		g.page.ScrollBy(-float64(h))
	case in.pageDown:
		g.page.ScrollBy(float64(h))
	}
	if in.wheelY != 0 {
		// Wheel up scrolls toward the top of the page.
		g.page.ScrollBy(-in.wheelY * config.WheelStep)
	}
	if in.up {
		g.page.ScrollBy(-config.KeyStep)
	}
	if in.down {
		g.page.ScrollBy(config.KeyStep)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	if g.page.Frame() > 0 {
		g.passes.record(time.Since(start))
	}

	screen.Fill(config.Background)
	scroll := g.page.ScrollY()

	if img := g.canvas.Image(); img != nil {
		if r, ok := g.page.Rect(config.CanvasID); ok {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(r.X, r.Y-scroll)
			screen.DrawImage(img, op)
		}
	}

	g.drawSections(screen, scroll)
	g.drawCursor(screen)
	g.drawHUD(screen)
}

func (g *Game) drawSections(screen *ebiten.Image, scroll float64) {
	for i, title := range config.SectionTitles {
		if title == "" {
			continue
		}
		sec := g.page.Section(i)
		y := sec.Y + sec.H/2 - scroll
		x := sec.X + sec.W/2 - float64(len(title)*6)/2
		vector.StrokeLine(screen, float32(sec.X+40), float32(sec.Y-scroll), float32(sec.X+sec.W-40), float32(sec.Y-scroll), 1, surface.Tint(0.25), true)
		ebitenutil.DebugPrintAt(screen, title, int(x), int(y))
	}
}

func (g *Game) drawCursor(screen *ebiten.Image) {
	glow, dot := g.cursor.Glow, g.cursor.Dot
	vector.DrawFilledCircle(screen, float32(glow.X), float32(glow.Y), config.GlowRadius, surface.Tint(0.04), true)
	vector.DrawFilledCircle(screen, float32(glow.X), float32(glow.Y), config.GlowRadius/2, surface.Tint(0.04), true)
	vector.DrawFilledCircle(screen, float32(dot.X), float32(dot.Y), config.DotRadius, surface.Tint(1), true)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	hud := fmt.Sprintf("particles: %d  state: %s  pass: %s  active: %s  FPS: %0.1f",
		g.sim.Len(), g.sim.State(), formatMillis(g.passes.mean()), formatDuration(g.activeFor), ebiten.ActualFPS())
	ebitenutil.DebugPrintAt(screen, hud, 12, 12)

	// Pass times, oldest on the left
	base := float32(36 + config.SparkHeight)
	for i, bar := range sparkline(g.passes.snapshot(config.SparkBars), config.SparkHeight) {
		x := float32(12 + i*config.SparkBarStride)
		vector.StrokeLine(screen, x, base, x, base-float32(max(bar, 1)), 1, surface.Tint(0.6), false)
	}
}

// Layout keeps one logical pixel per window pixel so the canvas always
// matches the viewport.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.outW, g.outH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (g *Game) Simulator() *simulator.Simulator {
	return g.sim
}

// Run opens the window and blocks until it is closed.
func Run(g *Game) error {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}
