// Package term shows the particle page in a terminal.
package term

import (
	"image/color"
	"log"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/cursor"
	"github.com/iburimskiy/particle-field/internal/page"
	"github.com/iburimskiy/particle-field/internal/particle"
	"github.com/iburimskiy/particle-field/internal/simulator"
	"github.com/iburimskiy/particle-field/internal/surface"
)

type App struct {
	screen tcell.Screen
	page   *page.Page
	canvas *Surface
	sim    *simulator.Simulator
	cursor *cursor.Pair

	mouseX, mouseY float64
}

// New lays out the page for the screen's current size and mounts the
// particle field on it. The screen must already be initialised.
func New(screen tcell.Screen, src particle.Source) *App {
	cols, rows := screen.Size()
	a := &App{
		screen: screen,
		page:   page.New(cols*config.CellWidth, rows*config.CellHeight),
		canvas: NewSurface(),
		cursor: cursor.NewPair(),
	}
	a.page.Add(config.CanvasID, a.canvas)
	a.sim = simulator.Mount(a.page, src)
	log.Printf("terminal %dx%d, %d particles", cols, rows, a.sim.Len())
	return a
}

func (a *App) Simulator() *simulator.Simulator { return a.sim }

func (a *App) Page() *page.Page { return a.page }

// HandleEvent applies one terminal event and reports whether to keep
// running.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			a.page.ScrollBy(-config.CellHeight)
		case tcell.KeyDown:
			a.page.ScrollBy(config.CellHeight)
		case tcell.KeyPgUp:
			_, h := a.page.Viewport()
			a.page.ScrollBy(-float64(h))
		case tcell.KeyPgDn:
			_, h := a.page.Viewport()
			a.page.ScrollBy(float64(h))
		case tcell.KeyHome:
			a.page.ScrollTo(0)
		case tcell.KeyEnd:
			a.page.ScrollTo(a.page.MaxScroll())
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return false
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		a.mouseX = float64(x*config.CellWidth + config.CellWidth/2)
		a.mouseY = float64(y*config.CellHeight + config.CellHeight/2)
		buttons := ev.Buttons()
		if buttons&tcell.WheelUp != 0 {
			a.page.ScrollBy(-config.WheelStep)
		}
		if buttons&tcell.WheelDown != 0 {
			a.page.ScrollBy(config.WheelStep)
		}

	case *tcell.EventResize:
		cols, rows := ev.Size()
		a.page.Resize(cols*config.CellWidth, rows*config.CellHeight)
		a.screen.Sync()
	}
	return true
}

// Frame runs one refresh: the frame loop, the followers, then the draw.
func (a *App) Frame() {
	a.page.Frame()
	a.cursor.Step(a.mouseX, a.mouseY)
	a.draw()
}

func (a *App) draw() {
	cols, rows := a.screen.Size()
	bg := tcell.StyleDefault.Background(tcellColor(toColorful(config.Background)))
	a.screen.Fill(' ', bg)

	scroll := a.page.ScrollY()
	if r, ok := a.page.Rect(config.CanvasID); ok {
		a.canvas.Present(a.screen, int(math.Floor((r.Y-scroll)/config.CellHeight)))
	}

	for i, title := range config.SectionTitles {
		if title == "" {
			continue
		}
		sec := a.page.Section(i)
		y := int(math.Floor((sec.Y+sec.H/2-scroll)/config.CellHeight))
		x := (cols - len(title)) / 2
		a.drawText(x, y, title, bg.Foreground(tcellColor(toColorful(surface.Tint(1)))).Bold(true))
	}

	a.drawCursor(cols, rows)
	a.screen.Show()
}

func (a *App) drawCursor(cols, rows int) {
	tint := toColorful(surface.Tint(1))
	glowX, glowY := a.cursor.Glow.X, a.cursor.Glow.Y
	r := float64(config.GlowRadius)
	for y := int((glowY - r) / config.CellHeight); y <= int((glowY+r)/config.CellHeight); y++ {
		for x := int((glowX - r) / config.CellWidth); x <= int((glowX+r)/config.CellWidth); x++ {
			if x < 0 || y < 0 || x >= cols || y >= rows {
				continue
			}
			cx := float64(x*config.CellWidth + config.CellWidth/2)
			cy := float64(y*config.CellHeight + config.CellHeight/2)
			d := math.Hypot(cx-glowX, cy-glowY)
			if d >= r {
				continue
			}
			mainc, combc, style, _ := a.screen.GetContent(x, y)
			_, bg, _ := style.Decompose()
			glow := colorOf(bg).BlendRgb(tint, 0.08*(1-d/r)).Clamped()
			a.screen.SetContent(x, y, mainc, combc, style.Background(tcellColor(glow)))
		}
	}

	dx := int(a.cursor.Dot.X / config.CellWidth)
	dy := int(a.cursor.Dot.Y / config.CellHeight)
	if dx >= 0 && dy >= 0 && dx < cols && dy < rows {
		_, _, style, _ := a.screen.GetContent(dx, dy)
		a.screen.SetContent(dx, dy, '●', nil, style.Foreground(tcellColor(tint)))
	}
}

func (a *App) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		a.screen.SetContent(x+i, y, r, nil, style)
	}
}

// Run drives the app at FrameInterval until the user quits. Events are
// pumped from a goroutine so the ticker keeps the field moving.
func (a *App) Run() {
	ticker := time.NewTicker(config.FrameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	a.Frame()
	for {
		select {
		case ev := <-events:
			if !a.HandleEvent(ev) {
				log.Printf("quit after %d passes", a.sim.Passes())
				return
			}
		case <-ticker.C:
			a.Frame()
		}
	}
}

func toColorful(c color.Color) colorful.Color {
	col, _ := colorful.MakeColor(c)
	return col
}

func colorOf(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	if r < 0 {
		return toColorful(config.Background)
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}
