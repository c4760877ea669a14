package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/particle-field/internal/config"
)

type cell struct {
	fg, bg colorful.Color
	r      rune
	dot    bool
}

// Surface rasterises the field onto terminal cells. One cell covers
// CellWidth x CellHeight surface units; colours blend over the page
// background by their alpha.
type Surface struct {
	cols, rows int
	background colorful.Color
	cells      []cell
}

func NewSurface() *Surface {
	bg, _ := colorful.MakeColor(config.Background)
	return &Surface{background: bg}
}

func (s *Surface) Resize(w, h int) {
	s.cols, s.rows = max(w, 0)/config.CellWidth, max(h, 0)/config.CellHeight
	s.cells = make([]cell, s.cols*s.rows)
	s.Clear()
}

func (s *Surface) Clear() {
	for i := range s.cells {
		s.cells[i] = cell{fg: s.background, bg: s.background, r: ' '}
	}
}

func (s *Surface) FillCircle(x, y, r float64, c color.Color) {
	cl := s.at(x, y)
	if cl == nil {
		return
	}
	src, alpha := split(c)
	cl.fg = cl.bg.BlendRgb(src, alpha).Clamped()
	if r >= 1.5 {
		cl.r = '•'
	} else {
		cl.r = '·'
	}
	cl.dot = true
}

// StrokeLine tints the background of the cells the line crosses. Lines
// are one cell wide whatever width is asked for.
func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	src, alpha := split(c)
	glyph := lineRune(x1-x0, y1-y0)

	steps := int(math.Ceil(max(math.Abs(x1-x0)/config.CellWidth, math.Abs(y1-y0)/config.CellHeight)))
	var last *cell
	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		cl := s.at(x0+(x1-x0)*t, y0+(y1-y0)*t)
		if cl == nil || cl == last {
			continue
		}
		last = cl
		cl.bg = cl.bg.BlendRgb(src, alpha).Clamped()
		if !cl.dot {
			cl.fg = cl.bg.BlendRgb(src, min(alpha*4, 1)).Clamped()
			cl.r = glyph
		}
	}
}

// Size is the surface size in cells.
func (s *Surface) Size() (cols, rows int) {
	return s.cols, s.rows
}

// Present draws the surface with its top row on screen row top.
func (s *Surface) Present(screen tcell.Screen, top int) {
	_, height := screen.Size()
	for row := 0; row < s.rows; row++ {
		y := top + row
		if y < 0 || y >= height {
			continue
		}
		for col := 0; col < s.cols; col++ {
			cl := &s.cells[row*s.cols+col]
			style := tcell.StyleDefault.Foreground(tcellColor(cl.fg)).Background(tcellColor(cl.bg))
			screen.SetContent(col, y, cl.r, nil, style)
		}
	}
}

func (s *Surface) at(x, y float64) *cell {
	if x < 0 || y < 0 {
		return nil
	}
	col, row := int(x/config.CellWidth), int(y/config.CellHeight)
	if col >= s.cols || row >= s.rows {
		return nil
	}
	return &s.cells[row*s.cols+col]
}

func split(c color.Color) (colorful.Color, float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return colorful.Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
	}, float64(n.A) / 255
}

func lineRune(dx, dy float64) rune {
	// Cells are twice as tall as wide.
	dy *= float64(config.CellWidth) / config.CellHeight
	switch {
	case math.Abs(dy) < math.Abs(dx)*0.4:
		return '─'
	case math.Abs(dx) < math.Abs(dy)*0.4:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
