package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas is an offscreen ebiten image the particle field draws on. The
// game composites it onto the screen at the page's scroll offset.
type Canvas struct {
	img  *ebiten.Image
	w, h int
}

func NewCanvas() *Canvas {
	return &Canvas{}
}

// Resize reallocates the image; the old contents are dropped.
func (c *Canvas) Resize(w, h int) {
	if w == c.w && h == c.h && c.img != nil {
		return
	}
	if c.img != nil {
		c.img.Deallocate()
		c.img = nil
	}
	c.w, c.h = w, h
	if w > 0 && h > 0 {
		c.img = ebiten.NewImage(w, h)
	}
}

func (c *Canvas) Clear() {
	if c.img != nil {
		c.img.Clear()
	}
}

func (c *Canvas) FillCircle(x, y, r float64, clr color.Color) {
	if c.img == nil {
		return
	}
	vector.DrawFilledCircle(c.img, float32(x), float32(y), float32(r), clr, true)
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	if c.img == nil {
		return
	}
	vector.StrokeLine(c.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

// Image is nil while the canvas has no area.
func (c *Canvas) Image() *ebiten.Image {
	return c.img
}
