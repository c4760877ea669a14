// Package surface defines the 2D raster target the particle field draws
// on and the tint it draws with.
package surface

import (
	"image/color"

	"github.com/crazy3lf/colorconv"

	"github.com/iburimskiy/particle-field/internal/config"
)

// Surface is a resizable drawing target. Coordinates are in surface
// units with the origin at the top-left corner; drawing outside the
// surface is clipped silently.
type Surface interface {
	Resize(w, h int)
	Clear()
	FillCircle(x, y, r float64, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c color.Color)
}

var tint = func() color.NRGBA {
	r, g, b, err := colorconv.HSVToRGB(config.TintHue, config.TintSaturation, config.TintValue)
	if err != nil {
		return color.NRGBA{R: 6, G: 182, B: 212, A: 255}
	}
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}()

// Tint is the field colour at the given alpha in [0, 1].
func Tint(alpha float64) color.NRGBA {
	c := tint
	c.A = uint8(clamp01(alpha)*255 + 0.5)
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
