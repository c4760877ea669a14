package surface

import "image/color"

// Op is one recorded drawing call.
type Op struct {
	Kind   string // "resize", "clear", "circle" or "line"
	X0, Y0 float64
	X1, Y1 float64
	Size   float64 // radius for circles, width for lines
	Color  color.NRGBA
}

// Recorder is a Surface that keeps every call, for tests.
type Recorder struct {
	W, H int
	Ops  []Op
}

func (r *Recorder) Resize(w, h int) {
	r.W, r.H = w, h
	r.Ops = append(r.Ops, Op{Kind: "resize", X1: float64(w), Y1: float64(h)})
}

func (r *Recorder) Clear() {
	r.Ops = append(r.Ops, Op{Kind: "clear"})
}

func (r *Recorder) FillCircle(x, y, radius float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "circle", X0: x, Y0: y, Size: radius, Color: toNRGBA(c)})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "line", X0: x0, Y0: y0, X1: x1, Y1: y1, Size: width, Color: toNRGBA(c)})
}

// Count returns how many ops of the given kind were recorded.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset forgets recorded ops but keeps the size.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
