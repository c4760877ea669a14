package surface

import (
	"image/color"
	"testing"
)

func TestTintColour(t *testing.T) {
	c := Tint(1)
	// rgb(6, 182, 212) after an HSV round trip
	near := func(got, want uint8) bool {
		d := int(got) - int(want)
		return d >= -2 && d <= 2
	}
	if !near(c.R, 6) || !near(c.G, 182) || !near(c.B, 212) {
		t.Errorf("Expected tint near rgb(6,182,212), got %+v", c)
	}
}

func TestTintAlpha(t *testing.T) {
	tests := []struct {
		name  string
		alpha float64
		want  uint8
	}{
		{"Transparent", 0, 0},
		{"Opaque", 1, 255},
		{"Half", 0.5, 128},
		{"Faint link", 0.1, 26},
		{"Clamped low", -1, 0},
		{"Clamped high", 3, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tint(tt.alpha).A; got != tt.want {
				t.Errorf("Tint(%v).A = %d, want %d", tt.alpha, got, tt.want)
			}
		})
	}
}

func TestRecorder(t *testing.T) {
	var s Surface = &Recorder{}
	s.Resize(640, 480)
	s.Clear()
	s.FillCircle(1, 2, 1.5, Tint(0.5))
	s.StrokeLine(1, 2, 3, 4, 0.5, color.NRGBA{R: 1, G: 2, B: 3, A: 4})

	r := s.(*Recorder)
	if r.W != 640 || r.H != 480 {
		t.Errorf("Expected size 640x480, got %dx%d", r.W, r.H)
	}
	kinds := []string{"resize", "clear", "circle", "line"}
	if len(r.Ops) != len(kinds) {
		t.Fatalf("Expected %d ops, got %d", len(kinds), len(r.Ops))
	}
	for i, k := range kinds {
		if r.Ops[i].Kind != k {
			t.Errorf("Op %d: expected %q, got %q", i, k, r.Ops[i].Kind)
		}
	}
	if r.Ops[3].Color != (color.NRGBA{R: 1, G: 2, B: 3, A: 4}) {
		t.Errorf("Line colour not preserved: %+v", r.Ops[3].Color)
	}

	r.Reset()
	if r.Count("circle") != 0 || r.W != 640 {
		t.Errorf("Reset must drop ops and keep size")
	}
}
