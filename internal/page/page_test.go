package page

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/simulator"
	"github.com/iburimskiy/particle-field/internal/surface"
)

func TestScrollClamping(t *testing.T) {
	tests := []struct {
		name string
		to   float64
		want float64
	}{
		{"Above top", -50, 0},
		{"Inside", 700, 700},
		{"Past bottom", 1e6, float64(600 * (config.PageScreens - 1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(800, 600)
			p.ScrollTo(tt.to)
			if p.ScrollY() != tt.want {
				t.Errorf("ScrollTo(%v) = %v, want %v", tt.to, p.ScrollY(), tt.want)
			}
		})
	}
}

func TestResizeNotifiesAndReclamps(t *testing.T) {
	p := New(800, 600)
	var got [][2]int
	p.OnResize(func(w, h int) { got = append(got, [2]int{w, h}) })

	p.ScrollTo(p.MaxScroll())
	p.Resize(800, 600)
	p.Resize(400, 300)

	if !reflect.DeepEqual(got, [][2]int{{400, 300}}) {
		t.Errorf("Expected one notification for 400x300, got %v", got)
	}
	if p.ScrollY() != p.MaxScroll() || p.MaxScroll() != 900 {
		t.Errorf("Expected scroll clamped to 900, got %v (max %v)", p.ScrollY(), p.MaxScroll())
	}
}

func TestObserveCanvas(t *testing.T) {
	p := New(800, 600)
	p.Add(config.CanvasID, &surface.Recorder{})

	var got []bool
	p.Observe(config.CanvasID, func(in bool) { got = append(got, in) })

	p.ScrollBy(300)
	p.ScrollBy(300)
	p.ScrollBy(-1)
	p.SetHidden(true)
	p.SetHidden(false)

	want := []bool{true, false, true, false, true}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected notifications %v, got %v", want, got)
	}
}

func TestObserveUnknownSurface(t *testing.T) {
	p := New(800, 600)
	called := false
	p.Observe("missing", func(bool) { called = true })
	p.ScrollBy(100)
	if called {
		t.Errorf("Unknown surfaces must not be observed")
	}
	if _, ok := p.Rect("missing"); ok {
		t.Errorf("Expected no rect for a missing surface")
	}
}

func TestSurfacesStackBySection(t *testing.T) {
	p := New(640, 480)
	p.Add("hero", &surface.Recorder{})
	p.Add("second", &surface.Recorder{})

	r, ok := p.Rect("second")
	if !ok {
		t.Fatal("Expected rect for second surface")
	}
	if r.Y != 480 || r.H != 480 || r.W != 640 {
		t.Errorf("Unexpected rect %+v", r)
	}
}

func TestSimulatorDrivenByPage(t *testing.T) {
	p := New(1600, 900)
	canvas := &surface.Recorder{}
	p.Add(config.CanvasID, canvas)

	sim := simulator.Mount(p, rand.New(rand.NewSource(5)))
	if sim == nil {
		t.Fatal("Expected the simulator to mount")
	}
	if sim.Len() != 80 || sim.State() != simulator.Active {
		t.Fatalf("Expected 80 active particles, got %d %v", sim.Len(), sim.State())
	}

	for i := 0; i < 3; i++ {
		if p.Frame() != 1 {
			t.Fatalf("Expected one callback per frame")
		}
	}

	p.ScrollTo(900)
	if sim.State() != simulator.Idle {
		t.Errorf("Expected Idle once the canvas scrolled away")
	}
	if p.Frame() != 0 {
		t.Errorf("Expected no work while the canvas is off screen")
	}

	p.ScrollTo(0)
	p.Resize(300, 200)
	if canvas.W != 300 || canvas.H != 200 {
		t.Errorf("Expected canvas 300x200, got %dx%d", canvas.W, canvas.H)
	}
	if sim.Len() != 80 {
		t.Errorf("Particle count must not change on resize")
	}
	if p.Frame() != 1 || sim.Passes() != 4 {
		t.Errorf("Expected the loop to resume, passes=%d", sim.Passes())
	}
}

func TestSimulatorSkippedWithoutCanvas(t *testing.T) {
	p := New(1600, 900)
	if sim := simulator.Mount(p, rand.New(rand.NewSource(5))); sim != nil {
		t.Fatal("Expected no simulator without a canvas")
	}
	if p.Frame() != 0 {
		t.Errorf("Expected an empty frame loop")
	}
}
