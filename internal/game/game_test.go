package game

import (
	"reflect"
	"testing"
	"time"

	"github.com/iburimskiy/particle-field/internal/page"
)

func TestPassTapSnapshot(t *testing.T) {
	tap := newPassTap(3)
	if got := tap.snapshot(5); len(got) != 0 {
		t.Fatalf("Expected empty snapshot, got %v", got)
	}

	for i := 1; i <= 5; i++ {
		tap.record(time.Duration(i) * time.Millisecond)
	}

	want := []time.Duration{3 * time.Millisecond, 4 * time.Millisecond, 5 * time.Millisecond}
	if got := tap.snapshot(10); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if got := tap.snapshot(2); !reflect.DeepEqual(got, want[1:]) {
		t.Errorf("Expected %v, got %v", want[1:], got)
	}
}

func TestPassTapMean(t *testing.T) {
	tap := newPassTap(4)
	if tap.mean() != 0 {
		t.Errorf("Expected zero mean when empty")
	}
	tap.record(2 * time.Millisecond)
	tap.record(4 * time.Millisecond)
	if got := tap.mean(); got != 3*time.Millisecond {
		t.Errorf("Expected 3ms, got %v", got)
	}
}

func TestPassTapMeanAfterWrap(t *testing.T) {
	tap := newPassTap(2)
	for _, ms := range []int{100, 2, 4} {
		tap.record(time.Duration(ms) * time.Millisecond)
	}
	if got := tap.mean(); got != 3*time.Millisecond {
		t.Errorf("Expected 3ms over the last two passes, got %v", got)
	}
}

func TestSparkline(t *testing.T) {
	tests := []struct {
		name string
		ds   []time.Duration
		want []float64
	}{
		{"Empty", nil, []float64{}},
		{"All zero", []time.Duration{0, 0}, []float64{0, 0}},
		{"Scaled to longest", []time.Duration{time.Millisecond, 4 * time.Millisecond, 2 * time.Millisecond}, []float64{5, 20, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sparkline(tt.ds, 20); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"Zero", 0, "00:00"},
		{"Seconds", 42 * time.Second, "00:42"},
		{"Minutes", 3*time.Minute + 7*time.Second, "03:07"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatDuration(tt.d); got != tt.want {
				t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestFormatMillis(t *testing.T) {
	if got := formatMillis(1500 * time.Microsecond); got != "1.50ms" {
		t.Errorf("Expected 1.50ms, got %q", got)
	}
}

func TestApplyScroll(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		in    input
		want  float64
	}{
		{"Wheel down", 0, input{wheelY: -1}, 48},
		{"Wheel up at top", 0, input{wheelY: 2}, 0},
		{"Arrow down", 100, input{down: true}, 124},
		{"Arrow up", 100, input{up: true}, 76},
		{"Page down", 0, input{pageDown: true}, 600},
		{"Page up", 700, input{pageUp: true}, 100},
		{"Home", 900, input{home: true}, 0},
		{"End", 0, input{end: true}, 1800},
		{"Nothing", 300, input{}, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &Game{page: page.New(800, 600)}
			g.page.ScrollTo(tt.start)
			g.applyScroll(tt.in)
			if got := g.page.ScrollY(); got != tt.want {
				t.Errorf("Expected scroll %v, got %v", tt.want, got)
			}
		})
	}
}

func TestLayoutMatchesWindow(t *testing.T) {
	g := &Game{page: page.New(800, 600)}
	w, h := g.Layout(1024, 700)
	if w != 1024 || h != 700 {
		t.Errorf("Expected 1024x700, got %dx%d", w, h)
	}
	if g.outW != 1024 || g.outH != 700 {
		t.Errorf("Expected pending size 1024x700, got %dx%d", g.outW, g.outH)
	}
}
