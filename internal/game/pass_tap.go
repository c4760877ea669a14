package game

import "time"

// passTap records the durations of the last N frame passes in a ring
// buffer so the HUD can show how long a pass takes.
type passTap struct {
	buffer    []time.Duration
	nextIndex int
	filled    int
}

func newPassTap(ringSize int) *passTap {
	return &passTap{
		buffer: make([]time.Duration, ringSize),
	}
}

func (t *passTap) record(d time.Duration) {
	t.buffer[t.nextIndex] = d
	t.nextIndex++
	if t.nextIndex >= len(t.buffer) {
		t.nextIndex = 0
	}
	if t.filled < len(t.buffer) {
		t.filled++
	}
}

// snapshot returns up to the last n durations, most recent last.
func (t *passTap) snapshot(n int) []time.Duration {
	if n > t.filled {
		n = t.filled
	}
	out := make([]time.Duration, 0, n)
	// Walk backwards from nextIndex - 1
	idx := t.nextIndex - 1
	if idx < 0 {
		idx = len(t.buffer) - 1
	}
	for i := 0; i < n; i++ {
		out = append(out, t.buffer[idx])
		idx--
		if idx < 0 {
			idx = len(t.buffer) - 1
		}
	}
	// reverse to chronological order
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func (t *passTap) mean() time.Duration {
	if t.filled == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range t.buffer[:t.filled] {
		sum += d
	}
	return sum / time.Duration(t.filled)
}

// sparkline scales durations to bar heights, the longest one reaching
// height.
func sparkline(ds []time.Duration, height float64) []float64 {
	var longest time.Duration
	for _, d := range ds {
		longest = max(longest, d)
	}
	bars := make([]float64, len(ds))
	if longest == 0 {
		return bars
	}
	for i, d := range ds {
		bars[i] = height * float64(d) / float64(longest)
	}
	return bars
}
