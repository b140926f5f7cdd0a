package clock

import (
	"testing"
	"time"
)

func TestFPS(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		want    int
	}{
		{0, 1000},
		{500 * time.Microsecond, 1000},
		{time.Millisecond, 1000},
		{16 * time.Millisecond, 62},
		{50 * time.Millisecond, 20},
		{2 * time.Second, 0},
	}
	for _, tt := range tests {
		if got := FPS(tt.elapsed); got != tt.want {
			t.Errorf("FPS(%v) = %d, want %d", tt.elapsed, got, tt.want)
		}
	}
}

func TestMillis_ClampsToOne(t *testing.T) {
	if got := Millis(0); got != 1 {
		t.Errorf("Millis(0) = %v, want 1", got)
	}
	if got := Millis(250 * time.Microsecond); got != 1 {
		t.Errorf("Millis(250us) = %v, want 1", got)
	}
	if got := Millis(40 * time.Millisecond); got != 40 {
		t.Errorf("Millis(40ms) = %v, want 40", got)
	}
}

func TestFrameClock_ElapsedSince(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	current := base
	c := NewWithSource(func() time.Time { return current })

	start := c.Start()
	current = current.Add(35 * time.Millisecond)

	if got := c.ElapsedSince(start); got != 35*time.Millisecond {
		t.Errorf("ElapsedSince() = %v, want 35ms", got)
	}
}
