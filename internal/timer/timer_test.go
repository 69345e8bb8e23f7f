package timer

import (
	"testing"
	"time"
)

func TestElapsed(t *testing.T) {
	tests := []struct {
		name       string
		start, now time.Duration
		d          time.Duration
		want       bool
	}{
		{"before", 0, 249 * time.Millisecond, 250 * time.Millisecond, false},
		{"exact", 0, 250 * time.Millisecond, 250 * time.Millisecond, true},
		{"after", time.Second, 2 * time.Second, 500 * time.Millisecond, true},
		{"zero duration", time.Second, time.Second, 0, true},
		{"clock behind start", time.Second, 0, time.Millisecond, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Elapsed(tt.start, tt.now, tt.d); got != tt.want {
				t.Errorf("Elapsed(%v, %v, %v) = %v, want %v", tt.start, tt.now, tt.d, got, tt.want)
			}
		})
	}
}

func TestSinceNeverNegative(t *testing.T) {
	if got := Since(time.Second, 0); got != 0 {
		t.Errorf("Since = %v, want 0", got)
	}
	if got := Since(time.Second, 3*time.Second); got != 2*time.Second {
		t.Errorf("Since = %v, want 2s", got)
	}
}
