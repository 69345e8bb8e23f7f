// Package timer provides the elapsed-time gate used by every timed behaviour.
//
// Timestamps are durations since the loop started. Callers capture "now" once
// per frame and pass it down, so all comparisons within a frame agree.
package timer

import "time"

// Elapsed reports whether at least d has passed between start and now.
func Elapsed(start, now, d time.Duration) bool {
	return now-start >= d
}

// Since returns the time elapsed from start to now, never negative.
func Since(start, now time.Duration) time.Duration {
	if now < start {
		return 0
	}
	return now - start
}
