package timingwheel

import "time"

func durationMS(d time.Duration) int64 {
	return int64(d / time.Millisecond)
}

// monotonicClock anchors at construction so deltas ride time.Now's
// monotonic reading and wall-clock adjustments cannot move it backwards.
func monotonicClock() func() int64 {
	start := time.Now()
	return func() int64 {
		return durationMS(time.Since(start))
	}
}
