package util

import "time"

// MBPerSec computes the per-second rate between two cumulative megabyte
// counters. Returns 0 when no time has elapsed. A negative result means the
// counter went backwards; callers decide how to treat that.
func MBPerSec(prev, curr float64, dt time.Duration) float64 {
	if dt <= 0 {
		return 0
	}
	return (curr - prev) / dt.Seconds()
}
