package util

import "time"

// NowUTC exposes time.Now for deterministic testing.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// Millis converts a duration to whole milliseconds for JSON payloads.
func Millis(d time.Duration) int64 {
	return d.Milliseconds()
}
