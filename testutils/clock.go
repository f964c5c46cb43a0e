package testutils

import "time"

// FixedClock returns a clock that always reads the given instant.
func FixedClock(instant time.Time) func() time.Time {
	return func() time.Time {
		return instant
	}
}

// FixedClockAtEpochMilli returns a clock frozen at an epoch milliseconds
// value, which is how fixture timestamps are typically written down.
func FixedClockAtEpochMilli(ms int64) func() time.Time {
	return FixedClock(time.UnixMilli(ms).UTC())
}
