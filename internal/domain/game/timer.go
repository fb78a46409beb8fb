package game

import "time"

// newTimer is a seam so tests can fire deferred work immediately.
var newTimer = func(d time.Duration) <-chan time.Time {
	return time.After(d)
}
