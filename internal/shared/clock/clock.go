// Package clock provides the time source used by all window and expiry
// comparisons. Production code uses System; tests inject a fixed clock so
// boundary conditions are deterministic. All returned times are UTC.
package clock

import "time"

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// System is the real clock backed by the platform time source.
var System Clock = systemClock{}

// Fixed returns a clock frozen at t. Intended for tests.
func Fixed(t time.Time) Clock {
	return fixedClock{t: t.UTC()}
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}
