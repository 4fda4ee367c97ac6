package clock

import "time"

// Clock supplies the current time. Lifecycle computations (createdAt, dueBy,
// closedAt, slaMet) go through this seam so tests can pin the clock.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}
