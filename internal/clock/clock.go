package clock

import (
	"time"
)

// Clock supplies the current time so callers can be tested with a fixed one.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the time package
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
