package biztime

import "time"

// Clock abstracts the current time so expiry checks can be driven by tests.
type Clock interface {
	Now() time.Time
}

// UTCClock is the production clock. It always returns UTC.
type UTCClock struct{}

func (UTCClock) Now() time.Time {
	return NowUTC()
}

// FixedClock returns a preset time. Intended for tests.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time {
	return c.T
}
