package domain

import "time"

type Clock interface {
	Now() time.Time
}

type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// FixedClock always returns T. Used by tests and the CLI's --at flag.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }
