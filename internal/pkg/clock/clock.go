package clock

import "time"

// Clock abstracts wall-clock time so calendar-date logic (streaks) is
// deterministic under test.
type Clock interface {
	Now() time.Time
	// Today returns the current calendar date in UTC with no time component.
	Today() time.Time
}

type systemClock struct{}

func NewSystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

func (systemClock) Today() time.Time {
	return DateOf(time.Now().UTC())
}

// DateOf truncates a time to its UTC calendar date.
func DateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FixedClock always reports the same instant; tests advance it manually.
type FixedClock struct {
	Current time.Time
}

func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{Current: t}
}

func (c *FixedClock) Now() time.Time {
	return c.Current
}

func (c *FixedClock) Today() time.Time {
	return DateOf(c.Current)
}

func (c *FixedClock) Advance(d time.Duration) {
	c.Current = c.Current.Add(d)
}

func (c *FixedClock) AdvanceDays(days int) {
	c.Current = c.Current.AddDate(0, 0, days)
}
