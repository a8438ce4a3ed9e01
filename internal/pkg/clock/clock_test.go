package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateOfTruncatesToUTCDate(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	local := time.Date(2025, 3, 11, 2, 30, 0, 0, loc) // 2025-03-10 19:30 UTC

	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), DateOf(local))
}

func TestFixedClockAdvance(t *testing.T) {
	c := NewFixedClock(time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), c.Today())

	c.Advance(2 * time.Hour)
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), c.Today(),
		"advancing past midnight moves the calendar date")

	c.AdvanceDays(3)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), c.Today())
}
