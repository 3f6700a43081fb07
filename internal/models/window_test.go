package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlignTimeframe_SnapsToDayBoundaries(t *testing.T) {
	t.Parallel()

	// 1970-01-01 12:00:00 UTC .. 1970-01-04 06:00:00 UTC
	first := int64(43200000)
	last := 3*Day + 6*Hour

	start, end := AlignTimeframe(first, last)

	// Next 00:00 UTC+1 after first is day 1 at 23:00 UTC.
	assert.Equal(t, Day+TZOffset, start)
	// Previous 00:00 UTC+1 at or before last is day 3 at 23:00 UTC.
	assert.Equal(t, 3*Day+TZOffset, end)
	assert.Equal(t, int64(0), (start-TZOffset)%Day)
	assert.Equal(t, int64(0), (end-TZOffset)%Day)
}

func TestAlignTimeframe_StartAlwaysAdvances(t *testing.T) {
	t.Parallel()

	// Even a timestamp exactly on a boundary is pushed to the next day,
	// so the first partial day is always discarded.
	start, _ := AlignTimeframe(Day+TZOffset, 5*Day)
	assert.Greater(t, start, Day+TZOffset)
}

func TestNormalizeToNextDay(t *testing.T) {
	t.Parallel()

	ts := 2*Day + 5*Hour
	normalized := NormalizeToNextDay(ts)

	assert.Equal(t, 3*Day+TZOffset, normalized)
	assert.Greater(t, normalized, ts)
}

func TestTimeWindowLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "7d", TimeWindowLabel(7))
	assert.Equal(t, "1d", TimeWindowLabel(1))
}
