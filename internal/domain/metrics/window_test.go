package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseRangeDefaultsToMonth(t *testing.T) {
	assert.Equal(t, RangeMonth, ParseRange(""))
	assert.Equal(t, RangeMonth, ParseRange("year"))
	assert.Equal(t, RangeWeek, ParseRange("week"))
	assert.Equal(t, RangeQuarter, ParseRange("quarter"))
}

func TestResolveWeek(t *testing.T) {
	now := time.Date(2025, 6, 18, 15, 30, 0, 0, time.UTC)

	current, previous := Resolve(RangeWeek, now)

	assert.Equal(t, date(2025, 6, 11), current.Start)
	assert.True(t, current.Open())

	assert.Equal(t, date(2025, 6, 4), previous.Start)
	assert.Equal(t, date(2025, 6, 11), previous.End)

	// Janelas contíguas e de mesmo tamanho.
	assert.Equal(t, current.Start, previous.End)
	assert.Equal(t, 7*24*time.Hour, previous.End.Sub(previous.Start))
}

func TestResolveMonth(t *testing.T) {
	now := time.Date(2025, 6, 18, 9, 0, 0, 0, time.UTC)

	current, previous := Resolve(RangeMonth, now)

	assert.Equal(t, date(2025, 6, 1), current.Start)
	assert.True(t, current.Open())
	assert.Equal(t, date(2025, 5, 1), previous.Start)
	assert.Equal(t, date(2025, 6, 1), previous.End)
}

func TestResolveMonthAcrossYearBoundary(t *testing.T) {
	now := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)

	current, previous := Resolve(RangeMonth, now)

	assert.Equal(t, date(2025, 1, 1), current.Start)
	assert.Equal(t, date(2024, 12, 1), previous.Start)
	assert.Equal(t, date(2025, 1, 1), previous.End)
}

func TestResolveQuarter(t *testing.T) {
	now := time.Date(2025, 8, 31, 23, 59, 0, 0, time.UTC)

	current, previous := Resolve(RangeQuarter, now)

	assert.Equal(t, date(2025, 7, 1), current.Start)
	assert.Equal(t, date(2025, 4, 1), previous.Start)
	assert.Equal(t, date(2025, 7, 1), previous.End)
}

func TestMonthStart(t *testing.T) {
	assert.Equal(t,
		date(2025, 2, 1),
		MonthStart(time.Date(2025, 2, 28, 18, 45, 12, 0, time.UTC)),
	)
}
