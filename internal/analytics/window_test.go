package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/alumnet-dev/alumnet-api/pkg/errors"
)

func TestWindowForPartitionsTime(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	for _, period := range Periods() {
		window := WindowFor(period, now)
		length := time.Duration(period.Days()) * 24 * time.Hour

		assert.Equal(t, now, window.End)
		assert.Equal(t, now.Add(-length), window.Start)
		assert.Equal(t, window.Start, window.PreviousEnd, "windows must be contiguous")
		assert.Equal(t, now.Add(-2*length), window.PreviousStart)
		assert.Equal(t, window.End.Sub(window.Start), window.PreviousEnd.Sub(window.PreviousStart))
	}
}

func TestPeriodGranularity(t *testing.T) {
	assert.True(t, PeriodDay.Hourly())
	assert.False(t, PeriodWeek.Hourly())
	assert.False(t, PeriodMonth.Hourly())
	assert.Equal(t, 1, PeriodDay.Days())
	assert.Equal(t, 7, PeriodWeek.Days())
	assert.Equal(t, 30, PeriodMonth.Days())
}

func TestParseMonthYear(t *testing.T) {
	tests := []struct {
		raw   string
		month time.Month
		year  int
	}{
		{"January 2025", time.January, 2025},
		{"Jan-2025", time.January, 2025},
		{"dec-2019", time.December, 2019},
		{"September 2024", time.September, 2024},
		{"  Mar-2021 ", time.March, 2021},
	}

	for _, tc := range tests {
		month, year, err := ParseMonthYear(tc.raw)
		require.NoError(t, err, tc.raw)
		assert.Equal(t, tc.month, month, tc.raw)
		assert.Equal(t, tc.year, year, tc.raw)
	}
}

func TestParseMonthYearRejectsMalformedInput(t *testing.T) {
	for _, raw := range []string{"", "2025", "Janvier 2025", "Jan-abcd", "Jan-99", "Month-2025", "13-2025"} {
		_, _, err := ParseMonthYear(raw)
		require.Error(t, err, raw)
		appErr := appErrors.FromError(err)
		assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code, raw)
	}
}

func TestMonthBoundariesAreUTC(t *testing.T) {
	start, err := MonthYearStart("Feb-2024")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), start)

	end, err := MonthYearEnd("Feb-2024")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC), end, "leap year february")

	end, err = MonthYearEnd("Dec-2025")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC), end)
}

func TestFormatMonthYear(t *testing.T) {
	assert.Equal(t, "Jun-2025", FormatMonthYear(time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Jan-2025", FormatMonthYear(time.Date(2024, 12, 31, 23, 30, 0, 0, time.FixedZone("EST", -5*3600))), "formatting is UTC anchored")
}
