package analytics

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	appErrors "github.com/alumnet-dev/alumnet-api/pkg/errors"
)

// Period identifies a fixed lookback window for growth calculations.
type Period string

const (
	PeriodDay   Period = "1d"
	PeriodWeek  Period = "7d"
	PeriodMonth Period = "30d"
)

// Periods lists every supported lookback period.
func Periods() []Period {
	return []Period{PeriodDay, PeriodWeek, PeriodMonth}
}

// Days returns the period length in days.
func (p Period) Days() int {
	switch p {
	case PeriodDay:
		return 1
	case PeriodWeek:
		return 7
	default:
		return 30
	}
}

// Hourly reports whether timelines for this period use hour buckets.
func (p Period) Hourly() bool {
	return p == PeriodDay
}

// Window partitions time into two contiguous, equal-length ranges ending
// at the reference instant, enabling period-over-period comparison.
type Window struct {
	Start         time.Time
	End           time.Time
	PreviousStart time.Time
	PreviousEnd   time.Time
}

// WindowFor computes the current and previous ranges for a period. The
// caller captures now once per request and threads it through every
// sub-computation so a request never straddles a clock tick.
func WindowFor(p Period, now time.Time) Window {
	length := time.Duration(p.Days()) * 24 * time.Hour
	return Window{
		Start:         now.Add(-length),
		End:           now,
		PreviousStart: now.Add(-2 * length),
		PreviousEnd:   now.Add(-length),
	}
}

var monthsByName = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may": time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// ParseMonthYear resolves strings of the form "January 2025" or
// "Jan-2025" to a month and year. Parsing is locale-independent and
// malformed input is rejected rather than defaulted.
func ParseMonthYear(raw string) (time.Month, int, error) {
	trimmed := strings.TrimSpace(raw)
	sep := " "
	if strings.Contains(trimmed, "-") {
		sep = "-"
	}
	parts := strings.SplitN(trimmed, sep, 2)
	if len(parts) != 2 {
		return 0, 0, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid month-year %q, expected \"Jan-2006\" or \"January 2006\"", raw))
	}

	month, ok := monthsByName[strings.ToLower(strings.TrimSpace(parts[0]))]
	if !ok {
		return 0, 0, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid month %q", parts[0]))
	}

	year, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || year < 1900 || year > 9999 {
		return 0, 0, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid year %q", parts[1]))
	}

	return month, year, nil
}

// MonthStart returns the first instant of the month in UTC.
func MonthStart(month time.Month, year int) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// MonthEnd returns 23:59:59 of the month's last day in UTC.
func MonthEnd(month time.Month, year int) time.Time {
	return MonthStart(month, year).AddDate(0, 1, 0).Add(-time.Second)
}

// MonthYearStart parses a month-year string to the month's first instant.
func MonthYearStart(raw string) (time.Time, error) {
	month, year, err := ParseMonthYear(raw)
	if err != nil {
		return time.Time{}, err
	}
	return MonthStart(month, year), nil
}

// MonthYearEnd parses a month-year string to the month's last second.
func MonthYearEnd(raw string) (time.Time, error) {
	month, year, err := ParseMonthYear(raw)
	if err != nil {
		return time.Time{}, err
	}
	return MonthEnd(month, year), nil
}

// FormatMonthYear renders a timestamp as "Jan-2006" in UTC, the label
// used by monthly timeseries.
func FormatMonthYear(t time.Time) string {
	return t.UTC().Format("Jan-2006")
}
