package analytics

import "math"

// Growth pairs an absolute period count with its percentage growth rate
// against the immediately preceding period of equal length.
type Growth struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// CalculateGrowth derives period-over-period growth from two already
// summed counts. A previous period of zero with current activity is
// reported as 100% rather than unbounded growth; two empty periods are
// 0%. The division is guarded, never raising for any input.
func CalculateGrowth(current, previous int) Growth {
	rate := 0.0
	switch {
	case previous > 0:
		rate = Round2(float64(current-previous) / float64(previous) * 100)
	case current > 0:
		rate = 100
	}
	return Growth{Rate: rate, Count: current}
}

// RecencyRate expresses the recent count as a percentage of the
// partition total. It is a ratio-to-total, not a period comparison:
// an empty partition or zero recent activity both yield 0.
func RecencyRate(recent, total int) float64 {
	if total == 0 || recent == 0 {
		return 0
	}
	return Round2(float64(recent) / float64(total) * 100)
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
