package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateGrowth(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		previous int
		rate     float64
	}{
		{"both empty", 0, 0, 0},
		{"previous empty caps at 100", 5, 0, 100},
		{"positive growth", 15, 10, 50},
		{"negative growth", 5, 10, -50},
		{"fractional rate rounds to 2 decimals", 10, 3, 233.33},
		{"complete drop", 0, 8, -100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			growth := CalculateGrowth(tc.current, tc.previous)
			assert.Equal(t, tc.current, growth.Count)
			assert.InDelta(t, tc.rate, growth.Rate, 0.001)
		})
	}
}

func TestRecencyRateIsRatioToTotal(t *testing.T) {
	assert.Zero(t, RecencyRate(0, 0), "empty partition")
	assert.Zero(t, RecencyRate(0, 40), "no recent activity")
	assert.Zero(t, RecencyRate(3, 0), "guarded against zero total")
	assert.InDelta(t, 12.5, RecencyRate(5, 40), 0.001)
	assert.InDelta(t, 33.33, RecencyRate(1, 3), 0.001)
	assert.InDelta(t, 100, RecencyRate(7, 7), 0.001)
}
