package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulateSkipsEmptyValues(t *testing.T) {
	counts := Accumulate([]string{"Google", "", "Google", "Stripe", ""})
	assert.Equal(t, map[string]int{"Google": 2, "Stripe": 1}, counts)
}

func TestTopKOrderingAndBound(t *testing.T) {
	counts := map[string]int{
		"Bangalore": 5,
		"Chennai":   2,
		"Hyderabad": 5,
		"Pune":      1,
		"Mumbai":    3,
	}

	top := TopK(counts, 3)

	require.Len(t, top, 3)
	assert.Equal(t, TopItem{Name: "Bangalore", Count: 5}, top[0], "tie broken lexicographically")
	assert.Equal(t, TopItem{Name: "Hyderabad", Count: 5}, top[1])
	assert.Equal(t, TopItem{Name: "Mumbai", Count: 3}, top[2])
}

func TestTopKNeverExceedsK(t *testing.T) {
	counts := map[string]int{"a": 1, "b": 2, "c": 3}

	assert.Len(t, TopK(counts, 10), 3, "fewer entries than k")
	assert.Len(t, TopK(counts, 2), 2)
	assert.Empty(t, TopK(counts, 0))
}

func TestTopKEmptyInput(t *testing.T) {
	top := TopK(nil, 10)
	require.NotNil(t, top, "callers never branch on nil")
	assert.Empty(t, top)
}

func TestTopKStrictlyDescending(t *testing.T) {
	top := TopK(map[string]int{"x": 4, "y": 9, "z": 1, "w": 9}, 4)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Count, top[i].Count)
	}
}
