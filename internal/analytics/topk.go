package analytics

import "sort"

// TopItem is a ranked categorical value with its occurrence count.
type TopItem struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Accumulate counts occurrences of each non-empty value.
func Accumulate(values []string) map[string]int {
	counts := make(map[string]int, len(values))
	for _, value := range values {
		if value == "" {
			continue
		}
		counts[value]++
	}
	return counts
}

// TopK ranks counted values by descending count, ties broken
// lexicographically ascending by name, and truncates to at most k
// entries. The tie-break keeps ranking deterministic regardless of map
// iteration order. The result is never nil.
func TopK(counts map[string]int, k int) []TopItem {
	items := make([]TopItem, 0, len(counts))
	for name, count := range counts {
		items = append(items, TopItem{Name: name, Count: count})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Name < items[j].Name
	})

	if k >= 0 && len(items) > k {
		items = items[:k]
	}
	return items
}
