package pipeline

import (
	"slices"
	"strconv"

	"willcall/internal/util"
)

// RenderTicketRange compresses ticket ids for display. A contiguous numeric
// run renders as "1001..07"; anything else collapses to the first id followed
// by ",...". The result is not meant to be parsed back.
func RenderTicketRange(ids []string) string {
	if len(ids) == 0 {
		return ""
	}
	if out, ok := prefixRange(ids); ok {
		return out
	}
	if len(ids) > 1 {
		return ids[0] + ",..."
	}
	return ids[0]
}

func prefixRange(ids []string) (string, bool) {
	numbers := make([]int, 0, len(ids))
	for _, id := range ids {
		n, ok := util.ParseLeadingInt(id)
		if !ok {
			return "", false
		}
		numbers = append(numbers, n)
	}

	slices.Sort(numbers)
	if len(numbers) == 1 {
		return strconv.Itoa(numbers[0]), true
	}
	for i := 1; i < len(numbers); i++ {
		if numbers[i] != numbers[i-1]+1 {
			return "", false
		}
	}

	first := strconv.Itoa(numbers[0])
	last := strconv.Itoa(numbers[len(numbers)-1])
	keep := max(divergenceIndex(first, last)-1, 0)
	return first + ".." + last[keep:], true
}

// divergenceIndex is the first byte position where a and b differ, or the
// length of the shorter string when one is a prefix of the other.
func divergenceIndex(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
