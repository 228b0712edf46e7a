package util

import (
	"regexp"
	"strconv"
)

var leadingIntPattern = regexp.MustCompile(`^\s*([+-]?\d+)`)

// ParseLeadingInt parses the integer at the start of input, ignoring leading
// whitespace and anything after the digits. "12abc" yields 12; "abc" and ""
// fail.
func ParseLeadingInt(input string) (int, bool) {
	m := leadingIntPattern.FindStringSubmatch(input)
	if m == nil {
		return 0, false
	}
	parsed, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return parsed, true
}

