package util

import (
	"regexp"
	"strings"
)

var (
	reWord       = regexp.MustCompile(`\w\S*`)
	reLineBreak  = regexp.MustCompile(`\r?\n`)
	reQuotedSpan = regexp.MustCompile(`"[^"]*"`)
)

const byteOrderMark = "\ufeff"

// ToProperNameCase upper-cases the first character of every \w\S* run and
// lower-cases the rest of it. Apostrophes and hyphens stay inside the run, so
// "o'connor" becomes "O'connor".
func ToProperNameCase(input string) string {
	return reWord.ReplaceAllStringFunc(input, func(word string) string {
		return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	})
}

// SplitLines splits on \n or \r\n. Empty lines are kept so line counts match
// the source file.
func SplitLines(text string) []string {
	return reLineBreak.Split(text, -1)
}

func StripBOM(text string) string {
	return strings.TrimPrefix(text, byteOrderMark)
}

// StripQuotedCommas removes the commas and the enclosing quotes of the first
// double-quoted span in line. Later spans are left untouched.
func StripQuotedCommas(line string) string {
	loc := reQuotedSpan.FindStringIndex(line)
	if loc == nil {
		return line
	}
	span := line[loc[0]+1 : loc[1]-1]
	return line[:loc[0]] + strings.ReplaceAll(span, ",", "") + line[loc[1]:]
}

// SplitFields splits a raw line on every comma. Quotes are not interpreted.
func SplitFields(line string) []string {
	return strings.Split(line, ",")
}

// Field returns fields[idx], or "" when the row is too short.
func Field(fields []string, idx int) string {
	if idx >= 0 && idx < len(fields) {
		return fields[idx]
	}
	return ""
}

// JoinCells renders spreadsheet or table cells as one comma-delimited line.
// Cells holding a comma are quoted so quote-aware classifiers can recover them.
func JoinCells(cells []string) string {
	out := make([]string, 0, len(cells))
	for _, c := range cells {
		if strings.Contains(c, ",") {
			c = `"` + c + `"`
		}
		out = append(out, c)
	}
	return strings.Join(out, ",")
}
