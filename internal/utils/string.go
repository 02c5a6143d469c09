package utils

import (
	"os"
	"strconv"
	"strings"
)

// DefaultColumns is used when neither config nor COLUMNS gives a width.
const DefaultColumns = 80

// FormatWithCommas formats an integer with thousands separators
func FormatWithCommas(n int) string {
	s := strconv.Itoa(n)
	sign := ""
	if n < 0 {
		sign, s = "-", s[1:]
	}

	var b strings.Builder
	b.WriteString(sign)
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}

// TerminalColumns returns configured when positive, else the COLUMNS
// environment variable, else DefaultColumns.
func TerminalColumns(configured int) int {
	if configured > 0 {
		return configured
	}
	if v, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && v > 0 {
		return v
	}
	return DefaultColumns
}

// Columnize lays fixed width items out in rows no wider than width,
// separated by a single space. Every line ends with a newline.
func Columnize(items []string, itemWidth, width int) []string {
	if len(items) == 0 {
		return nil
	}
	perRow := (width + 1) / (itemWidth + 1)
	if perRow < 1 {
		perRow = 1
	}

	lines := make([]string, 0, len(items)/perRow+1)
	for start := 0; start < len(items); start += perRow {
		end := min(start+perRow, len(items))
		lines = append(lines, strings.Join(items[start:end], " ")+"\n")
	}
	return lines
}
