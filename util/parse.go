package util

import (
	"strconv"
	"strings"
)

// Lines splits text into lines, tolerating both \n and \r\n endings.
func Lines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(s, "\n")
}

// FieldsAt returns the field at the given index from a whitespace-split line.
// Returns empty string if index is out of bounds.
func FieldsAt(line string, idx int) string {
	fields := strings.Fields(line)
	if idx < len(fields) {
		return fields[idx]
	}
	return ""
}

// ParseFloat64 parses a string to float64, returning 0 and false on error.
func ParseFloat64(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v, err == nil
}

// LabelValue splits a "Label:   value" line on the first colon and returns
// the trimmed value. Returns empty string if no colon is present.
func LabelValue(line string) string {
	if idx := strings.Index(line, ":"); idx >= 0 {
		return strings.TrimSpace(line[idx+1:])
	}
	return ""
}

// TrimParenthetical strips a trailing "(...)" clause from a value, e.g.
// "500.1 GB (500107862016 Bytes)" -> "500.1 GB".
func TrimParenthetical(s string) string {
	if idx := strings.Index(s, "("); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
