package internal

import (
	"regexp"
	"strconv"
	"strings"
)

var nonNumericRegex = regexp.MustCompile(`[^0-9.]`)

// NormalizeText trims a raw catalog field value. Spreadsheet
// placeholders ("nan", "none", "0") collapse to empty.
func NormalizeText(raw string) string {
	text := strings.TrimSpace(raw)
	switch strings.ToLower(text) {
	case "", "nan", "none", "0":
		return ""
	}
	return text
}

// ParseNumber pulls a float out of messy catalog text, dropping
// currency symbols, commas and units. Anything unparseable is 0.
func ParseNumber(raw string) float64 {
	text := nonNumericRegex.ReplaceAllString(raw, "")
	if text == "" {
		return 0
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0
	}
	return value
}
