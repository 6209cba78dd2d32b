package validate

import (
	"strconv"
	"strings"
	"time"
)

const (
	// SaleDateLayout is the wire format for single-sale endpoints and exports.
	SaleDateLayout = "2006-01-02 15:04:05"
	// CSVDateLayout is the per-row format for sales uploads and the seed file.
	CSVDateLayout = "2006-01-02"
)

// SaleDate parses YYYY-MM-DD HH:MM:SS. Out-of-range fields (month 13) fail.
func SaleDate(s string) (time.Time, bool) {
	t, err := time.Parse(SaleDateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// CSVDate parses YYYY-MM-DD.
func CSVDate(s string) (time.Time, bool) {
	t, err := time.Parse(CSVDateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ID parses a positive integer path id.
func ID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// CategoryFilter returns the category_id query filter. Non-integers and 0
// mean "no filter".
func CategoryFilter(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return n, true
}

// GroupBy normalizes the summary period. Anything other than week or year
// groups by month.
func GroupBy(s string) string {
	switch s {
	case "week", "year":
		return s
	default:
		return "month"
	}
}
