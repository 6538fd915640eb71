package util

import "time"

const dateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD ledger date.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(dateLayout, date)
}

// MonthIndex returns the 0-based month of a YYYY-MM-DD date, or -1 when
// the date does not parse. Aggregations skip undated records rather than
// failing the whole summary.
func MonthIndex(date string) int {
	t, err := ParseDate(date)
	if err != nil {
		return -1
	}
	return int(t.Month()) - 1
}
