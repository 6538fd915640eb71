package util

import "testing"

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2025-03-15")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if parsed.Year() != 2025 || int(parsed.Month()) != 3 || parsed.Day() != 15 {
		t.Errorf("Expected 2025-03-15, got %v", parsed)
	}

	if _, err := ParseDate("15/03/2025"); err == nil {
		t.Error("Expected error for non-ISO date")
	}
}

func TestMonthIndex(t *testing.T) {
	if index := MonthIndex("2025-01-31"); index != 0 {
		t.Errorf("Expected index 0 for January, got %d", index)
	}
	if index := MonthIndex("2025-12-01"); index != 11 {
		t.Errorf("Expected index 11 for December, got %d", index)
	}
	if index := MonthIndex("not-a-date"); index != -1 {
		t.Errorf("Expected -1 for unparseable date, got %d", index)
	}
}
