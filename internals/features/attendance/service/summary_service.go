// Package service holds the date arithmetic behind the attendance
// aggregates, kept free of fiber and gorm so it can be tested directly.
package service

import "time"

const DateLayout = "2006-01-02"

// DayRecord is the slice of an attendance row the aggregates care about.
type DayRecord struct {
	Date         string
	PresentCount int
}

// WeekWindow returns the Monday-through-Sunday window containing today:
// weekStart = today - ((dayOfWeek + 6) % 7) days, with Sunday rolling the
// start back a full six days. Bounds are midnight UTC, end exclusive.
func WeekWindow(today time.Time) (time.Time, time.Time) {
	today = today.UTC()
	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(today.Weekday()) + 6) % 7
	start := midnight.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 7)
}

// WeekdayOrder is the response bucket order for the weekly summary.
var WeekdayOrder = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// WeekdayBuckets distributes present counts over Mon..Sun using each
// record's own date field, not its creation time. Unparseable dates are
// skipped; days with no record stay at 0.
func WeekdayBuckets(records []DayRecord) map[string]int {
	buckets := make(map[string]int, 7)
	for _, d := range WeekdayOrder {
		buckets[d] = 0
	}
	for _, r := range records {
		t, err := time.Parse(DateLayout, r.Date)
		if err != nil {
			continue
		}
		idx := (int(t.Weekday()) + 6) % 7 // Monday-based
		buckets[WeekdayOrder[idx]] += r.PresentCount
	}
	return buckets
}

// MonthRate computes the attendance percentage for one calendar month:
// total presences across the month's records divided by
// (activeStudents x recordCount), as an unrounded percentage. Either
// factor being zero yields 0.
func MonthRate(records []DayRecord, activeStudents int, year int, month time.Month) float64 {
	totalPresent := 0
	recordCount := 0
	for _, r := range records {
		t, err := time.Parse(DateLayout, r.Date)
		if err != nil {
			continue
		}
		if t.Year() == year && t.Month() == month {
			totalPresent += r.PresentCount
			recordCount++
		}
	}
	if activeStudents == 0 || recordCount == 0 {
		return 0
	}
	return float64(totalPresent) / float64(activeStudents*recordCount) * 100
}

// PrevMonth steps one calendar month back with December->January rollover
// handled by date arithmetic, not string manipulation.
func PrevMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return t.Year(), t.Month()
}
