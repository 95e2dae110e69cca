package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekWindow(t *testing.T) {
	// Wednesday 2026-03-11 belongs to the week starting Monday 2026-03-09.
	wed := time.Date(2026, 3, 11, 15, 30, 0, 0, time.UTC)
	start, end := WeekWindow(wed)
	assert.Equal(t, "2026-03-09", start.Format(DateLayout))
	assert.Equal(t, "2026-03-16", end.Format(DateLayout))

	// Monday is its own week start.
	mon := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	start, _ = WeekWindow(mon)
	assert.Equal(t, "2026-03-09", start.Format(DateLayout))

	// Sunday rolls all the way back to the previous Monday.
	sun := time.Date(2026, 3, 15, 23, 59, 0, 0, time.UTC)
	start, end = WeekWindow(sun)
	assert.Equal(t, "2026-03-09", start.Format(DateLayout))
	assert.True(t, sun.Before(end))
}

func TestWeekdayBuckets(t *testing.T) {
	records := []DayRecord{
		{Date: "2026-03-09", PresentCount: 5},  // Monday
		{Date: "2026-03-11", PresentCount: 8},  // Wednesday
		{Date: "2026-03-15", PresentCount: 3},  // Sunday
		{Date: "not-a-date", PresentCount: 99}, // skipped
	}

	buckets := WeekdayBuckets(records)
	assert.Equal(t, 5, buckets["Mon"])
	assert.Equal(t, 8, buckets["Wed"])
	assert.Equal(t, 3, buckets["Sun"])
	assert.Equal(t, 0, buckets["Tue"])
	assert.Equal(t, 0, buckets["Sat"])
	assert.Len(t, buckets, 7)
}

func TestWeekdayBucketsBackfilledRoster(t *testing.T) {
	// The fetch window is keyed on creation time, so a roster entered this
	// week for an earlier date still reaches the bucketing. It must land on
	// the weekday of its own date, not of the day it was entered.
	records := []DayRecord{
		{Date: "2026-03-04", PresentCount: 4}, // the previous week's Wednesday
		{Date: "2026-03-09", PresentCount: 7}, // Monday of the current week
	}

	buckets := WeekdayBuckets(records)
	assert.Equal(t, 4, buckets["Wed"])
	assert.Equal(t, 7, buckets["Mon"])
}

func TestMonthRate(t *testing.T) {
	records := []DayRecord{
		{Date: "2026-03-02", PresentCount: 8},
		{Date: "2026-03-04", PresentCount: 6},
		{Date: "2026-02-25", PresentCount: 10}, // previous month, ignored
	}

	// 14 presences over 2 records x 10 active students = 70%.
	assert.InDelta(t, 70.0, MonthRate(records, 10, 2026, time.March), 1e-9)

	// Zero guards.
	assert.Zero(t, MonthRate(records, 0, 2026, time.March))
	assert.Zero(t, MonthRate(records, 10, 2026, time.July))
	assert.Zero(t, MonthRate(nil, 10, 2026, time.March))
}

func TestPrevMonthRollover(t *testing.T) {
	y, m := PrevMonth(2026, time.January)
	assert.Equal(t, 2025, y)
	assert.Equal(t, time.December, m)

	y, m = PrevMonth(2026, time.March)
	assert.Equal(t, 2026, y)
	assert.Equal(t, time.February, m)
}
