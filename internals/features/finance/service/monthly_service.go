// Package service computes the month-bucketed finance series without
// touching the database, so the clamping and rollover rules are testable
// on their own.
package service

import (
	"strconv"
	"time"
)

const (
	DefaultMonths = 6
	MaxMonths     = 24
)

// ClampMonths parses the ?months= query value. Non-numeric or
// non-positive input falls back to the default; anything above the cap
// is clamped down to it.
func ClampMonths(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return DefaultMonths
	}
	if n > MaxMonths {
		return MaxMonths
	}
	return n
}

// MonthBucket is one slot of the series, identified by calendar month.
type MonthBucket struct {
	Year  int
	Month time.Month
}

// Label renders the bucket the way the dashboard shows it, e.g. "Jan 2026".
func (b MonthBucket) Label() string {
	return time.Date(b.Year, b.Month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
}

// Contains reports whether t falls inside the bucket's calendar month.
func (b MonthBucket) Contains(t time.Time) bool {
	t = t.UTC()
	return t.Year() == b.Year && t.Month() == b.Month
}

// LastMonths returns n consecutive buckets ending with the month of now,
// oldest first. AddDate handles the year rollover.
func LastMonths(now time.Time, n int) []MonthBucket {
	now = now.UTC()
	buckets := make([]MonthBucket, 0, n)
	for i := n - 1; i >= 0; i-- {
		t := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		buckets = append(buckets, MonthBucket{Year: t.Year(), Month: t.Month()})
	}
	return buckets
}
