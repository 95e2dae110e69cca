package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampMonths(t *testing.T) {
	assert.Equal(t, 6, ClampMonths(""))
	assert.Equal(t, 6, ClampMonths("abc"))
	assert.Equal(t, 6, ClampMonths("0"))
	assert.Equal(t, 6, ClampMonths("-3"))
	assert.Equal(t, 1, ClampMonths("1"))
	assert.Equal(t, 12, ClampMonths("12"))
	assert.Equal(t, 24, ClampMonths("24"))
	assert.Equal(t, 24, ClampMonths("30"))
}

func TestLastMonths(t *testing.T) {
	now := time.Date(2026, 2, 15, 10, 0, 0, 0, time.UTC)
	buckets := LastMonths(now, 4)
	require.Len(t, buckets, 4)

	// Oldest first, ending with the current month; year rollover intact.
	assert.Equal(t, "Nov 2025", buckets[0].Label())
	assert.Equal(t, "Dec 2025", buckets[1].Label())
	assert.Equal(t, "Jan 2026", buckets[2].Label())
	assert.Equal(t, "Feb 2026", buckets[3].Label())
}

func TestMonthBucketContains(t *testing.T) {
	b := MonthBucket{Year: 2026, Month: time.March}

	assert.True(t, b.Contains(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, b.Contains(time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, b.Contains(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, b.Contains(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)))
}
