package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupedPresent(t *testing.T) {
	req := SaveAttendanceRequest{
		Date:            "2026-03-11",
		PresentStudents: []string{"a", "b", "a", "c", "b"},
	}
	assert.Equal(t, []string{"a", "b", "c"}, req.DedupedPresent())

	empty := SaveAttendanceRequest{Date: "2026-03-11"}
	assert.Empty(t, empty.DedupedPresent())
}
