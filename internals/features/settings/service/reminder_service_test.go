package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderReminder(t *testing.T) {
	tmpl := "Dear {parentName}, Rs.{amount} for {studentName} ({month}) is due. - {studioName}"

	got := RenderReminder(tmpl, ReminderValues{
		ParentName:  "Mrs. Rao",
		StudentName: "Anika",
		StudioName:  "RhythmFlow",
		Month:       "March",
		Amount:      "1500",
	})
	assert.Equal(t, "Dear Mrs. Rao, Rs.1500 for Anika (March) is due. - RhythmFlow", got)
}

func TestRenderReminderLeavesUnknownPlaceholders(t *testing.T) {
	got := RenderReminder("Hi {parentName} {unknown}", ReminderValues{ParentName: "X"})
	assert.Equal(t, "Hi X {unknown}", got)
}

func TestRenderReminderEmptyValues(t *testing.T) {
	got := RenderReminder("Fee {amount} due", ReminderValues{})
	assert.Equal(t, "Fee  due", got)
}
