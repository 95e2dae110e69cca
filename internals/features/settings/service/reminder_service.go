package service

import "strings"

// ReminderValues carries the substitutions for one rendered fee reminder.
type ReminderValues struct {
	ParentName  string
	StudentName string
	StudioName  string
	Month       string
	Amount      string
}

// RenderReminder substitutes the template placeholders. Placeholders
// absent from the template are simply not rendered; unknown placeholders
// in the template pass through untouched.
func RenderReminder(template string, vals ReminderValues) string {
	r := strings.NewReplacer(
		"{parentName}", vals.ParentName,
		"{studentName}", vals.StudentName,
		"{studioName}", vals.StudioName,
		"{month}", vals.Month,
		"{amount}", vals.Amount,
	)
	return r.Replace(template)
}
