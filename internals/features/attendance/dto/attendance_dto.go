package dto

// SaveAttendanceRequest replaces the present set for one day wholesale.
type SaveAttendanceRequest struct {
	Date            string   `json:"date" validate:"required,datetime=2006-01-02"`
	PresentStudents []string `json:"present_students"`
}

// DedupedPresent returns the present list with duplicates removed,
// preserving first-seen order.
func (r *SaveAttendanceRequest) DedupedPresent() []string {
	seen := make(map[string]struct{}, len(r.PresentStudents))
	out := make([]string, 0, len(r.PresentStudents))
	for _, id := range r.PresentStudents {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
