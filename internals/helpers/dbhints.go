package helper

import "strings"

// IsUniqueViolation reports whether a DB error came from a unique index.
// Matched on the driver message so it works for both pgx and pq errors.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint") || strings.Contains(msg, "23505")
}
