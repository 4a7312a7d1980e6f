package logic

import (
	"strings"

	"unitgrip/internal/domain"
)

// Matches checks if a unit matches the given filter query.
// The predicate is a case-insensitive substring test on the unit name
// or its description; an empty query matches everything.
func Matches(u domain.Unit, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(u.Name), q) ||
		strings.Contains(strings.ToLower(u.Description), q)
}

// Apply derives the filtered view from the full unit list. The result
// is always a fresh slice preserving the relative order of units, so
// later refreshes can never invalidate a view handed out earlier.
func Apply(units []domain.Unit, query string) []domain.Unit {
	out := make([]domain.Unit, 0, len(units))
	for _, u := range units {
		if Matches(u, query) {
			out = append(out, u)
		}
	}
	return out
}
