package logic

import "unitgrip/internal/domain"

// NextMatch scans forward from cursor+1 for the first unit matching
// the query. It operates on the already-filtered view, so with the
// active query every element matches and the scan degenerates to a
// plain cursor advance; that mirrors the match keys' historical
// behavior and is kept on purpose.
func NextMatch(units []domain.Unit, cursor int, query string) (int, bool) {
	for i := cursor + 1; i < len(units); i++ {
		if Matches(units[i], query) {
			return i, true
		}
	}
	return 0, false
}

// PrevMatch scans backward from cursor-1 for the first unit matching
// the query. A miss is not an error; the caller leaves the cursor
// where it is and reports a status message.
func PrevMatch(units []domain.Unit, cursor int, query string) (int, bool) {
	for i := cursor - 1; i >= 0 && i < len(units); i-- {
		if Matches(units[i], query) {
			return i, true
		}
	}
	return 0, false
}
