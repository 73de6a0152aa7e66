package recap

import (
	"time"

	"github.com/jfmyers9/jellywrapped/pkg/jellyfin"
)

// Snapshot holds everything fetched from the server for one run:
// the user list, the audio library, and per-user play counts.
// It is read-only once built.
type Snapshot struct {
	FetchedAt time.Time
	Users     []jellyfin.User
	Items     []jellyfin.Item

	// PlayCounts maps user ID -> item ID -> cumulative play count.
	// Counts are the vendor's all-time counters, trusted as-is.
	PlayCounts map[string]map[string]int
}

// PlayCount returns the play count for a user/item pair, zero if the
// pair was never recorded.
func (s *Snapshot) PlayCount(userID, itemID string) int {
	return s.PlayCounts[userID][itemID]
}
