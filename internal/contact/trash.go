package contact

import "time"

// DefaultRetention is how long trashed contacts are kept before the
// startup purge drops them
const DefaultRetention = 30 * 24 * time.Hour

// PurgeExpired returns the contacts that survive the retention policy:
// active contacts always pass through, trashed contacts are dropped once
// their time in the trash reaches the window. Idempotent for a fixed now.
func PurgeExpired(contacts []Contact, now time.Time, window time.Duration) []Contact {
	kept := make([]Contact, 0, len(contacts))
	for _, c := range contacts {
		if c.Deleted() && now.Sub(c.DeletedTime()) >= window {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}
