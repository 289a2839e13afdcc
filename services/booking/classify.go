package booking

import (
	"time"

	"skillconnect/models"
)

// ActiveWindow is how long a completed-but-unreviewed booking stays on the
// customer's active list, prompting for a review before it falls off.
const ActiveWindow = 24 * time.Hour

// Classify partitions bookings into active and past buckets for the given
// viewer role. The partition is total and disjoint, and both outputs preserve
// the input order.
func Classify(bookings []models.Booking, role models.Role, now time.Time) (active, past []models.Booking) {
	for _, b := range bookings {
		if isActive(b, role, now) {
			active = append(active, b)
		} else {
			past = append(past, b)
		}
	}
	return active, past
}

func isActive(b models.Booking, role models.Role, now time.Time) bool {
	if role.IsProvider() {
		// A provider's active set is exactly the bookings still requiring
		// their action; review state is irrelevant.
		return b.Status == models.BookingPending || b.Status == models.BookingAccepted
	}

	switch b.Status {
	case models.BookingPending, models.BookingOngoing:
		return true
	case models.BookingCompleted:
		if b.Reviewed {
			return false
		}
		completedAt, ok := effectiveCompletionTime(b)
		if !ok {
			// Unknown completion time: the conservative bucket is past, so a
			// stale item cannot sit on the active list forever.
			return false
		}
		return now.Sub(completedAt) <= ActiveWindow
	default:
		return false
	}
}

// effectiveCompletionTime is the timestamp of the booking's most recent status
// transition, preferring CompletedAt and falling back to UpdatedAt. ok is
// false when neither is usable.
func effectiveCompletionTime(b models.Booking) (time.Time, bool) {
	if !b.CompletedAt.IsZero() {
		return b.CompletedAt.Time, true
	}
	if !b.UpdatedAt.IsZero() {
		return b.UpdatedAt.Time, true
	}
	return time.Time{}, false
}
