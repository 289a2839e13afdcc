package booking

import (
	"time"

	"skillconnect/models"
)

// Stats are the aggregate counters shown on the dashboards. All values are
// derived from a booking slice; there is no independent state.
type Stats struct {
	Total     int     `json:"total"`
	Active    int     `json:"active"`
	Past      int     `json:"past"`
	Completed int     `json:"completed"`
	Earnings  float64 `json:"earnings"` // Sum of Price over completed bookings
}

// Snapshot computes dashboard stats for the given viewer role.
func Snapshot(bookings []models.Booking, role models.Role, now time.Time) Stats {
	active, past := Classify(bookings, role, now)

	stats := Stats{
		Total:  len(bookings),
		Active: len(active),
		Past:   len(past),
	}
	for _, b := range bookings {
		if b.Status == models.BookingCompleted {
			stats.Completed++
			stats.Earnings += b.Price
		}
	}
	return stats
}
