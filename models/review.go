package models

// Review is a customer's rating of a completed booking.
type Review struct {
	ID        string `json:"_id,omitempty"`
	BookingID string `json:"bookingId"`
	Rating    int    `json:"rating"` // 1 to 5 stars
	Comment   string `json:"comment,omitempty"`
}
