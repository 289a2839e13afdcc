package models

// BookingStatus is the server-side lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingAccepted  BookingStatus = "accepted"
	BookingOngoing   BookingStatus = "ongoing"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
	BookingRejected  BookingStatus = "rejected"
)

// ServiceRef is the embedded service summary the booking endpoints return.
type ServiceRef struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
}

// PartyRef is the embedded account summary for the counterparty on a booking.
type PartyRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Booking represents a service engagement record owned by the server. The
// client fetches, classifies, and optimistically patches it; the server
// response is the source of truth on the next fetch.
type Booking struct {
	ID          string        `json:"_id"`               // Unique booking identifier
	Service     ServiceRef    `json:"service"`           // Booked service
	User        PartyRef      `json:"user"`              // Customer who made the booking
	Provider    PartyRef      `json:"provider"`          // Provider being booked
	Status      BookingStatus `json:"status"`            // Current lifecycle state
	Reviewed    bool          `json:"reviewed"`          // Meaningful only when Status is completed
	Rating      int           `json:"rating,omitempty"`  // Stars given, set once reviewed
	Comment     string        `json:"comment,omitempty"` // Review comment, set once reviewed
	Price       float64       `json:"price,omitempty"`   // Agreed price, optional
	Address     string        `json:"address"`           // Where the service happens
	CreatedAt   Timestamp     `json:"createdAt"`         // When the booking was placed
	UpdatedAt   Timestamp     `json:"updatedAt"`         // Most recent status transition
	CompletedAt Timestamp     `json:"completedAt"`       // Set when the provider marks completion
}

// ApplyReview patches the booking in place after a review submission succeeds,
// so the dashboard reflects it without a refetch. The next fetch overwrites
// whatever the server decided.
func (b *Booking) ApplyReview(rating int, comment string) {
	b.Reviewed = true
	b.Rating = rating
	b.Comment = comment
}
