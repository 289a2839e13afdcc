package models

// Service is a provider's published offering as listed by the marketplace.
type Service struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category,omitempty"`
	Price       float64  `json:"price"`
	Provider    PartyRef `json:"provider"`
}

// ServiceInput carries the fields a provider submits when creating or editing
// a service listing.
type ServiceInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category,omitempty"`
	Price       float64 `json:"price"`
}
