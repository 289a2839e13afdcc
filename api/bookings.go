package api

import (
	"context"
	"net/http"

	"skillconnect/models"
)

type createBookingRequest struct {
	ServiceID string `json:"serviceId"`
	Address   string `json:"address"`
}

// UserBookings fetches the calling customer's bookings.
func (c *Client) UserBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.do(ctx, http.MethodGet, "/bookings/user", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// ProviderBookings fetches the bookings placed against the calling provider.
func (c *Client) ProviderBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.do(ctx, http.MethodGet, "/bookings/provider", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CreateBooking requests a service at the given address.
func (c *Client) CreateBooking(ctx context.Context, serviceID, address string) error {
	return c.do(ctx, http.MethodPost, "/bookings", createBookingRequest{ServiceID: serviceID, Address: address}, nil)
}

// CancelBooking cancels a pending booking (customer action).
func (c *Client) CancelBooking(ctx context.Context, bookingID string) error {
	return c.bookingAction(ctx, bookingID, "cancel")
}

// AcceptBooking accepts a pending booking (provider action).
func (c *Client) AcceptBooking(ctx context.Context, bookingID string) error {
	return c.bookingAction(ctx, bookingID, "accept")
}

// RejectBooking rejects a pending booking (provider action).
func (c *Client) RejectBooking(ctx context.Context, bookingID string) error {
	return c.bookingAction(ctx, bookingID, "reject")
}

// CompleteBooking marks an accepted booking as completed (provider action).
func (c *Client) CompleteBooking(ctx context.Context, bookingID string) error {
	return c.bookingAction(ctx, bookingID, "complete")
}

func (c *Client) bookingAction(ctx context.Context, bookingID, action string) error {
	return c.do(ctx, http.MethodPut, "/bookings/"+bookingID+"/"+action, nil, nil)
}
