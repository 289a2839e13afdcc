package api

import (
	"context"
	"net/http"

	"skillconnect/models"
)

// SubmitReview rates a completed booking. On success the caller should patch
// the booking locally with ApplyReview; the server state is authoritative on
// the next fetch.
func (c *Client) SubmitReview(ctx context.Context, bookingID string, rating int, comment string) (*models.Review, error) {
	req := models.Review{BookingID: bookingID, Rating: rating, Comment: comment}
	var review models.Review
	if err := c.do(ctx, http.MethodPost, "/reviews", req, &review); err != nil {
		return nil, err
	}
	return &review, nil
}
