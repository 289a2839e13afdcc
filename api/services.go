package api

import (
	"context"
	"net/http"
	"net/url"

	"skillconnect/models"
)

// ListServices fetches every published service listing.
func (c *Client) ListServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := c.do(ctx, http.MethodGet, "/services", nil, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// SearchServices fetches listings matching the free-text query.
func (c *Client) SearchServices(ctx context.Context, query string) ([]models.Service, error) {
	var services []models.Service
	path := "/services/search?q=" + url.QueryEscape(query)
	if err := c.do(ctx, http.MethodGet, path, nil, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// MyServices fetches the calling provider's own listings.
func (c *Client) MyServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := c.do(ctx, http.MethodGet, "/services/my", nil, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// CreateService publishes a new listing (provider action).
func (c *Client) CreateService(ctx context.Context, input models.ServiceInput) (*models.Service, error) {
	var service models.Service
	if err := c.do(ctx, http.MethodPost, "/services", input, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

// UpdateService edits an existing listing (provider action).
func (c *Client) UpdateService(ctx context.Context, serviceID string, input models.ServiceInput) (*models.Service, error) {
	var service models.Service
	if err := c.do(ctx, http.MethodPut, "/services/"+serviceID, input, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

// DeleteService removes a listing (provider action).
func (c *Client) DeleteService(ctx context.Context, serviceID string) error {
	return c.do(ctx, http.MethodDelete, "/services/"+serviceID, nil, nil)
}
