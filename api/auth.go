package api

import (
	"context"
	"fmt"
	"net/http"

	"skillconnect/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

// authResponse is the payload both auth endpoints return.
type authResponse struct {
	User  models.Identity `json:"user"`
	Token string          `json:"token"`
}

// Login exchanges credentials for an identity and token, and establishes the
// session on success.
func (c *Client) Login(ctx context.Context, email, password string) (*models.Identity, error) {
	var res authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &res); err != nil {
		return nil, err
	}
	if err := c.sessions.Establish(res.User, res.Token); err != nil {
		return nil, fmt.Errorf("login succeeded but session could not be established: %w", err)
	}
	return &res.User, nil
}

// Register creates an account with the given role and establishes the session
// on success. Role is fixed at registration; there is no way to change it
// from the client afterwards.
func (c *Client) Register(ctx context.Context, name, email, password string, role models.Role) (*models.Identity, error) {
	var res authResponse
	req := registerRequest{Name: name, Email: email, Password: password, Role: role}
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &res); err != nil {
		return nil, err
	}
	if err := c.sessions.Establish(res.User, res.Token); err != nil {
		return nil, fmt.Errorf("registration succeeded but session could not be established: %w", err)
	}
	return &res.User, nil
}

// Logout drops the local session. The backend keeps no server-side session to
// revoke; the token simply ages out.
func (c *Client) Logout() error {
	return c.sessions.Terminate()
}
