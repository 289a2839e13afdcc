// Package api implements the typed HTTP client for the SkillConnect
// marketplace backend. It owns request plumbing only: bearer credentials come
// from the session manager, and all returned data is decoded into models for
// the caller to classify or render.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"skillconnect/config"
	"skillconnect/services/session"
	"skillconnect/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout        = 15 * time.Second
	defaultRequestsPerMin = 100
)

// Client talks to the SkillConnect REST API.
type Client struct {
	baseURL  string
	http     *http.Client
	sessions session.Manager
	limiter  *rate.Limiter
}

// NewClient creates a Client for the given base URL. Credentials are read from
// the session manager on every request, so a login performed through this
// client (or anywhere else) takes effect immediately.
func NewClient(baseURL string, sessions session.Manager) *Client {
	timeout := time.Duration(config.AppConfig.HTTPTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	perMin := config.AppConfig.MaxRequestsPerMin
	if perMin <= 0 {
		perMin = defaultRequestsPerMin
	}

	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		sessions: sessions,
		limiter:  rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMin)), perMin),
	}
}

// do performs a JSON request. body and out may be nil. Non-2xx responses are
// decoded into *Error.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("request throttled: %w", err)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.decorate(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := decodeError(resp)
		utils.GetLogger().Debug("api: request rejected",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message))
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// decorate stamps the headers common to every request: a correlation ID and,
// when a session is active, the bearer credential.
func (c *Client) decorate(req *http.Request) {
	req.Header.Set("X-Request-ID", uuid.NewString())
	req.Header.Set("Accept", "application/json")
	if s := c.sessions.Current(); s.Active() {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}
}
