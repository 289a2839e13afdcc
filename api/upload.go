package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"skillconnect/models"
)

// uploadResponse carries the updated account record returned by the photo
// upload endpoint; only the photo reference is consumed.
type uploadResponse struct {
	User models.Identity `json:"user"`
}

// UploadProfilePhoto sends an image to the backend and patches the current
// session's identity with the photo reference the server returns. Requires an
// active session.
func (c *Client) UploadProfilePhoto(ctx context.Context, filename string, file io.Reader) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("request throttled: %w", err)
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("failed to read photo: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/user/uploadProfilePhoto", &body)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.decorate(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", decodeError(resp)
	}

	var res uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	if res.User.ProfilePhoto == "" {
		return "", fmt.Errorf("upload response did not include a photo reference")
	}

	if err := c.sessions.PatchProfilePhoto(res.User.ProfilePhoto); err != nil {
		return "", fmt.Errorf("uploaded but failed to update session: %w", err)
	}
	return res.User.ProfilePhoto, nil
}
