package session

import (
	"sync"

	"skillconnect/models"
	"skillconnect/services/storage"
)

// Manager defines business logic for the client session lifecycle.
type Manager interface {
	// Restore loads the persisted session, degrading to the empty session on
	// absent or malformed data. It never contacts the server; a revoked token
	// surfaces later as an ordinary request failure.
	Restore() models.Session
	// Establish replaces the current session after a successful login or
	// registration exchange and persists it.
	Establish(identity models.Identity, token string) error
	// Terminate clears the current session and its persisted state. Idempotent.
	Terminate() error
	// PatchProfilePhoto replaces only the profile photo on the current
	// identity and re-persists it. Requires an active session.
	PatchProfilePhoto(photoRef string) error
	// Current returns a snapshot of the session.
	Current() models.Session
}

// DefaultManager is the production implementation.
type DefaultManager struct {
	Store storage.CredentialStore

	mu      sync.RWMutex
	current models.Session
}
