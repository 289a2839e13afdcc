package storage

import "skillconnect/models"

// CredentialStore defines the persisted-state boundary for the client session:
// two opaque entries, a serialized identity and a bearer token string. It is
// read once at startup and rewritten on login, logout, and profile updates.
type CredentialStore interface {
	// LoadIdentity returns the persisted identity, or nil when absent.
	// Malformed data is reported as an error; callers degrade, never fail.
	LoadIdentity() (*models.Identity, error)
	// LoadToken returns the persisted bearer token, or "" when absent.
	LoadToken() (string, error)
	// Save persists both entries. Partial writes must not be observable as a
	// valid identity+token pair on a later load.
	Save(identity models.Identity, token string) error
	// Clear removes both entries. Clearing an empty store is a no-op.
	Clear() error
}
