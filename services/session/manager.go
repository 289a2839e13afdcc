package session

import (
	"fmt"
	"time"

	"skillconnect/models"
	"skillconnect/services/storage"
	"skillconnect/utils"

	"go.uber.org/zap"
)

// NewManager creates a session manager backed by the given credential store.
func NewManager(store storage.CredentialStore) *DefaultManager {
	return &DefaultManager{Store: store}
}

func (m *DefaultManager) Restore() models.Session {
	logger := utils.GetLogger()

	identity, err := m.Store.LoadIdentity()
	if err != nil {
		logger.Warn("Restore: discarding unreadable identity", zap.Error(err))
		m.setCurrent(models.Session{})
		return models.Session{}
	}
	token, err := m.Store.LoadToken()
	if err != nil {
		logger.Warn("Restore: discarding unreadable token", zap.Error(err))
		m.setCurrent(models.Session{})
		return models.Session{}
	}

	// Identity and token only count as a session together. A half-persisted
	// pair is treated as logged out rather than surfaced to callers.
	if identity == nil || token == "" {
		m.setCurrent(models.Session{})
		return models.Session{}
	}

	if expiry, err := utils.TokenExpiry(token); err == nil && expiry.Before(time.Now()) {
		logger.Warn("Restore: persisted token already expired; first request will fail auth",
			zap.Time("expiry", expiry))
	}

	restored := models.Session{Identity: identity, Token: token}
	m.setCurrent(restored)
	logger.Debug("Restore: session restored", zap.String("email", identity.Email))
	return restored
}

func (m *DefaultManager) Establish(identity models.Identity, token string) error {
	if err := m.Store.Save(identity, token); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	m.setCurrent(models.Session{Identity: &identity, Token: token})
	return nil
}

func (m *DefaultManager) Terminate() error {
	if err := m.Store.Clear(); err != nil {
		return fmt.Errorf("failed to clear persisted session: %w", err)
	}
	m.setCurrent(models.Session{})
	return nil
}

func (m *DefaultManager) PatchProfilePhoto(photoRef string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.current.Active() {
		return ErrNoSession
	}

	updated := *m.current.Identity
	updated.ProfilePhoto = photoRef
	if err := m.Store.Save(updated, m.current.Token); err != nil {
		return fmt.Errorf("failed to persist updated identity: %w", err)
	}
	m.current.Identity = &updated
	return nil
}

func (m *DefaultManager) Current() models.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

func (m *DefaultManager) setCurrent(s models.Session) {
	m.mu.Lock()
	m.current = s
	m.mu.Unlock()
}
