package session

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/rs/zerolog"
)

// ErrEmptyCredential is returned by Login when the token or email is empty.
// An empty credential is never stored.
var ErrEmptyCredential = errors.New("token and email must be non-empty")

// Manager owns the Session and is its only writer. All other components read
// through Current or a Guard. Methods are safe for concurrent use; the mutex
// keeps the single-writer contract intact when commands spawn goroutines.
type Manager struct {
	store KeyValue
	log   zerolog.Logger

	mu   sync.RWMutex
	sess Session
}

// NewManager creates a Manager backed by the given credential store. The
// session starts in the loading state until Hydrate runs.
func NewManager(store KeyValue, log zerolog.Logger) *Manager {
	return &Manager{
		store: store,
		log:   log,
		sess:  Session{Loading: true},
	}
}

// Hydrate performs the one-time startup read of persisted credentials. A
// store failure is treated as "no stored session" and logged; it is never
// surfaced to the caller. Loading is cleared on every path, and repeat calls
// are no-ops: the session never returns to the loading state.
func (m *Manager) Hydrate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.sess.Loading {
		return
	}
	defer func() { m.sess.Loading = false }()

	token := m.read(KeyToken)
	email := m.read(KeyEmail)
	if token == "" || email == "" {
		// A token without an identity (or vice versa) is not a session.
		return
	}

	m.sess.Token = token
	m.sess.Email = email
	m.sess.IsAdmin = m.read(KeyIsAdmin) == "true"
}

func (m *Manager) read(key string) string {
	value, ok, err := m.store.Get(key)
	if err != nil {
		m.log.Debug().Err(err).Str("key", key).Msg("credential read failed, treating as absent")
		return ""
	}
	if !ok {
		return ""
	}
	return value
}

// Login persists the credentials and replaces the in-memory session. If
// persistence fails the in-memory session is still replaced, so the login
// holds for the life of the process, and a wrapped error is returned so the
// caller can warn that it will not survive restart. Logging in while already
// authenticated fully replaces the previous session.
func (m *Manager) Login(token, email string, isAdmin bool) error {
	if token == "" || email == "" {
		return ErrEmptyCredential
	}

	var persistErr error
	writes := []struct{ key, value string }{
		{KeyToken, token},
		{KeyEmail, email},
		{KeyIsAdmin, strconv.FormatBool(isAdmin)},
	}
	for _, w := range writes {
		if err := m.store.Set(w.key, w.value); err != nil && persistErr == nil {
			persistErr = err
		}
	}

	m.mu.Lock()
	m.sess = Session{Token: token, Email: email, IsAdmin: isAdmin}
	m.mu.Unlock()

	if persistErr != nil {
		m.log.Warn().Err(persistErr).Msg("credentials not persisted, session will not survive restart")
		return fmt.Errorf("session is active but credentials were not persisted: %w", persistErr)
	}
	return nil
}

// Logout removes the persisted credentials and resets the in-memory session.
// The in-memory reset happens regardless of the storage outcome; a storage
// error is returned after the session is already empty.
func (m *Manager) Logout() error {
	var clearErr error
	for _, key := range []string{KeyToken, KeyEmail, KeyIsAdmin} {
		if err := m.store.Delete(key); err != nil && clearErr == nil {
			clearErr = err
		}
	}

	m.mu.Lock()
	m.sess = Session{}
	m.mu.Unlock()

	if clearErr != nil {
		m.log.Warn().Err(clearErr).Msg("stored credentials may not be fully cleared")
		return fmt.Errorf("failed to clear stored credentials: %w", clearErr)
	}
	return nil
}

// Current returns a snapshot of the session as of the last update.
func (m *Manager) Current() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sess
}
