package session

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// faultyStore wraps a MemoryStore and fails selected operations.
type faultyStore struct {
	*MemoryStore
	getErr    error
	setErr    error
	deleteErr error
}

func (f *faultyStore) Get(key string) (string, bool, error) {
	if f.getErr != nil {
		return "", false, f.getErr
	}
	return f.MemoryStore.Get(key)
}

func (f *faultyStore) Set(key, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	return f.MemoryStore.Set(key, value)
}

func (f *faultyStore) Delete(key string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	return f.MemoryStore.Delete(key)
}

func newTestManager(store KeyValue) *Manager {
	return NewManager(store, zerolog.Nop())
}

func TestHydrate_EmptyStore(t *testing.T) {
	m := newTestManager(NewMemoryStore())

	require.True(t, m.Current().Loading)
	m.Hydrate()

	assert.Equal(t, Session{}, m.Current())
}

func TestHydrate_StoredSession(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set(KeyToken, "abc"))
	require.NoError(t, store.Set(KeyEmail, "u@x.com"))
	require.NoError(t, store.Set(KeyIsAdmin, "true"))

	m := newTestManager(store)
	m.Hydrate()

	assert.Equal(t, Session{Token: "abc", Email: "u@x.com", IsAdmin: true}, m.Current())
}

func TestHydrate_TokenWithoutEmailStaysEmpty(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set(KeyToken, "abc"))

	m := newTestManager(store)
	m.Hydrate()

	s := m.Current()
	assert.Empty(t, s.Token, "a bare token must not authenticate")
	assert.Empty(t, s.Email)
	assert.False(t, s.IsAdmin)
}

func TestHydrate_UnrecognizedAdminFlagIsFalse(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set(KeyToken, "abc"))
	require.NoError(t, store.Set(KeyEmail, "u@x.com"))
	require.NoError(t, store.Set(KeyIsAdmin, "yes"))

	m := newTestManager(store)
	m.Hydrate()

	assert.False(t, m.Current().IsAdmin)
}

func TestHydrate_StoreFailureCompletesEmpty(t *testing.T) {
	store := &faultyStore{MemoryStore: NewMemoryStore(), getErr: errors.New("keychain locked")}
	m := newTestManager(store)

	m.Hydrate()

	s := m.Current()
	assert.False(t, s.Loading, "loading must clear even when the store fails")
	assert.Equal(t, Session{}, s)
}

func TestHydrate_RunsOnce(t *testing.T) {
	store := NewMemoryStore()
	m := newTestManager(store)
	m.Hydrate()

	// Credentials written after hydration must not appear via a second pass.
	require.NoError(t, store.Set(KeyToken, "late"))
	require.NoError(t, store.Set(KeyEmail, "late@x.com"))
	m.Hydrate()

	assert.Equal(t, Session{}, m.Current())
}

func TestLogin_PersistsAndUpdates(t *testing.T) {
	store := NewMemoryStore()
	m := newTestManager(store)
	m.Hydrate()

	require.NoError(t, m.Login("tok1", "a@b.com", false))

	assert.Equal(t, Session{Token: "tok1", Email: "a@b.com"}, m.Current())

	token, ok, err := store.Get(KeyToken)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "tok1", token)

	flag, ok, err := store.Get(KeyIsAdmin)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "false", flag)
}

func TestLogin_EmptyCredentialRejected(t *testing.T) {
	store := NewMemoryStore()
	m := newTestManager(store)
	m.Hydrate()

	err := m.Login("", "a@b.com", false)
	require.ErrorIs(t, err, ErrEmptyCredential)

	err = m.Login("tok1", "", false)
	require.ErrorIs(t, err, ErrEmptyCredential)

	// Nothing was stored and the session is untouched.
	_, ok, getErr := store.Get(KeyToken)
	require.NoError(t, getErr)
	assert.False(t, ok)
	assert.Equal(t, Session{}, m.Current())
}

func TestLogin_OverwriteReplacesEverything(t *testing.T) {
	m := newTestManager(NewMemoryStore())
	m.Hydrate()

	require.NoError(t, m.Login("tok1", "first@x.com", true))
	require.NoError(t, m.Login("tok2", "second@x.com", false))

	assert.Equal(t, Session{Token: "tok2", Email: "second@x.com", IsAdmin: false}, m.Current())
}

func TestLogin_PersistFailureStillActivatesSession(t *testing.T) {
	store := &faultyStore{MemoryStore: NewMemoryStore(), setErr: errors.New("disk full")}
	m := newTestManager(store)
	m.Hydrate()

	err := m.Login("tok1", "a@b.com", true)
	require.Error(t, err, "caller must learn the session will not survive restart")

	assert.Equal(t, Session{Token: "tok1", Email: "a@b.com", IsAdmin: true}, m.Current())
}

func TestLogout_ClearsMemoryAndStore(t *testing.T) {
	store := NewMemoryStore()
	m := newTestManager(store)
	m.Hydrate()
	require.NoError(t, m.Login("tok1", "a@b.com", false))

	require.NoError(t, m.Logout())

	assert.Equal(t, Session{}, m.Current())
	for _, key := range []string{KeyToken, KeyEmail, KeyIsAdmin} {
		_, ok, err := store.Get(key)
		require.NoError(t, err)
		assert.False(t, ok, "key %s should be gone", key)
	}
}

func TestLogout_ClearsMemoryEvenWhenStoreFails(t *testing.T) {
	store := &faultyStore{MemoryStore: NewMemoryStore(), deleteErr: errors.New("keychain locked")}
	m := newTestManager(store)
	m.Hydrate()
	require.NoError(t, m.Login("tok1", "a@b.com", true))

	err := m.Logout()
	require.Error(t, err)

	assert.Equal(t, Session{}, m.Current())
}

// Token and email are present together or not at all, and IsAdmin is false
// whenever the session is unauthenticated, across every reachable state.
func TestSessionInvariants(t *testing.T) {
	check := func(t *testing.T, s Session) {
		t.Helper()
		assert.Equal(t, s.Token == "", s.Email == "", "token and email must be paired")
		if s.Token == "" {
			assert.False(t, s.IsAdmin)
		}
	}

	m := newTestManager(NewMemoryStore())
	check(t, m.Current())
	m.Hydrate()
	check(t, m.Current())
	require.NoError(t, m.Login("tok1", "a@b.com", true))
	check(t, m.Current())
	require.NoError(t, m.Logout())
	check(t, m.Current())
}
