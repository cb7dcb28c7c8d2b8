package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGuard_NilManagerPanics(t *testing.T) {
	assert.Panics(t, func() { NewGuard(nil) })
}

func TestGuard_RequireAuth(t *testing.T) {
	m := newTestManager(NewMemoryStore())
	g := NewGuard(m)

	// Before hydration the state is unknown, not unauthenticated.
	_, err := g.RequireAuth()
	require.ErrorIs(t, err, ErrSessionLoading)

	m.Hydrate()
	_, err = g.RequireAuth()
	require.ErrorIs(t, err, ErrNotAuthenticated)

	require.NoError(t, m.Login("tok1", "a@b.com", false))
	s, err := g.RequireAuth()
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", s.Email)
}

func TestGuard_RequireAdmin(t *testing.T) {
	m := newTestManager(NewMemoryStore())
	g := NewGuard(m)
	m.Hydrate()

	_, err := g.RequireAdmin()
	require.ErrorIs(t, err, ErrNotAuthenticated)

	require.NoError(t, m.Login("tok1", "citizen@x.com", false))
	_, err = g.RequireAdmin()
	require.ErrorIs(t, err, ErrAdminRequired)

	require.NoError(t, m.Login("tok2", "admin@x.com", true))
	s, err := g.RequireAdmin()
	require.NoError(t, err)
	assert.True(t, s.IsAdmin)
}

func TestGuard_ReadAccessors(t *testing.T) {
	m := newTestManager(NewMemoryStore())
	g := NewGuard(m)

	assert.True(t, g.Loading())

	m.Hydrate()
	require.NoError(t, m.Login("tok1", "a@b.com", true))

	assert.Equal(t, "tok1", g.Token())
	assert.Equal(t, "a@b.com", g.Email())
	assert.True(t, g.IsAdmin())
	assert.False(t, g.Loading())
}
