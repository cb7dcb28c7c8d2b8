package session

import "errors"

var (
	// ErrSessionLoading means hydration has not completed yet; callers must
	// not make an authenticated-or-not decision in this state.
	ErrSessionLoading = errors.New("session is still loading")

	// ErrNotAuthenticated means no principal is logged in.
	ErrNotAuthenticated = errors.New("not authenticated, run 'urbansim login' first")

	// ErrAdminRequired means the current principal lacks administrator access.
	ErrAdminRequired = errors.New("administrator access required")
)

// Guard is the read-only view of the session used to gate commands. It never
// mutates state.
type Guard struct {
	m *Manager
}

// NewGuard creates a Guard over an active Manager. Passing nil is a usage
// error, not a runtime condition, and panics.
func NewGuard(m *Manager) *Guard {
	if m == nil {
		panic("session: NewGuard requires an active Manager")
	}
	return &Guard{m: m}
}

func (g *Guard) Token() string { return g.m.Current().Token }

func (g *Guard) Email() string { return g.m.Current().Email }

func (g *Guard) IsAdmin() bool { return g.m.Current().IsAdmin }

func (g *Guard) Loading() bool { return g.m.Current().Loading }

// RequireAuth returns the session if a principal is logged in. A loading
// session is treated as unknown, not as unauthenticated.
func (g *Guard) RequireAuth() (Session, error) {
	s := g.m.Current()
	if s.Loading {
		return Session{}, ErrSessionLoading
	}
	if !s.Authenticated() {
		return Session{}, ErrNotAuthenticated
	}
	return s, nil
}

// RequireAdmin returns the session if the principal has administrator
// access. A missing email is as disqualifying as a false admin flag.
func (g *Guard) RequireAdmin() (Session, error) {
	s, err := g.RequireAuth()
	if err != nil {
		return Session{}, err
	}
	if !s.IsAdmin || s.Email == "" {
		return Session{}, ErrAdminRequired
	}
	return s, nil
}
