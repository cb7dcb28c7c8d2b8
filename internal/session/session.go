// Package session owns the client-side authentication state: the persisted
// credentials, the in-memory session they hydrate into, and the role routing
// decision made at login time.
package session

// Keys under which credentials are persisted. The admin flag is stored as
// the literal strings "true"/"false".
const (
	KeyToken   = "auth_token"
	KeyEmail   = "user_email"
	KeyIsAdmin = "is_admin"
)

// Session is the in-memory record of the current authenticated principal.
// Token and Email are always set together or both empty; IsAdmin is false
// whenever Token is empty. Loading is true only until the one-time hydration
// pass completes.
type Session struct {
	Token   string
	Email   string
	IsAdmin bool
	Loading bool
}

// Authenticated reports whether the session holds credentials.
func (s Session) Authenticated() bool {
	return s.Token != ""
}
