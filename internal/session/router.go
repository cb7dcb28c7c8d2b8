package session

import "strings"

// Destination is the post-login area a principal is routed to.
type Destination int

const (
	UserArea Destination = iota
	AdminArea
)

func (d Destination) String() string {
	if d == AdminArea {
		return "admin"
	}
	return "dashboard"
}

// Route decides the post-login destination. The allow-list is a client-side
// fallback for principals the backend does not flag as admin; membership is
// matched case-insensitively. The decision is made once at login and does
// not re-evaluate for the life of the session.
func Route(backendIsAdmin bool, email string, allowList []string) Destination {
	if backendIsAdmin {
		return AdminArea
	}
	lower := strings.ToLower(email)
	for _, allowed := range allowList {
		if strings.ToLower(allowed) == lower {
			return AdminArea
		}
	}
	return UserArea
}
