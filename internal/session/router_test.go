package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoute(t *testing.T) {
	allowList := []string{"atharv@urbansim.com", "Ops@UrbanSim.com"}

	tests := []struct {
		name           string
		backendIsAdmin bool
		email          string
		want           Destination
	}{
		{"backend flag wins", true, "anyone@x.com", AdminArea},
		{"allow-list overrides backend flag", false, "atharv@urbansim.com", AdminArea},
		{"allow-list match is case-insensitive", false, "ATHARV@URBANSIM.COM", AdminArea},
		{"allow-list entry casing is ignored too", false, "ops@urbansim.com", AdminArea},
		{"plain citizen", false, "citizen@x.com", UserArea},
		{"empty email", false, "", UserArea},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Route(tt.backendIsAdmin, tt.email, allowList))
		})
	}
}

func TestRoute_EmptyAllowList(t *testing.T) {
	assert.Equal(t, UserArea, Route(false, "atharv@urbansim.com", nil))
	assert.Equal(t, AdminArea, Route(true, "atharv@urbansim.com", nil))
}

func TestDestinationString(t *testing.T) {
	assert.Equal(t, "admin", AdminArea.String())
	assert.Equal(t, "dashboard", UserArea.String())
}
