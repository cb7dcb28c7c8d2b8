package commands

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/urbansim-ai/urbansim-cli/internal/cli/auth"
	"github.com/urbansim-ai/urbansim-cli/internal/session"
)

// mockAPIServer serves the login endpoint for command tests.
func mockAPIServer(t *testing.T, email, password, token string, isAdmin bool) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/login" {
			t.Errorf("unexpected path: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var loginReq struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
			t.Errorf("failed to decode request: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if loginReq.Email != email || loginReq.Password != password {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail": "Invalid email or password"}`))
			return
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": token,
			"token_type":   "bearer",
			"user_id":      1,
			"is_admin":     isAdmin,
		})
	}))
}

// useMemoryStore swaps the keychain for an in-memory store for one test.
func useMemoryStore(t *testing.T) *session.MemoryStore {
	t.Helper()

	store := session.NewMemoryStore()
	previous := auth.Default
	auth.Default = store
	t.Cleanup(func() { auth.Default = previous })
	return store
}

func TestLoginCommand_Structure(t *testing.T) {
	cmd := NewLoginCmd()

	if cmd.Use != "login" {
		t.Errorf("expected Use to be 'login', got %s", cmd.Use)
	}
	if cmd.Flags().Lookup("email") == nil {
		t.Error("expected --email flag to exist")
	}
	if cmd.Flags().Lookup("password") == nil {
		t.Error("expected --password flag to exist")
	}
}

func TestLoginCommand_MissingEmail(t *testing.T) {
	t.Setenv("URBANSIM_EMAIL", "")
	t.Setenv("URBANSIM_PASSWORD", "")

	err := runLogin("", "password123")
	if err == nil {
		t.Fatal("expected error when email is missing, got nil")
	}

	expectedError := "email is required (use --email flag or URBANSIM_EMAIL env var)"
	if err.Error() != expectedError {
		t.Errorf("expected error '%s', got '%s'", expectedError, err.Error())
	}
}

func TestLoginCommand_Success(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	store := useMemoryStore(t)

	server := mockAPIServer(t, "citizen@x.com", "password123", "tok-abc", false)
	defer server.Close()
	t.Setenv("URBANSIM_API_BASE", server.URL)

	if err := runLogin("citizen@x.com", "password123"); err != nil {
		t.Fatalf("runLogin returned error: %v", err)
	}

	token, ok, err := store.Get(session.KeyToken)
	if err != nil || !ok {
		t.Fatalf("expected token to be stored, ok=%v err=%v", ok, err)
	}
	if token != "tok-abc" {
		t.Errorf("expected stored token 'tok-abc', got %q", token)
	}

	flag, ok, _ := store.Get(session.KeyIsAdmin)
	if !ok || flag != "false" {
		t.Errorf("expected is_admin 'false', got %q (ok=%v)", flag, ok)
	}
}

func TestLoginCommand_AllowListUpgradesRole(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	store := useMemoryStore(t)

	// Backend says not admin; the default allow-list disagrees.
	server := mockAPIServer(t, "atharv@urbansim.com", "password123", "tok-adm", false)
	defer server.Close()
	t.Setenv("URBANSIM_API_BASE", server.URL)

	if err := runLogin("atharv@urbansim.com", "password123"); err != nil {
		t.Fatalf("runLogin returned error: %v", err)
	}

	flag, ok, _ := store.Get(session.KeyIsAdmin)
	if !ok || flag != "true" {
		t.Errorf("expected allow-list member to be stored as admin, got %q (ok=%v)", flag, ok)
	}
}

func TestLoginCommand_RejectedCredentials(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	useMemoryStore(t)

	server := mockAPIServer(t, "citizen@x.com", "password123", "tok-abc", false)
	defer server.Close()
	t.Setenv("URBANSIM_API_BASE", server.URL)

	if err := runLogin("citizen@x.com", "wrong-password"); err == nil {
		t.Fatal("expected error for rejected credentials, got nil")
	}
}

func TestLogoutCommand_ClearsStoredSession(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	store := useMemoryStore(t)

	server := mockAPIServer(t, "citizen@x.com", "password123", "tok-abc", false)
	defer server.Close()
	t.Setenv("URBANSIM_API_BASE", server.URL)

	if err := runLogin("citizen@x.com", "password123"); err != nil {
		t.Fatalf("runLogin returned error: %v", err)
	}
	if err := runLogout(); err != nil {
		t.Fatalf("runLogout returned error: %v", err)
	}

	for _, key := range []string{session.KeyToken, session.KeyEmail, session.KeyIsAdmin} {
		if _, ok, _ := store.Get(key); ok {
			t.Errorf("expected key %s to be cleared after logout", key)
		}
	}
}
