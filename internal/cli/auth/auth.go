package auth

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/urbansim-ai/urbansim-cli/internal/session"
)

const (
	service = "urbansim-cli"
)

// KeyringStore persists session credentials in the OS keychain/credential
// manager. It implements session.KeyValue; a missing entry is reported as
// absent, not as an error.
type KeyringStore struct{}

func (KeyringStore) Get(key string) (string, bool, error) {
	value, err := keyring.Get(service, key)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read %s from keychain: %w", key, err)
	}
	return value, true, nil
}

func (KeyringStore) Set(key, value string) error {
	if err := keyring.Set(service, key, value); err != nil {
		return fmt.Errorf("failed to save %s to keychain: %w", key, err)
	}
	return nil
}

func (KeyringStore) Delete(key string) error {
	if err := keyring.Delete(service, key); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil // Already deleted
		}
		return fmt.Errorf("failed to delete %s from keychain: %w", key, err)
	}
	return nil
}

// Default is the credential store used by commands. Tests swap in a
// session.MemoryStore.
var Default session.KeyValue = KeyringStore{}
