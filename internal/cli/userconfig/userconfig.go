package userconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	configDirName  = "urbansim"
	configFileName = "config.json"
)

const defaultAPIBase = "http://localhost:8000"

// defaultAdminEmails is the stop-gap allow-list of principals treated as
// admin for routing even when the backend does not flag them. It is a
// product decision, not a security boundary: the backend's is_admin stays
// the source of truth for anything the server enforces.
var defaultAdminEmails = []string{
	"atharv@urbansim.com",
	"admin@urbansim.com",
}

// UserConfig represents the user's local configuration stored in
// ~/.config/urbansim/config.json
type UserConfig struct {
	APIBase     string   `json:"api_base"`
	AdminEmails []string `json:"admin_emails"`
}

// GetConfigPath returns the path to the user config file
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", configDirName)
	return filepath.Join(configDir, configFileName), nil
}

// Load reads the user configuration file. Missing file or missing fields
// fall back to the built-in defaults.
func Load() (*UserConfig, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg := &UserConfig{}

	if _, err := os.Stat(configPath); err == nil {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read user config file: %w", err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse user config file: %w", err)
		}
	}

	if cfg.APIBase == "" {
		cfg.APIBase = defaultAPIBase
	}
	if len(cfg.AdminEmails) == 0 {
		cfg.AdminEmails = append([]string(nil), defaultAdminEmails...)
	}

	return cfg, nil
}

// Save writes the user configuration to a file
func Save(cfg *UserConfig) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal user config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write user config file: %w", err)
	}

	return nil
}
