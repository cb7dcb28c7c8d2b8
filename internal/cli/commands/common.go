package commands

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/urbansim-ai/urbansim-cli/internal/cli/auth"
	"github.com/urbansim-ai/urbansim-cli/internal/cli/client"
	"github.com/urbansim-ai/urbansim-cli/internal/cli/userconfig"
	"github.com/urbansim-ai/urbansim-cli/internal/config"
	"github.com/urbansim-ai/urbansim-cli/internal/logger"
	"github.com/urbansim-ai/urbansim-cli/internal/session"
)

// cliContext bundles the dependencies every command needs: configuration,
// the hydrated session, and an API client carrying the stored token.
type cliContext struct {
	cfg     *config.Config
	userCfg *userconfig.UserConfig
	log     zerolog.Logger
	baseURL string
	manager *session.Manager
	guard   *session.Guard
	api     *client.Client
}

// newCLIContext loads configuration and hydrates the session. This is common
// setup used by every command.
func newCLIContext() (*cliContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	userCfg, err := userconfig.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	log := logger.GetLogger()

	manager := session.NewManager(auth.Default, log)
	manager.Hydrate()
	guard := session.NewGuard(manager)

	// Environment overrides the user config file.
	baseURL := userCfg.APIBase
	if cfg.API.BaseURL != "" {
		baseURL = cfg.API.BaseURL
	}

	api := client.New(baseURL, log)
	if token := guard.Token(); token != "" {
		api.SetToken(token)
	}

	return &cliContext{
		cfg:     cfg,
		userCfg: userCfg,
		log:     log,
		baseURL: baseURL,
		manager: manager,
		guard:   guard,
		api:     api,
	}, nil
}
