package cmd

import (
	"fmt"

	"github.com/axemsolutions/dem/internal/core"
)

// deps holds shared dependencies for CLI commands.
type deps struct {
	config   *core.ConfigManager
	platform *core.Platform
}

// newDeps creates shared dependencies. Called lazily by commands that need them.
func newDeps() (*deps, error) {
	var config *core.ConfigManager
	if configDir != "" {
		config = core.NewConfigManagerWithDir(configDir)
	} else {
		var err error
		config, err = core.NewConfigManager()
		if err != nil {
			return nil, fmt.Errorf("initializing config: %w", err)
		}
	}

	platform, err := core.NewPlatform(config, logger)
	if err != nil {
		return nil, err
	}
	logger.Debug("config loaded", "dir", config.ConfigDir())

	return &deps{
		config:   config,
		platform: platform,
	}, nil
}
