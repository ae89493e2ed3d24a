package core

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Platform bundles the process-wide state the commands work on: the
// environment store and the tool image inventory.
type Platform struct {
	Store  *EnvStore
	Images *ToolImages
	Logger *log.Logger
}

// NewPlatform opens the store and wires the image inventory described by
// the settings in cm. The inventory is not refreshed yet.
func NewPlatform(cm *ConfigManager, logger *log.Logger) (*Platform, error) {
	settings, err := cm.LoadSettings()
	if err != nil {
		return nil, err
	}
	if lvl, err := log.ParseLevel(settings.LogLevel); err == nil && logger.GetLevel() > lvl {
		logger.SetLevel(lvl)
	}

	store, err := OpenEnvStore(cm.StorePath())
	if err != nil {
		return nil, fmt.Errorf("opening environment store: %w", err)
	}

	docker := NewDockerCLI(settings)
	images := NewToolImages(NewRegistryCatalog(settings.RegistryCatalog), docker, docker, logger)

	return &Platform{
		Store:  store,
		Images: images,
		Logger: logger,
	}, nil
}

// DevEnv returns the environment called name or ErrUnknownDevEnv.
func (p *Platform) DevEnv(name string) (*DevEnv, error) {
	env := p.Store.FindByName(name)
	if env == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDevEnv, name)
	}
	return env, nil
}
