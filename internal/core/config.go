package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configDirName    = ".dem"
	settingsFileName = "config.yaml"
	storeFileName    = "dev_env.json"
	registryFileName = "registry.json"

	// ConfigDirEnv overrides the configuration directory.
	ConfigDirEnv = "DEM_CONFIG_DIR"
)

// Settings holds user preferences read from ~/.dem/config.yaml.
type Settings struct {
	Docker          string        `yaml:"docker"`           // Container CLI binary
	RegistryCatalog string        `yaml:"registry_catalog"` // Path to the registry image list
	PullTimeout     time.Duration `yaml:"pull_timeout"`
	ListTimeout     time.Duration `yaml:"list_timeout"`
	LogLevel        string        `yaml:"log_level"`
}

// ConfigManager locates and reads the dem configuration directory.
type ConfigManager struct {
	configDir string
	mu        sync.RWMutex
}

// NewConfigManager creates a ConfigManager using $DEM_CONFIG_DIR or ~/.dem/.
func NewConfigManager() (*ConfigManager, error) {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return NewConfigManagerWithDir(dir), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting home directory: %w", err)
	}
	return &ConfigManager{
		configDir: filepath.Join(home, configDirName),
	}, nil
}

// NewConfigManagerWithDir creates a ConfigManager using a custom config directory.
// Useful for testing.
func NewConfigManagerWithDir(dir string) *ConfigManager {
	return &ConfigManager{configDir: dir}
}

// ConfigDir returns the configuration directory path.
func (cm *ConfigManager) ConfigDir() string {
	return cm.configDir
}

// SettingsPath returns the full path to config.yaml.
func (cm *ConfigManager) SettingsPath() string {
	return filepath.Join(cm.configDir, settingsFileName)
}

// StorePath returns the full path to the environment store.
func (cm *ConfigManager) StorePath() string {
	return filepath.Join(cm.configDir, storeFileName)
}

// LoadSettings reads config.yaml. Missing files and fields fall back to
// defaults.
func (cm *ConfigManager) LoadSettings() (*Settings, error) {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	s := defaultSettings()
	data, err := os.ReadFile(cm.SettingsPath())
	if err != nil {
		if os.IsNotExist(err) {
			s.RegistryCatalog = filepath.Join(cm.configDir, registryFileName)
			return s, nil
		}
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}
	if s.Docker == "" {
		s.Docker = "docker"
	}
	if s.PullTimeout <= 0 {
		s.PullTimeout = defaultPullTimeout
	}
	if s.ListTimeout <= 0 {
		s.ListTimeout = defaultListTimeout
	}
	s.RegistryCatalog = expandPath(s.RegistryCatalog)
	switch {
	case s.RegistryCatalog == "":
		s.RegistryCatalog = filepath.Join(cm.configDir, registryFileName)
	case !filepath.IsAbs(s.RegistryCatalog):
		s.RegistryCatalog = filepath.Join(cm.configDir, s.RegistryCatalog)
	}
	return s, nil
}

// expandPath expands a leading ~ to the home directory and $VAR references
// to environment values.
func expandPath(p string) string {
	if strings.Contains(p, "$") {
		p = os.ExpandEnv(p)
	}
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, p[1:])
		}
	}
	return p
}

const (
	defaultPullTimeout = 10 * time.Minute
	defaultListTimeout = 30 * time.Second
)

func defaultSettings() *Settings {
	return &Settings{
		Docker:      "docker",
		PullTimeout: defaultPullTimeout,
		ListTimeout: defaultListTimeout,
		LogLevel:    "warn",
	}
}
