package core

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/tailscale/hujson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

const storeVersion = "0.1"

// EnvStore holds the local Development Environments and persists them to
// dev_env.json. The file is read as JSONC, so hand-edited comments and
// trailing commas are accepted; it is always written back as plain JSON.
// Top-level keys the store does not know about are kept on rewrite.
type EnvStore struct {
	path string
	mu   sync.RWMutex
	file StoreFile
	doc  []byte // standardized document as loaded
}

// OpenEnvStore loads the store at path. A missing file yields an empty store.
func OpenEnvStore(path string) (*EnvStore, error) {
	s := &EnvStore{
		path: path,
		file: StoreFile{Version: storeVersion, DevelopmentEnvs: []*DevEnv{}},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading environment store: %w", err)
	}

	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("parsing environment store: %w", err)
	}
	s.doc = std
	if err := json.Unmarshal(std, &s.file); err != nil {
		return nil, fmt.Errorf("parsing environment store: %w", err)
	}
	if s.file.DevelopmentEnvs == nil {
		s.file.DevelopmentEnvs = []*DevEnv{}
	}
	return s, nil
}

// Path returns the file backing the store.
func (s *EnvStore) Path() string {
	return s.path
}

// FindByName returns the environment called name, or nil.
func (s *EnvStore) FindByName(name string) *DevEnv {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.file.DevelopmentEnvs {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// List returns the environments in file order.
func (s *EnvStore) List() []*DevEnv {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*DevEnv, len(s.file.DevelopmentEnvs))
	copy(out, s.file.DevelopmentEnvs)
	return out
}

// Append adds env to the in-memory collection. Call Persist to save it.
func (s *EnvStore) Append(env *DevEnv) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.file.DevelopmentEnvs = append(s.file.DevelopmentEnvs, env)
}

// remove drops env from the in-memory collection.
func (s *EnvStore) remove(env *DevEnv) {
	s.mu.Lock()
	defer s.mu.Unlock()

	envs := s.file.DevelopmentEnvs[:0]
	for _, e := range s.file.DevelopmentEnvs {
		if e != env {
			envs = append(envs, e)
		}
	}
	s.file.DevelopmentEnvs = envs
}

// Persist writes the full collection to disk, replacing prior contents.
func (s *EnvStore) Persist() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	envs, err := json.Marshal(s.file.DevelopmentEnvs)
	if err != nil {
		return fmt.Errorf("marshaling environment store: %w", err)
	}

	doc := s.doc
	if len(doc) == 0 {
		doc = []byte("{}")
	}
	doc, err = sjson.SetBytes(doc, "version", s.file.Version)
	if err != nil {
		return fmt.Errorf("updating environment store: %w", err)
	}
	doc, err = sjson.SetRawBytes(doc, "development_environments", envs)
	if err != nil {
		return fmt.Errorf("updating environment store: %w", err)
	}
	data := pretty.PrettyOptions(doc, &pretty.Options{Width: 80, Indent: "    "})

	// Write atomically: write to temp file then rename
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("writing environment store: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // clean up on failure
		return fmt.Errorf("saving environment store: %w", err)
	}
	s.doc = data
	return nil
}
