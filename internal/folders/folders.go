// Package folders persists the list of configured ES-DE folders.
package folders

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/viper"
)

// ErrNoSelection is returned when AddFolder is called without a folder.
var ErrNoSelection = errors.New("no folder selected")

const configKey = "folders"

// Store is a viper-backed folder registry kept in the user config dir
// (overridable with ESDE_CONFIG_DIR).
type Store struct {
	v    *viper.Viper
	path string
}

// NewStore opens the registry, creating an empty one when no config file
// exists yet.
func NewStore() (*Store, error) {
	dir := os.Getenv("ESDE_CONFIG_DIR")
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config directory: %w", err)
		}
		dir = filepath.Join(base, "esde-steam-manager")
	}

	path := filepath.Join(dir, "config.yaml")
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault(configKey, []string{})

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return &Store{v: v, path: path}, nil
}

// Folders returns the configured folders.
func (s *Store) Folders() []string {
	return s.v.GetStringSlice(configKey)
}

// Add registers folder and persists the registry. An empty folder fails
// with ErrNoSelection; a folder that is not an existing directory is
// rejected. Re-adding a known folder is a no-op.
func (s *Store) Add(folder string) (string, error) {
	if folder == "" {
		return "", ErrNoSelection
	}

	abs, err := filepath.Abs(folder)
	if err != nil {
		return "", fmt.Errorf("failed to resolve folder path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("failed to access folder: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", abs)
	}

	list := s.Folders()
	if !slices.Contains(list, abs) {
		list = append(list, abs)
		s.v.Set(configKey, list)
		if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
			return "", fmt.Errorf("failed to create config directory: %w", err)
		}
		if err := s.v.WriteConfigAs(s.path); err != nil {
			return "", fmt.Errorf("failed to write config: %w", err)
		}
	}
	return abs, nil
}
