// Package config provides settings file handling for linemark.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/thirteen37/linemark/internal/marker"
)

// Settings holds the user-settable options.
type Settings struct {
	// Marker is inserted in manual mode. It may name a marker preset.
	Marker string `toml:"marker" yaml:"marker"`

	// Languages overrides or extends the built-in language table.
	// Keys are host language ids, values are markers or preset names.
	Languages map[string]string `toml:"languages,omitempty" yaml:"languages,omitempty"`
}

// Defaults returns the default settings.
func Defaults() *Settings {
	return &Settings{Marker: marker.DefaultMarker}
}

// DefaultPath returns $XDG_CONFIG_HOME/linemark/config.toml, falling back to
// ~/.config/linemark/config.toml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "linemark", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".config", "linemark", "config.toml"), nil
}

// Discover returns the first existing settings file next to DefaultPath,
// trying .toml, .ini, .yaml and .yml in that order. When none exists it
// returns DefaultPath.
func Discover() (string, error) {
	path, err := DefaultPath()
	if err != nil {
		return "", err
	}
	base := strings.TrimSuffix(path, filepath.Ext(path))
	for _, ext := range []string{".toml", ".ini", ".yaml", ".yml"} {
		if _, err := os.Stat(base + ext); err == nil {
			return base + ext, nil
		}
	}
	return path, nil
}

// Load reads Settings from a file. The codec is chosen by file extension.
func Load(filename string) (*Settings, error) {
	c, err := codecFor(filename)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	s := Defaults()
	if err := c.decode(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	s.SetMarker(s.Marker)

	return s, nil
}

// LoadOrDefaults is like Load but returns Defaults when the file does not exist.
func LoadOrDefaults(filename string) (*Settings, error) {
	s, err := Load(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Defaults(), nil
	}
	return s, err
}

// Save writes the Settings to a file, creating parent directories as needed.
func (s *Settings) Save(filename string) error {
	c, err := codecFor(filename)
	if err != nil {
		return err
	}

	data, err := c.encode(s)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// SetMarker sets the manual marker. An empty value falls back to the default marker.
func (s *Settings) SetMarker(value string) {
	s.Marker = marker.Coerce(value)
}

// SetLanguage sets the marker for a language id.
// Returns true if the entry was added or changed, false if it was already set.
func (s *Settings) SetLanguage(id, value string) bool {
	if s.Languages == nil {
		s.Languages = make(map[string]string)
	}
	if existing, ok := s.Languages[id]; ok && existing == value {
		return false
	}
	s.Languages[id] = value
	return true
}

// RemoveLanguage removes a language override.
// Returns true if the override was removed, false if it wasn't found.
func (s *Settings) RemoveLanguage(id string) bool {
	if _, ok := s.Languages[id]; !ok {
		return false
	}
	delete(s.Languages, id)
	return true
}

// LanguageIDs returns the overridden language ids in sorted order.
func (s *Settings) LanguageIDs() []string {
	ids := make([]string, 0, len(s.Languages))
	for id := range s.Languages {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// codec encodes and decodes Settings in one file format.
type codec interface {
	decode(data []byte, s *Settings) error
	encode(s *Settings) ([]byte, error)
}

func codecFor(filename string) (codec, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		return tomlCodec{}, nil
	case ".ini":
		return iniCodec{}, nil
	case ".yaml", ".yml":
		return yamlCodec{}, nil
	default:
		return nil, fmt.Errorf("unsupported config format %q (use .toml, .ini or .yaml)", ext)
	}
}
