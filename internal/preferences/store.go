// Package preferences persists the user's theme choice between sessions.
package preferences

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const fileVersion = "1.0"

// ThemeMode is the persisted light/dark choice.
type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"

	// DefaultTheme applies when nothing valid is stored.
	DefaultTheme = ThemeDark
)

// ParseThemeMode accepts "light" or "dark".
func ParseThemeMode(value string) (ThemeMode, error) {
	switch ThemeMode(value) {
	case ThemeLight, ThemeDark:
		return ThemeMode(value), nil
	default:
		return "", fmt.Errorf("unknown theme mode %q (want light or dark)", value)
	}
}

// Toggle returns the opposite mode.
func (m ThemeMode) Toggle() ThemeMode {
	if m == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// IsDark reports whether m is the dark mode.
func (m ThemeMode) IsDark() bool {
	return m == ThemeDark
}

// File is the on-disk layout.
type File struct {
	Version   string    `json:"version"`
	ThemeMode ThemeMode `json:"themeMode"`
}

// Store holds the preference file in memory and writes it back on Save.
type Store struct {
	path  string
	mu    sync.RWMutex
	theme ThemeMode

	// writeMu serializes file writes; saved is the newest generation written by SaveTheme.
	writeMu sync.Mutex
	saved   uint64
}

// NewStore creates a Store backed by path and loads it when the file exists.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  path,
		theme: DefaultTheme,
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create preferences directory: %w", err)
	}

	if err := s.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return s, nil
}

// Path returns the backing file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the preference file. An unknown theme value falls back to DefaultTheme.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse preferences: %w", err)
	}

	mode, err := ParseThemeMode(string(file.ThemeMode))
	if err != nil {
		mode = DefaultTheme
	}
	s.theme = mode
	return nil
}

// Save writes the preference file atomically.
func (s *Store) Save() error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.write()
}

// SaveTheme sets mode and writes it unless a save with a newer or equal
// generation already happened. Stale saves return nil.
func (s *Store) SaveTheme(mode ThemeMode, generation uint64) error {
	if _, err := ParseThemeMode(string(mode)); err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if generation <= s.saved {
		return nil
	}

	s.mu.Lock()
	s.theme = mode
	s.mu.Unlock()

	if err := s.write(); err != nil {
		return err
	}
	s.saved = generation
	return nil
}

// write must be called with writeMu held.
func (s *Store) write() error {
	s.mu.RLock()
	file := File{Version: fileVersion, ThemeMode: s.theme}
	s.mu.RUnlock()

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// Theme returns the current theme mode.
func (s *Store) Theme() ThemeMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// SetTheme updates the theme in memory; call Save to persist it.
func (s *Store) SetTheme(mode ThemeMode) error {
	if _, err := ParseThemeMode(string(mode)); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = mode
	return nil
}

// ToggleTheme flips the theme, persists it and returns the new mode.
func (s *Store) ToggleTheme() (ThemeMode, error) {
	s.mu.Lock()
	s.theme = s.theme.Toggle()
	mode := s.theme
	s.mu.Unlock()

	return mode, s.Save()
}
