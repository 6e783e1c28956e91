package localstate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
)

// ColorModeKey is the preference key for the console theme.
const ColorModeKey = "headsup.colorMode"

// ColorMode is the persisted theme preference.
type ColorMode string

const (
	ColorModeDark  ColorMode = "dark"
	ColorModeLight ColorMode = "light"
)

// DefaultColorMode is used when nothing valid is stored.
const DefaultColorMode = ColorModeDark

// Toggle returns the opposite mode.
func (m ColorMode) Toggle() ColorMode {
	if m == ColorModeLight {
		return ColorModeDark
	}
	return ColorModeLight
}

// ParseColorMode accepts "dark" or "light".
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(s) {
	case ColorModeDark, ColorModeLight:
		return ColorMode(s), nil
	}
	return "", fmt.Errorf("invalid color mode %q: want dark or light", s)
}

// Store is a flat string key/value file. Secrets must never be written here.
type Store struct {
	path string
	mu   sync.Mutex
}

// Open returns a Store backed by the preferences file in the state directory.
// Nothing is created until the first Set.
func Open(override string) (*Store, error) {
	dir, err := resolveDir(override)
	if err != nil {
		return nil, err
	}
	return &Store{path: filepath.Join(dir, prefsFilename)}, nil
}

// Path is the backing file.
func (s *Store) Path() string { return s.path }

func (s *Store) load() (map[string]string, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}
	m := map[string]string{}
	if err := json.Unmarshal(b, &m); err != nil {
		// A corrupt file is treated as empty and rewritten on the next Set.
		log.Warn().Err(err).Str("path", s.path).Msg("preferences file unreadable, ignoring")
		return map[string]string{}, nil
	}
	return m, nil
}

// Get returns the stored value for key.
func (s *Store) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := m[key]
	return v, ok, nil
}

// Set stores value under key, replacing the file atomically.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.load()
	if err != nil {
		return err
	}
	m[key] = value
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".prefs-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(append(b, '\n')); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// ColorMode returns the stored theme, or DefaultColorMode when nothing valid
// is stored.
func (s *Store) ColorMode() ColorMode {
	v, ok, err := s.Get(ColorModeKey)
	if err != nil {
		log.Warn().Err(err).Msg("read color mode")
		return DefaultColorMode
	}
	if !ok {
		return DefaultColorMode
	}
	m, err := ParseColorMode(v)
	if err != nil {
		return DefaultColorMode
	}
	return m
}

// SetColorMode persists m.
func (s *Store) SetColorMode(m ColorMode) error {
	if _, err := ParseColorMode(string(m)); err != nil {
		return err
	}
	return s.Set(ColorModeKey, string(m))
}
