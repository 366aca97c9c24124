package cart

import (
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type cartFile struct {
	Version int    `yaml:"version"`
	Lines   []Line `yaml:"lines"`
}

// YAMLStore keeps the cart in a single YAML file. Saves are atomic
// (tmp + rename); loads soft-fail, so a corrupt or foreign-shaped file
// reads as an empty cart rather than an error.
type YAMLStore struct {
	path string
}

func NewYAMLStore(path string) (*YAMLStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return &YAMLStore{path: path}, nil
}

func (s *YAMLStore) Save(lines []Line) error {
	data, err := yaml.Marshal(cartFile{Version: 1, Lines: lines})
	if err != nil {
		return err
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tmpPath, s.path)
}

func (s *YAMLStore) Load() ([]Line, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		// Unreadable slot hydrates empty, same as a missing one.
		slog.Warn("cart slot unreadable, starting empty", "path", s.path, "error", err)
		return nil, nil
	}

	var file cartFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		slog.Warn("cart slot corrupt, starting empty", "path", s.path, "error", err)
		return nil, nil
	}

	return file.Lines, nil
}
