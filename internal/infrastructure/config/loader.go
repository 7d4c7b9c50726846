package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// Tuning file names, in lookup order
const (
	TuningYAML = "tuning.yaml"
	TuningJSON = "tuning.json"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Tuning *TuningConfig
}

// Loader loads game configuration using the fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader reads from
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadTuning loads tuning.yaml, falling back to tuning.json, and validates it.
func (l *Loader) LoadTuning() (*TuningConfig, error) {
	data, err := fs.ReadFile(l.fsys, TuningYAML)
	if err == nil {
		return parseTuning(TuningYAML, data, yaml.Unmarshal)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", TuningYAML, err)
	}

	data, err = fs.ReadFile(l.fsys, TuningJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s or %s: %w", TuningYAML, TuningJSON, err)
	}
	return parseTuning(TuningJSON, data, json.Unmarshal)
}

func parseTuning(name string, data []byte, unmarshal func([]byte, any) error) (*TuningConfig, error) {
	// An empty file is rejected, not read as all defaults
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%s: %w: empty file", name, ErrInvalidConfig)
	}

	// Start from the defaults so a file only needs the values it changes
	cfg := DefaultTuning()
	if err := unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

// LoadStage loads and validates a stage JSON file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	p := path.Join("stages", name+".json")
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
	}

	var cfg StageConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("stage %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadAll loads all base configurations
func (l *Loader) LoadAll() (*GameConfig, error) {
	tuning, err := l.LoadTuning()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Tuning: tuning,
	}, nil
}
