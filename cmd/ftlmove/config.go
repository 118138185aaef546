package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/loopcontext/ftlmove"
	"gopkg.in/yaml.v2"
)

// fileConfig is the --config file. Relative paths are resolved against the
// directory holding the config file.
type fileConfig struct {
	BaseDir             string           `yaml:"base_dir"`
	StringsToMoveFile   string           `yaml:"strings_to_move_file"`
	SourceFilename      string           `yaml:"source_filename"`
	DestinationFilename string           `yaml:"destination_filename"`
	Rename              bool             `yaml:"rename"`
	DryRun              bool             `yaml:"dry_run"`
	Languages           ftlmove.Patterns `yaml:"languages"`
}

func loadFileConfig(path string) (*fileConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg fileConfig
	if err := yaml.UnmarshalStrict(content, &cfg); err != nil {
		return nil, fmt.Errorf("parse config YAML %s: %w", path, err)
	}
	dir := filepath.Dir(path)
	cfg.BaseDir = resolvePath(dir, cfg.BaseDir)
	cfg.StringsToMoveFile = resolvePath(dir, cfg.StringsToMoveFile)
	return &cfg, nil
}

func resolvePath(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
