// Package ftlmove moves Fluent messages and terms from one resource file to
// another in every language directory of a localization tree, optionally
// renaming their key prefix on the way.
package ftlmove

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/loopcontext/ftlmove/internal/fluent"
)

// Migrator runs the move over a base directory. It is not safe for concurrent use.
type Migrator struct {
	cfg        Config
	languages  languageFilter
	fromPrefix string
	toPrefix   string
	stats      Stats
}

// NewMigrator validates cfg and fills in defaults.
func NewMigrator(cfg Config) (*Migrator, error) {
	if cfg.BaseDir == "" {
		cfg.BaseDir = DefaultBaseDir
	}
	if cfg.SourceFilename == "" {
		cfg.SourceFilename = DefaultSourceFilename
	}
	if cfg.DestinationFilename == "" {
		cfg.DestinationFilename = DefaultDestinationFilename
	}
	if cfg.KeysFile == "" {
		return nil, newConfigError("", "a strings list file is required", nil)
	}
	if cfg.SourceFilename == cfg.DestinationFilename {
		return nil, newConfigError("", fmt.Sprintf("source and destination are the same file '%s'", cfg.SourceFilename), nil)
	}
	if cfg.Reporter == nil {
		cfg.Reporter = nopReporter{}
	}
	languages, err := cfg.Languages.compile()
	if err != nil {
		return nil, newConfigError("", err.Error(), err)
	}
	return &Migrator{
		cfg:        cfg,
		languages:  languages,
		fromPrefix: filenamePrefix(cfg.SourceFilename),
		toPrefix:   filenamePrefix(cfg.DestinationFilename),
	}, nil
}

// Run processes every language directory in turn. Directories without the
// source file are reported and skipped; a ConfigError or an I/O failure stops
// the run and returns the stats gathered so far.
func (m *Migrator) Run() (Stats, error) {
	m.stats = Stats{}
	keys, err := LoadKeys(m.cfg.KeysFile)
	if err != nil {
		return m.stats, err
	}
	if len(keys) == 0 {
		m.cfg.Reporter.OnNoKeys()
		return m.stats, nil
	}

	dirs, err := m.languageDirs()
	if err != nil {
		return m.stats, err
	}
	if len(dirs) == 0 {
		return m.stats, newConfigError(m.cfg.BaseDir, fmt.Sprintf("no language directories found in '%s'", m.cfg.BaseDir), nil)
	}
	m.stats.Directories = len(dirs)

	for _, dir := range dirs {
		if err := m.migrateDir(dir, keys); err != nil {
			if IsSkippable(err) {
				m.stats.Skipped++
				m.cfg.Reporter.OnSkip(dir, err)
				continue
			}
			return m.stats, err
		}
		m.stats.Processed++
	}
	return m.stats, nil
}

// languageDirs lists the immediate, non-hidden subdirectories of the base
// directory in name order, following symlinks. A base path that is missing or
// is not a directory yields none.
func (m *Migrator) languageDirs() ([]string, error) {
	entries, err := os.ReadDir(m.cfg.BaseDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return nil, nil
		}
		return nil, fmt.Errorf("read base directory %s: %w", m.cfg.BaseDir, err)
	}
	var dirs []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") || !m.languages.match(name) {
			continue
		}
		path := filepath.Join(m.cfg.BaseDir, name)
		if !e.IsDir() {
			if e.Type()&fs.ModeSymlink == 0 {
				continue
			}
			info, err := os.Stat(path)
			if err != nil || !info.IsDir() {
				continue
			}
		}
		dirs = append(dirs, path)
	}
	return dirs, nil
}

func (m *Migrator) migrateDir(dir string, keys KeySet) error {
	sourcePath := filepath.Join(dir, m.cfg.SourceFilename)
	destinationPath := filepath.Join(dir, m.cfg.DestinationFilename)

	src, err := os.ReadFile(sourcePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return newSkippableError(sourcePath, fmt.Sprintf("'%s' not found", m.cfg.SourceFilename), err)
		}
		return fmt.Errorf("read source %s: %w", sourcePath, err)
	}
	m.cfg.Reporter.OnProcess(sourcePath)

	source := fluent.Parse(string(src))
	moved, remaining := partition(source.Body, keys)
	if m.cfg.Rename {
		m.rename(moved)
	}

	if len(moved) > 0 {
		destination, err := readResource(destinationPath)
		if err != nil {
			return err
		}
		appendMoved(destination, moved)
		if !m.cfg.DryRun {
			if err := writeResource(destinationPath, destination); err != nil {
				return err
			}
		}
		m.stats.KeysMoved += len(moved)
		m.cfg.Reporter.OnMoved(len(moved), destinationPath)
	} else {
		m.cfg.Reporter.OnNothingMoved(sourcePath)
	}

	if !m.cfg.DryRun {
		if err := writeResource(sourcePath, &fluent.Resource{Body: remaining}); err != nil {
			return err
		}
	}
	m.cfg.Reporter.OnSourceUpdated(sourcePath)
	return nil
}

func (m *Migrator) rename(entries []*fluent.Entry) {
	for _, e := range entries {
		old := e.ID
		e.ID = RenamePrefix(old, m.fromPrefix, m.toPrefix)
		if e.ID != old {
			m.stats.KeysRenamed++
			m.cfg.Reporter.OnRename(old, e.ID)
		}
	}
}

// readResource parses path, or returns an empty resource when it does not exist.
func readResource(path string) (*fluent.Resource, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &fluent.Resource{}, nil
		}
		return nil, fmt.Errorf("read destination %s: %w", path, err)
	}
	return fluent.Parse(string(content)), nil
}

// writeResource overwrites path, keeping the permissions of an existing file.
func writeResource(path string, res *fluent.Resource) error {
	perm := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(fluent.Serialize(res)), perm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
