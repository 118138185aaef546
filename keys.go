package ftlmove

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/loopcontext/ftlmove/internal/fluent"
	"gopkg.in/yaml.v2"
)

// KeySet is the set of message and term keys selected for the move.
type KeySet map[string]struct{}

// NewKeySet builds a set from key names, trimming whitespace and dropping blanks.
func NewKeySet(keys ...string) KeySet {
	set := make(KeySet, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k != "" {
			set[k] = struct{}{}
		}
	}
	return set
}

// LoadKeys reads a key list: one key per line, or a YAML list of strings when
// the file has a .yaml or .yml extension.
func LoadKeys(path string) (KeySet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, newConfigError(path, fmt.Sprintf("the strings list file '%s' does not exist", path), err)
		}
		return nil, fmt.Errorf("read key list %s: %w", path, err)
	}
	var lines []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &lines); err != nil {
			return nil, fmt.Errorf("parse key list YAML %s: %w", path, err)
		}
	default:
		lines = strings.Split(string(data), "\n")
	}
	return NewKeySet(lines...), nil
}

// Has reports whether key is in the set.
func (k KeySet) Has(key string) bool {
	_, ok := k[key]
	return ok
}

// Sorted returns the keys in lexical order.
func (k KeySet) Sorted() []string {
	out := make([]string, 0, len(k))
	for key := range k {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// selects reports whether a parsed entry is to be moved. Terms match by bare
// name or with their leading "-".
func (k KeySet) selects(e *fluent.Entry) bool {
	switch e.Kind {
	case fluent.Message:
		return k.Has(e.ID)
	case fluent.Term:
		return k.Has(e.ID) || k.Has(e.Key())
	default:
		return false
	}
}
