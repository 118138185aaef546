package test

import (
	"os"
	"path/filepath"
)

// Tree is a throwaway localization tree: a base directory holding one folder
// per language.
type Tree struct {
	Base string
}

func NewTree() (*Tree, error) {
	base, err := os.MkdirTemp("", "ftlmove-tree-*")
	if err != nil {
		return nil, err
	}
	return &Tree{Base: base}, nil
}

func (t *Tree) Path(elem ...string) string {
	return filepath.Join(append([]string{t.Base}, elem...)...)
}

func (t *Tree) Write(content string, elem ...string) error {
	path := t.Path(elem...)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}

func (t *Tree) Read(elem ...string) (string, error) {
	b, err := os.ReadFile(t.Path(elem...))
	return string(b), err
}

func (t *Tree) Exists(elem ...string) bool {
	_, err := os.Stat(t.Path(elem...))
	return err == nil
}

func (t *Tree) Remove() error {
	return os.RemoveAll(t.Base)
}
