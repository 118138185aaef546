package ftlmove

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keys.txt")
	if err := os.WriteFile(path, []byte("  common-ok  \n\n\ncommon-cancel\r\n-brand\n"), 0644); err != nil {
		t.Fatal(err)
	}
	keys, err := LoadKeys(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"-brand", "common-cancel", "common-ok"}
	if got := keys.Sorted(); !equalStrings(got, want) {
		t.Errorf("LoadKeys() = %v, want %v", got, want)
	}
}

func TestLoadKeys_yaml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keys.yaml")
	if err := os.WriteFile(path, []byte("- common-ok\n- ' common-cancel '\n- ''\n"), 0644); err != nil {
		t.Fatal(err)
	}
	keys, err := LoadKeys(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"common-cancel", "common-ok"}
	if got := keys.Sorted(); !equalStrings(got, want) {
		t.Errorf("LoadKeys() = %v, want %v", got, want)
	}
}

func TestLoadKeys_missingFile(t *testing.T) {
	_, err := LoadKeys(filepath.Join(t.TempDir(), "nope.txt"))
	if !IsConfigError(err) {
		t.Fatalf("expected config error, got %v", err)
	}
	if IsSkippable(err) {
		t.Error("missing key list must not be skippable")
	}
}

func TestLoadKeys_emptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.txt")
	if err := os.WriteFile(path, []byte("\n  \n"), 0644); err != nil {
		t.Fatal(err)
	}
	keys, err := LoadKeys(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 0 {
		t.Errorf("expected empty set, got %v", keys.Sorted())
	}
}
