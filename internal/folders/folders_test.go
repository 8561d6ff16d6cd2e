package folders

import (
	"errors"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	t.Setenv("ESDE_CONFIG_DIR", t.TempDir())
	s, err := NewStore()
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestNewStoreEmpty(t *testing.T) {
	s := newTestStore(t)
	if got := s.Folders(); len(got) != 0 {
		t.Errorf("Expected empty folder list, got %v", got)
	}
}

func TestAddEmptyFails(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Add(""); !errors.Is(err, ErrNoSelection) {
		t.Errorf("Expected ErrNoSelection, got %v", err)
	}
}

func TestAddMissingDirFails(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Add(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("Expected error for missing directory")
	}
}

func TestAddPersistsAndDeduplicates(t *testing.T) {
	configDir := t.TempDir()
	t.Setenv("ESDE_CONFIG_DIR", configDir)

	s, err := NewStore()
	if err != nil {
		t.Fatal(err)
	}

	folder := t.TempDir()
	added, err := s.Add(folder)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if added != folder {
		t.Errorf("Expected %q, got %q", folder, added)
	}

	// Re-adding is a no-op.
	if _, err := s.Add(folder); err != nil {
		t.Fatalf("Re-add failed: %v", err)
	}
	if got := s.Folders(); len(got) != 1 {
		t.Errorf("Expected 1 folder, got %v", got)
	}

	// A fresh store sees the persisted list.
	s2, err := NewStore()
	if err != nil {
		t.Fatal(err)
	}
	got := s2.Folders()
	if len(got) != 1 || got[0] != folder {
		t.Errorf("Expected persisted folder %q, got %v", folder, got)
	}
}
