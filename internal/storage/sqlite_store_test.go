package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/julianstephens/stillness/internal/models"
)

func TestSQLiteStore_LoadMissingFileYieldsDefaults(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "stillness.db"))
	defer store.Close()

	state, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(state, models.DefaultState()) {
		t.Errorf("expected default state, got %+v", state)
	}
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stillness.db")
	store := NewSQLiteStore(path)
	defer store.Close()

	want := sampleState()
	if err := store.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestSQLiteStore_RoundTripAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stillness.db")

	store := NewSQLiteStore(path)
	want := sampleState()
	if err := store.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened := NewSQLiteStore(path)
	defer reopened.Close()
	got, err := reopened.Load()
	if err != nil {
		t.Fatalf("Load after reopen failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("reopen mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestSQLiteStore_SaveOverwritesHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stillness.db")
	store := NewSQLiteStore(path)
	defer store.Close()

	first := sampleState()
	if err := store.Save(first); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}

	second := first
	second.Sessions = first.Sessions[:1]
	second.Insights = nil
	if err := store.Save(second); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got.Sessions) != 1 {
		t.Errorf("expected 1 session after overwrite, got %d", len(got.Sessions))
	}
	if len(got.Insights) != 0 {
		t.Errorf("expected no insights after overwrite, got %d", len(got.Insights))
	}
}

func TestSQLiteStore_CorruptFileYieldsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stillness.db")
	if err := os.WriteFile(path, []byte("this is not a database"), 0600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	store := NewSQLiteStore(path)
	defer store.Close()

	state, err := store.Load()
	if err != nil {
		t.Fatalf("Load must not fail on a corrupt database: %v", err)
	}
	if !reflect.DeepEqual(state, models.DefaultState()) {
		t.Errorf("expected default state, got %+v", state)
	}
}

func TestSQLiteStore_ResetClearsTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stillness.db")
	store := NewSQLiteStore(path)
	defer store.Close()

	if err := store.Save(sampleState()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	state, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(state, models.DefaultState()) {
		t.Errorf("expected default state after reset, got %+v", state)
	}

	// The database file itself stays; only its contents reset.
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected database file kept: %v", err)
	}
}

func TestSQLiteStore_InitRefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stillness.db")
	store := NewSQLiteStore(path)
	defer store.Close()

	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Init(); err == nil {
		t.Error("expected error initializing over an existing store")
	}
}
