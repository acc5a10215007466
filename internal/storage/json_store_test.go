package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/julianstephens/stillness/internal/models"
)

func sampleState() models.AppState {
	start := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
	last := time.Date(2026, 3, 13, 21, 30, 0, 0, time.UTC)

	state := models.DefaultState()
	state.Profile = models.UserProfile{
		Level:            2,
		Streak:           4,
		TotalBoredomTime: 73,
		TotalInsights:    2,
		TotalSessions:    6,
		LongestSession:   20,
		StartDate:        &start,
		LastSessionDate:  &last,
	}
	state.Assessment = models.AssessmentResult{Dependency: 63, Proneness: 75, Meaning: 50}
	state.Sessions = []models.CompletedChallenge{
		{ChallengeID: "micro-1", DurationMinutes: 5, CompletedAt: last.Add(-48 * time.Hour), CompletedFully: true},
		{ChallengeID: "meso-1", DurationMinutes: 18, CompletedAt: last, CompletedFully: false},
	}
	state.Insights = []models.Insight{
		{
			ID:             1767600000000,
			ChallengeID:    "micro-1",
			ChallengeTitle: "Wait Without Stimulation",
			Date:           last.Add(-48 * time.Hour),
			Thoughts:       "kept reaching for my pocket",
			Tags:           []string{"general"},
		},
		{
			ID:             1767600000001,
			ChallengeID:    "meso-1",
			ChallengeTitle: "Mindful Walk",
			Date:           last,
			Creative:       "an idea for rearranging the studio kept returning",
			Tags:           []string{"creative"},
		},
	}
	state.Draft = models.ReflectionDraft{Thoughts: "half-finished thought"}
	state.Preferences.HighContrast = true
	state.Preferences.Notifications.DailyReminder = true
	return state
}

func TestJSONStore_LoadMissingFileYieldsDefaults(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "stillness.json"))

	state, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(state, models.DefaultState()) {
		t.Errorf("expected default state, got %+v", state)
	}
}

func TestJSONStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stillness.json")
	store := NewJSONStore(path)

	want := sampleState()
	if err := store.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	want.Version = models.StateVersion

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestJSONStore_MalformedFileYieldsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stillness.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	store := NewJSONStore(path)
	state, err := store.Load()
	if err != nil {
		t.Fatalf("Load must not fail on malformed input: %v", err)
	}
	if !reflect.DeepEqual(state, models.DefaultState()) {
		t.Errorf("expected default state, got %+v", state)
	}
}

func TestJSONStore_PartialDocumentMergesOverDefaults(t *testing.T) {
	// A document from an older schema only carries some fields; everything
	// it omits keeps its default.
	path := filepath.Join(t.TempDir(), "stillness.json")
	doc := `{"profile": {"level": 3, "streak": 9}}`
	if err := os.WriteFile(path, []byte(doc), 0600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	store := NewJSONStore(path)
	state, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if state.Profile.Level != 3 || state.Profile.Streak != 9 {
		t.Errorf("stored fields lost: level %d streak %d", state.Profile.Level, state.Profile.Streak)
	}
	if state.Preferences.FontSize != "base" {
		t.Errorf("omitted preference lost its default, got %q", state.Preferences.FontSize)
	}
	if !state.Preferences.Notifications.Achievements {
		t.Error("omitted notification preference lost its default")
	}
}

func TestJSONStore_ResetRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stillness.json")
	store := NewJSONStore(path)

	if err := store.Save(sampleState()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected state file removed")
	}

	// Resetting an already-clean store is not an error.
	if err := store.Reset(); err != nil {
		t.Errorf("second Reset failed: %v", err)
	}
}

func TestJSONStore_InitRefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stillness.json")
	store := NewJSONStore(path)

	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Init(); err == nil {
		t.Error("expected error initializing over an existing store")
	}
}
