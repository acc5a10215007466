package app

import (
	"errors"
	"testing"
	"time"

	"github.com/julianstephens/stillness/internal/constants"
	"github.com/julianstephens/stillness/internal/models"
)

// newSessionController returns a controller with an initialized profile and a
// mutable clock.
func newSessionController(t *testing.T) (*Controller, *time.Time) {
	t.Helper()
	c, _ := newTestController(t)
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	c.clock = func() time.Time { return now }
	completeAssessment(t, c, 1)
	return c, &now
}

func TestSelectChallenge_Unknown(t *testing.T) {
	c, _ := newSessionController(t)

	if err := c.SelectChallenge("nope"); err == nil {
		t.Fatal("expected error for unknown challenge")
	}
}

func TestSelectChallenge_Locked(t *testing.T) {
	c, _ := newSessionController(t)

	err := c.SelectChallenge("meso-1")
	if !errors.Is(err, ErrChallengeLocked) {
		t.Fatalf("expected ErrChallengeLocked at level 1, got %v", err)
	}
	if c.Session() != nil {
		t.Error("locked selection must not start a session")
	}
}

func TestSelectChallenge_StartsSession(t *testing.T) {
	c, _ := newSessionController(t)

	if err := c.SelectChallenge("micro-1"); err != nil {
		t.Fatalf("SelectChallenge failed: %v", err)
	}

	sess := c.Session()
	if sess == nil {
		t.Fatal("expected an active session")
	}
	if sess.PlannedDurationSeconds != 5*60 {
		t.Errorf("expected planned duration 300s, got %d", sess.PlannedDurationSeconds)
	}
	if sess.Phase != models.SessionRunning {
		t.Errorf("expected running phase, got %s", sess.Phase)
	}
	if c.Screen() != constants.ScreenChallengeActive {
		t.Errorf("expected challenge-active screen, got %s", c.Screen())
	}
}

func TestTick_CompletesAtPlannedDuration(t *testing.T) {
	c, now := newSessionController(t)
	if err := c.SelectChallenge("micro-1"); err != nil {
		t.Fatalf("SelectChallenge failed: %v", err)
	}

	planned := c.Session().PlannedDurationSeconds
	for i := 0; i < planned-1; i++ {
		if c.Tick() {
			t.Fatalf("completed early at tick %d", i+1)
		}
	}

	*now = now.Add(5 * time.Minute)
	if !c.Tick() {
		t.Fatal("expected final tick to complete the session")
	}

	if c.Session() != nil {
		t.Error("expected session cleared after completion")
	}
	last := c.LastCompleted()
	if last == nil || !last.CompletedFully {
		t.Errorf("expected a fully-completed record, got %+v", last)
	}
	if last.DurationMinutes != 5 {
		t.Errorf("expected 5 recorded minutes, got %d", last.DurationMinutes)
	}
	if c.Screen() != constants.ScreenReflection {
		t.Errorf("expected reflection screen after completion, got %s", c.Screen())
	}
}

func TestTick_PausedAccruesNothing(t *testing.T) {
	c, _ := newSessionController(t)
	if err := c.SelectChallenge("micro-1"); err != nil {
		t.Fatalf("SelectChallenge failed: %v", err)
	}

	c.Tick()
	if err := c.PauseChallenge(); err != nil {
		t.Fatalf("PauseChallenge failed: %v", err)
	}

	before := c.Session().ElapsedSeconds
	for i := 0; i < 10; i++ {
		if c.Tick() {
			t.Fatal("paused session must not complete")
		}
	}
	if got := c.Session().ElapsedSeconds; got != before {
		t.Errorf("paused ticks accrued time: %d -> %d", before, got)
	}

	if err := c.ResumeChallenge(); err != nil {
		t.Fatalf("ResumeChallenge failed: %v", err)
	}
	c.Tick()
	if got := c.Session().ElapsedSeconds; got != before+1 {
		t.Errorf("expected %d elapsed after resume, got %d", before+1, got)
	}
}

func TestPauseResume_NoSession(t *testing.T) {
	c, _ := newSessionController(t)

	if err := c.PauseChallenge(); !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("expected ErrNoActiveSession from pause, got %v", err)
	}
	if err := c.ResumeChallenge(); !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("expected ErrNoActiveSession from resume, got %v", err)
	}
}

func TestEndChallengeEarly_RecordsPartialProgress(t *testing.T) {
	c, now := newSessionController(t)
	if err := c.SelectChallenge("micro-2"); err != nil {
		t.Fatalf("SelectChallenge failed: %v", err)
	}

	*now = now.Add(90 * time.Second)
	if !c.EndChallengeEarly() {
		t.Fatal("EndChallengeEarly returned false with nil confirmer")
	}

	last := c.LastCompleted()
	if last == nil {
		t.Fatal("expected a completion record")
	}
	if last.CompletedFully {
		t.Error("early end must not be marked fully completed")
	}
	if last.DurationMinutes != 1 {
		t.Errorf("expected 90s to floor to 1 minute, got %d", last.DurationMinutes)
	}
	if got := c.State().Profile.TotalBoredomTime; got != 1 {
		t.Errorf("expected 1 total minute, got %d", got)
	}
	if c.Screen() != constants.ScreenReflection {
		t.Errorf("expected reflection after early end, got %s", c.Screen())
	}
}

func TestEndChallengeEarly_Declined(t *testing.T) {
	store := newMemStore()
	c := New(store, ConfirmFunc(func(string) bool { return false }))
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	c.clock = func() time.Time { return now }
	if err := c.Bootstrap(); err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}
	completeAssessment(t, c, 1)
	if err := c.SelectChallenge("micro-1"); err != nil {
		t.Fatalf("SelectChallenge failed: %v", err)
	}

	if c.EndChallengeEarly() {
		t.Fatal("declined confirmation must not end the session")
	}
	if c.Session() == nil {
		t.Error("session must survive a declined early end")
	}
}

func TestCompleteChallenge_ProfileCounters(t *testing.T) {
	c, now := newSessionController(t)

	// 5 minute session, then a shorter one.
	if err := c.SelectChallenge("micro-1"); err != nil {
		t.Fatalf("SelectChallenge failed: %v", err)
	}
	*now = now.Add(5 * time.Minute)
	c.EndChallengeEarly()
	c.SkipReflection()

	if err := c.SelectChallenge("micro-1"); err != nil {
		t.Fatalf("second SelectChallenge failed: %v", err)
	}
	*now = now.Add(2 * time.Minute)
	c.EndChallengeEarly()
	c.SkipReflection()

	profile := c.State().Profile
	if profile.TotalSessions != 2 {
		t.Errorf("expected 2 sessions, got %d", profile.TotalSessions)
	}
	if profile.TotalBoredomTime != 7 {
		t.Errorf("expected 7 total minutes, got %d", profile.TotalBoredomTime)
	}
	if profile.LongestSession != 5 {
		t.Errorf("longest session must not shrink, got %d", profile.LongestSession)
	}
	if len(c.State().Sessions) != 2 {
		t.Errorf("expected 2 history records, got %d", len(c.State().Sessions))
	}
}

func TestLevelUp_SingleStep(t *testing.T) {
	c, now := newSessionController(t)
	c.state.Profile.TotalSessions = 2

	if err := c.SelectChallenge("micro-1"); err != nil {
		t.Fatalf("SelectChallenge failed: %v", err)
	}
	*now = now.Add(time.Minute)
	c.EndChallengeEarly()

	if got := c.State().Profile.Level; got != 2 {
		t.Errorf("expected level 2 after third session, got %d", got)
	}
	if !c.LeveledUp() {
		t.Error("expected leveledUp flag set")
	}
	if c.LeveledUp() {
		t.Error("LeveledUp must clear the flag on read")
	}
}

func TestLevelUp_NeverSkipsLevels(t *testing.T) {
	// A backlog far past the next threshold still raises the level by
	// exactly one per completion.
	c, now := newSessionController(t)
	c.state.Profile.TotalSessions = 20

	if err := c.SelectChallenge("micro-1"); err != nil {
		t.Fatalf("SelectChallenge failed: %v", err)
	}
	*now = now.Add(time.Minute)
	c.EndChallengeEarly()

	if got := c.State().Profile.Level; got != 2 {
		t.Errorf("expected exactly one level step, got level %d", got)
	}
}

func TestNextStreak(t *testing.T) {
	now := time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)
	hoursAgo := func(h int) *time.Time {
		t := now.Add(-time.Duration(h) * time.Hour)
		return &t
	}

	tests := []struct {
		name     string
		current  int
		previous *time.Time
		want     int
	}{
		{"first session ever", 0, nil, 1},
		{"same day", 3, hoursAgo(2), 4},
		{"next day", 3, hoursAgo(30), 4},
		{"just inside the grace window", 3, hoursAgo(47), 4},
		{"two days gone", 3, hoursAgo(49), 1},
		{"long lapse", 10, hoursAgo(24 * 14), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextStreak(tt.current, tt.previous, now)
			if got != tt.want {
				t.Errorf("NextStreak(%d, %v) = %d, want %d", tt.current, tt.previous, got, tt.want)
			}
		})
	}
}

func TestStreak_UsesPreviousSessionDate(t *testing.T) {
	// The streak decision compares against the last session before this
	// one, not the date written by this completion.
	c, now := newSessionController(t)
	last := now.Add(-72 * time.Hour)
	c.state.Profile.LastSessionDate = &last
	c.state.Profile.Streak = 9

	if err := c.SelectChallenge("micro-1"); err != nil {
		t.Fatalf("SelectChallenge failed: %v", err)
	}
	*now = now.Add(time.Minute)
	c.EndChallengeEarly()

	if got := c.State().Profile.Streak; got != 1 {
		t.Errorf("expected streak reset after 3-day gap, got %d", got)
	}
	if !c.State().Profile.LastSessionDate.Equal(*now) {
		t.Error("expected last session date advanced to completion time")
	}
}
