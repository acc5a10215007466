package app

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/stillness/internal/constants"
	"github.com/julianstephens/stillness/internal/models"
)

func TestDetermineTags(t *testing.T) {
	long := strings.Repeat("a", 25)
	exactly20 := strings.Repeat("b", 20)
	padded := "   " + strings.Repeat("c", 21) + "   "

	tests := []struct {
		name  string
		draft models.ReflectionDraft
		want  []string
	}{
		{"all empty", models.ReflectionDraft{}, []string{"general"}},
		{"creative only", models.ReflectionDraft{Creative: long}, []string{"creative"}},
		{"meaning only", models.ReflectionDraft{Meaning: long}, []string{"meaning"}},
		{"thoughts map to personal", models.ReflectionDraft{Thoughts: long}, []string{"personal"}},
		{"discomfort never tags", models.ReflectionDraft{Discomfort: long}, []string{"general"}},
		{"threshold is exclusive", models.ReflectionDraft{Creative: exactly20}, []string{"general"}},
		{"whitespace does not count", models.ReflectionDraft{Meaning: padded}, []string{"meaning"}},
		{
			"all qualifying",
			models.ReflectionDraft{Thoughts: long, Creative: long, Meaning: long},
			[]string{"creative", "meaning", "personal"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetermineTags(tt.draft)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DetermineTags(%+v) = %v, want %v", tt.draft, got, tt.want)
			}
		})
	}
}

// endSession completes a micro-1 session so the controller sits at the first
// reflection prompt.
func endSession(t *testing.T, c *Controller, now *time.Time) {
	t.Helper()
	if err := c.SelectChallenge("micro-1"); err != nil {
		t.Fatalf("SelectChallenge failed: %v", err)
	}
	*now = now.Add(time.Minute)
	if !c.EndChallengeEarly() {
		t.Fatal("EndChallengeEarly failed")
	}
}

func TestReflectionFlow_SavesInsight(t *testing.T) {
	c, now := newSessionController(t)
	endSession(t, c, now)

	if c.PromptIndex() != 0 {
		t.Fatalf("expected first prompt, got index %d", c.PromptIndex())
	}

	answers := []string{
		"short",
		strings.Repeat("a song idea kept circling back ", 2),
		"restless at first",
		"",
	}
	for i, text := range answers {
		done := c.NextPrompt(text)
		if done != (i == len(answers)-1) {
			t.Fatalf("NextPrompt(%d) done = %v", i, done)
		}
	}

	state := c.State()
	if len(state.Insights) != 1 {
		t.Fatalf("expected 1 insight, got %d", len(state.Insights))
	}
	in := state.Insights[0]
	if in.ChallengeID != "micro-1" || in.ChallengeTitle == "" {
		t.Errorf("expected challenge attribution, got %q/%q", in.ChallengeID, in.ChallengeTitle)
	}
	if !reflect.DeepEqual(in.Tags, []string{"creative"}) {
		t.Errorf("expected creative tag, got %v", in.Tags)
	}
	if state.Profile.TotalInsights != 1 {
		t.Errorf("expected TotalInsights 1, got %d", state.Profile.TotalInsights)
	}
	if !state.Draft.IsEmpty() {
		t.Error("expected draft cleared after save")
	}
	if c.Screen() != constants.ScreenDashboard {
		t.Errorf("expected dashboard after reflection, got %s", c.Screen())
	}
}

func TestReflectionFlow_DraftSurvivesStepBack(t *testing.T) {
	c, now := newSessionController(t)
	endSession(t, c, now)

	c.NextPrompt("first answer")
	if c.PromptIndex() != 1 {
		t.Fatalf("expected prompt 1, got %d", c.PromptIndex())
	}

	c.PreviousPrompt()
	if got := c.DraftField(); got != "first answer" {
		t.Errorf("expected captured answer back, got %q", got)
	}

	c.PreviousPrompt()
	if c.PromptIndex() != 0 {
		t.Errorf("expected index floored at 0, got %d", c.PromptIndex())
	}
}

func TestSetDraftField_PersistsPartialText(t *testing.T) {
	c, now := newSessionController(t)
	endSession(t, c, now)

	c.SetDraftField("typed but not submitted")

	if got := c.State().Draft.Thoughts; got != "typed but not submitted" {
		t.Errorf("expected partial text in draft, got %q", got)
	}
	if got := c.DraftField(); got != "typed but not submitted" {
		t.Errorf("DraftField = %q", got)
	}
}

func TestSkipReflection_DiscardsDraft(t *testing.T) {
	c, now := newSessionController(t)
	endSession(t, c, now)

	c.NextPrompt(strings.Repeat("x", 50))
	if !c.SkipReflection() {
		t.Fatal("SkipReflection returned false with nil confirmer")
	}

	state := c.State()
	if len(state.Insights) != 0 {
		t.Errorf("skip must not create an insight, got %d", len(state.Insights))
	}
	if !state.Draft.IsEmpty() {
		t.Error("expected draft discarded")
	}
	if c.Screen() != constants.ScreenDashboard {
		t.Errorf("expected dashboard after skip, got %s", c.Screen())
	}
}

func TestInsightIDs_StrictlyIncreasing(t *testing.T) {
	c, now := newSessionController(t)

	endSession(t, c, now)
	for i := 0; i < 4; i++ {
		c.NextPrompt("")
	}

	// Rewind the clock so the second insight lands on the same millisecond
	// and has to be bumped past the first.
	*now = now.Add(-time.Minute)
	endSession(t, c, now)
	for i := 0; i < 4; i++ {
		c.NextPrompt("")
	}

	insights := c.State().Insights
	if len(insights) != 2 {
		t.Fatalf("expected 2 insights, got %d", len(insights))
	}
	if insights[1].ID != insights[0].ID+1 {
		t.Errorf("expected ID bumped to %d, got %d", insights[0].ID+1, insights[1].ID)
	}
}

func TestBootstrap_RecoversInsightIDWatermark(t *testing.T) {
	store := newMemStore()
	start := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	store.state.Profile.StartDate = &start
	store.state.Profile.Level = 1
	// An ID far in the future, as if the machine's clock once ran fast.
	store.state.Insights = []models.Insight{{ID: 4102444800000, Date: start}}

	c := New(store, nil)
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	c.clock = func() time.Time { return now }
	if err := c.Bootstrap(); err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}

	endSession(t, c, &now)
	for i := 0; i < 4; i++ {
		c.NextPrompt("")
	}

	insights := c.State().Insights
	if got := insights[len(insights)-1].ID; got != 4102444800001 {
		t.Errorf("expected watermark+1 = 4102444800001, got %d", got)
	}
}
