package catalog

import (
	"testing"

	"github.com/julianstephens/stillness/internal/models"
)

func TestChallenges_CatalogIntegrity(t *testing.T) {
	all := Challenges()
	if len(all) != 9 {
		t.Fatalf("expected 9 challenges, got %d", len(all))
	}

	seen := map[string]bool{}
	for _, ch := range all {
		if ch.ID == "" || ch.Title == "" || ch.Description == "" {
			t.Errorf("challenge %q missing identity fields", ch.ID)
		}
		if seen[ch.ID] {
			t.Errorf("duplicate challenge ID %q", ch.ID)
		}
		seen[ch.ID] = true

		if ch.Duration <= 0 {
			t.Errorf("challenge %q has non-positive duration %d", ch.ID, ch.Duration)
		}
		if ch.UnlockLevel < 1 {
			t.Errorf("challenge %q has unlock level %d", ch.ID, ch.UnlockLevel)
		}
		if len(ch.Tips) == 0 {
			t.Errorf("challenge %q has no tips", ch.ID)
		}
	}
}

func TestChallengesByTier(t *testing.T) {
	tests := []struct {
		tier models.Tier
		want int
	}{
		{models.TierMicro, 3},
		{models.TierMeso, 3},
		{models.TierMacro, 3},
	}

	for _, tt := range tests {
		got := ChallengesByTier(tt.tier)
		if len(got) != tt.want {
			t.Errorf("tier %s has %d challenges, want %d", tt.tier, len(got), tt.want)
		}
		for _, ch := range got {
			if ch.Tier != tt.tier {
				t.Errorf("challenge %q has tier %s in %s listing", ch.ID, ch.Tier, tt.tier)
			}
		}
	}
}

func TestChallenges_UnlockProgression(t *testing.T) {
	// Every micro challenge is available from level 1, and the catalog
	// always offers something new up to level 4.
	wantByLevel := map[int]bool{1: false, 2: false, 3: false, 4: false}
	for _, ch := range Challenges() {
		if ch.Tier == models.TierMicro && ch.UnlockLevel != 1 {
			t.Errorf("micro challenge %q locked until level %d", ch.ID, ch.UnlockLevel)
		}
		if _, ok := wantByLevel[ch.UnlockLevel]; ok {
			wantByLevel[ch.UnlockLevel] = true
		}
	}
	for level, found := range wantByLevel {
		if !found {
			t.Errorf("no challenge unlocks at level %d", level)
		}
	}
}

func TestGetChallenge(t *testing.T) {
	ch, ok := GetChallenge("micro-1")
	if !ok {
		t.Fatal("expected micro-1 in the catalog")
	}
	if ch.Duration != 5 {
		t.Errorf("micro-1 duration = %d, want 5", ch.Duration)
	}

	if _, ok := GetChallenge("nope"); ok {
		t.Error("expected lookup miss for unknown ID")
	}
}

func TestRecommended_OnePerTier(t *testing.T) {
	recs := Recommended()
	if len(recs) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(recs))
	}

	tiers := map[models.Tier]bool{}
	for _, ch := range recs {
		tiers[ch.Tier] = true
	}
	if len(tiers) != 3 {
		t.Errorf("expected one recommendation per tier, got %v", tiers)
	}
}

func TestQuestions_Integrity(t *testing.T) {
	qs := Questions()
	if len(qs) != 8 {
		t.Fatalf("expected 8 questions, got %d", len(qs))
	}
	if QuestionCount() != len(qs) {
		t.Errorf("QuestionCount = %d, want %d", QuestionCount(), len(qs))
	}

	categories := map[Category]int{}
	for i, q := range qs {
		if q.Text == "" {
			t.Errorf("question %d has no text", i)
		}
		if len(q.Options) != 4 {
			t.Errorf("question %d has %d options, want 4", i, len(q.Options))
		}
		for j, opt := range q.Options {
			if opt.Score != j+1 {
				t.Errorf("question %d option %d has score %d, want %d", i, j, opt.Score, j+1)
			}
		}
		categories[q.Category]++
	}

	for _, cat := range []Category{CategoryDependency, CategoryProneness, CategoryMeaning} {
		if categories[cat] == 0 {
			t.Errorf("no questions in category %s", cat)
		}
	}
}
