package insights

import (
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/stillness/internal/models"
)

func TestView_EmptyTagsFallsBackToGeneral(t *testing.T) {
	m := New([]models.Insight{
		{
			ID:             1,
			Date:           time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
			ChallengeTitle: "Sit in silence",
			Thoughts:       "Mostly restless at first.",
			Tags:           nil,
		},
	}, 80, 24)

	// The filter tab row already names "general" once; the card line
	// adds a second occurrence.
	out := m.View()
	if got := strings.Count(out, "general"); got < 2 {
		t.Errorf("expected untagged insight rendered as general, got:\n%s", out)
	}
	if !strings.Contains(out, "Mostly restless at first.") {
		t.Errorf("expected insight preview in output, got:\n%s", out)
	}
}

func TestView_TaggedInsightShowsFirstTag(t *testing.T) {
	m := New([]models.Insight{
		{
			ID:             2,
			Date:           time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
			ChallengeTitle: "Wait without a phone",
			Creative:       strings.Repeat("An idea for a short story. ", 3),
			Tags:           []string{"creative", "personal"},
		},
	}, 80, 24)

	out := m.View()
	if got := strings.Count(out, "creative"); got < 2 {
		t.Errorf("expected first tag in output, got:\n%s", out)
	}
}

func TestCycleFilter_WrapsAround(t *testing.T) {
	m := New(nil, 80, 24)
	seen := []string{m.Filter()}
	for range Filters {
		seen = append(seen, m.CycleFilter())
	}
	if first, last := seen[0], seen[len(seen)-1]; first != last {
		t.Errorf("expected filter cycle to wrap, started %q ended %q", first, last)
	}
}
