package models

import "testing"

func TestReflectionDraft_FieldRoundTrip(t *testing.T) {
	var d ReflectionDraft
	for i := 0; i < 4; i++ {
		d.SetField(i, "field")
	}
	if d.Thoughts != "field" || d.Creative != "field" || d.Discomfort != "field" || d.Meaning != "field" {
		t.Errorf("SetField did not reach every field: %+v", d)
	}
	for i := 0; i < 4; i++ {
		if got := d.Field(i); got != "field" {
			t.Errorf("Field(%d) = %q", i, got)
		}
	}
	if d.Field(4) != "" {
		t.Error("out-of-range index must read as empty")
	}
}

func TestInsight_Preview(t *testing.T) {
	tests := []struct {
		name    string
		insight Insight
		want    string
	}{
		{"creative wins", Insight{Creative: "c", Meaning: "m", Thoughts: "t"}, "c"},
		{"meaning next", Insight{Meaning: "m", Thoughts: "t"}, "m"},
		{"thoughts last", Insight{Thoughts: "t"}, "t"},
		{"fallback", Insight{Discomfort: "d"}, "Reflection captured"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.insight.Preview(); got != tt.want {
				t.Errorf("Preview() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChallengeSession_RemainingSeconds(t *testing.T) {
	s := ChallengeSession{PlannedDurationSeconds: 300, ElapsedSeconds: 120}
	if got := s.RemainingSeconds(); got != 180 {
		t.Errorf("RemainingSeconds = %d, want 180", got)
	}

	s.ElapsedSeconds = 400
	if got := s.RemainingSeconds(); got != 0 {
		t.Errorf("overrun must floor at zero, got %d", got)
	}
}
