package models

import "time"

// ReflectionDraft holds the four free-text reflection fields while the
// reflection wizard is in progress. It is reset to empty at flow entry and
// discarded after synthesis into an Insight.
type ReflectionDraft struct {
	Thoughts   string `json:"thoughts"`
	Creative   string `json:"creative"`
	Discomfort string `json:"discomfort"`
	Meaning    string `json:"meaning"`
}

// Field returns the draft field for the given prompt index (0-3).
func (d ReflectionDraft) Field(i int) string {
	switch i {
	case 0:
		return d.Thoughts
	case 1:
		return d.Creative
	case 2:
		return d.Discomfort
	case 3:
		return d.Meaning
	}
	return ""
}

// SetField stores text into the draft field for the given prompt index (0-3).
func (d *ReflectionDraft) SetField(i int, text string) {
	switch i {
	case 0:
		d.Thoughts = text
	case 1:
		d.Creative = text
	case 2:
		d.Discomfort = text
	case 3:
		d.Meaning = text
	}
}

// IsEmpty reports whether all four fields are empty.
func (d ReflectionDraft) IsEmpty() bool {
	return d.Thoughts == "" && d.Creative == "" && d.Discomfort == "" && d.Meaning == ""
}

// Insight is an append-only reflection record derived from a completed
// session. Never mutated after creation.
type Insight struct {
	ID             int64     `json:"id"` // unix milliseconds, strictly increasing
	ChallengeID    string    `json:"challenge_id"`
	ChallengeTitle string    `json:"challenge_title"`
	Date           time.Time `json:"date"`
	Thoughts       string    `json:"thoughts"`
	Creative       string    `json:"creative"`
	Discomfort     string    `json:"discomfort"`
	Meaning        string    `json:"meaning"`
	Tags           []string  `json:"tags"`
}

// Preview returns the display text for an insight card: the first non-empty
// field in creative, meaning, thoughts priority order.
func (in Insight) Preview() string {
	switch {
	case in.Creative != "":
		return in.Creative
	case in.Meaning != "":
		return in.Meaning
	case in.Thoughts != "":
		return in.Thoughts
	}
	return "Reflection captured"
}

// HasTag reports whether the insight carries the given tag.
func (in Insight) HasTag(tag string) bool {
	for _, t := range in.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
