package models

// AppState is the full persisted aggregate: one JSON document (or one SQLite
// database) per installation. The active screen is deliberately not part of
// it; every cold start routes through the startup router instead.
type AppState struct {
	Version     int                  `json:"version"`
	Profile     UserProfile          `json:"profile"`
	Assessment  AssessmentResult     `json:"assessment_results"`
	Sessions    []CompletedChallenge `json:"completed_challenges"`
	Insights    []Insight            `json:"insights"`
	Draft       ReflectionDraft      `json:"reflection_draft"`
	Preferences Preferences          `json:"preferences"`
}

// StateVersion is the current persisted schema version.
const StateVersion = 1

// DefaultState returns the aggregate for a fresh installation. Loading
// unmarshals persisted data over this value, so fields introduced by a schema
// upgrade fall back to their defaults.
func DefaultState() AppState {
	return AppState{
		Version: StateVersion,
		Profile: UserProfile{
			Level: 1,
		},
		Preferences: DefaultPreferences(),
	}
}
