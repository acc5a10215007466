package models

import "time"

// UserProfile is the per-installation progress aggregate. It is created on
// first run and mutated after every completed challenge; it is never deleted
// except by an explicit reset.
type UserProfile struct {
	Level            int        `json:"level"`
	Streak           int        `json:"streak"`
	TotalBoredomTime int        `json:"total_boredom_time"` // minutes
	TotalInsights    int        `json:"total_insights"`
	TotalSessions    int        `json:"total_sessions"`
	LongestSession   int        `json:"longest_session"` // minutes
	StartDate        *time.Time `json:"start_date,omitempty"`
	LastSessionDate  *time.Time `json:"last_session_date,omitempty"`
}

// AssessmentResult holds the derived scores for the three fixed assessment
// categories, each in [0,100]. Recomputed wholesale on every assessment
// completion; no history is kept.
type AssessmentResult struct {
	Dependency int `json:"dependency"`
	Proneness  int `json:"proneness"`
	Meaning    int `json:"meaning"`
}

// NotificationPrefs are the user's notification toggles.
type NotificationPrefs struct {
	DailyReminder       bool `json:"daily_reminder"`
	Achievements        bool `json:"achievements"`
	ReflectionReminders bool `json:"reflection_reminders"`
}

// Preferences are cosmetic/accessibility settings persisted alongside the
// progress data and included in JSON exports.
type Preferences struct {
	FontSize      string            `json:"font_size"`
	HighContrast  bool              `json:"high_contrast"`
	Notifications NotificationPrefs `json:"notifications"`
}

// DefaultPreferences returns the preferences for a fresh installation.
func DefaultPreferences() Preferences {
	return Preferences{
		FontSize: "base",
		Notifications: NotificationPrefs{
			Achievements:        true,
			ReflectionReminders: true,
		},
	}
}

// FontSizes enumerates the selectable font sizes in cycle order.
var FontSizes = []string{"small", "base", "large", "xl"}
