// Package export renders the persisted aggregate into the user-facing export
// formats. All exports are read-only views of the state.
package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/stillness/internal/constants"
	"github.com/julianstephens/stillness/internal/models"
)

// Format identifies an export output format.
type Format string

const (
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatInsights Format = "insights"
)

// Document is the JSON export envelope: the full aggregate plus preferences,
// an ISO export timestamp and the application version.
type Document struct {
	Profile     models.UserProfile          `json:"profile"`
	Assessment  models.AssessmentResult     `json:"assessment_results"`
	Sessions    []models.CompletedChallenge `json:"completed_challenges"`
	Insights    []models.Insight            `json:"insights"`
	Preferences models.Preferences          `json:"preferences"`
	ExportDate  string                      `json:"export_date"`
	AppVersion  string                      `json:"app_version"`
}

// JSON renders the full-aggregate JSON export.
func JSON(state models.AppState, now time.Time) ([]byte, error) {
	doc := Document{
		Profile:     state.Profile,
		Assessment:  state.Assessment,
		Sessions:    state.Sessions,
		Insights:    state.Insights,
		Preferences: state.Preferences,
		ExportDate:  now.UTC().Format(time.RFC3339),
		AppVersion:  constants.Version,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize export: %w", err)
	}
	return data, nil
}

// CSV renders one row per completed session. Commas and hyphens are stripped
// from the challenge identifier so the fixed three-column layout survives
// without quoting. The level column carries the user's current level.
func CSV(state models.AppState) string {
	var b strings.Builder
	b.WriteString("Date,Challenge,Duration (min),Completed,Level\n")

	for _, rec := range state.Sessions {
		completed := "No"
		if rec.CompletedFully {
			completed = "Yes"
		}
		b.WriteString(fmt.Sprintf("%s,%s,%d,%s,%d\n",
			rec.CompletedAt.Format(constants.DateFormat),
			sanitizeChallengeID(rec.ChallengeID),
			rec.DurationMinutes,
			completed,
			state.Profile.Level,
		))
	}

	return b.String()
}

func sanitizeChallengeID(id string) string {
	return strings.Map(func(r rune) rune {
		if r == ',' || r == '-' {
			return ' '
		}
		return r
	}, id)
}

// InsightsReport renders the plain-text insights export: a profile summary
// followed by one numbered block per insight with its non-empty fields.
func InsightsReport(state models.AppState, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s - Personal Insights Export\n", constants.AppName)
	fmt.Fprintf(&b, "Export Date: %s\n\n", now.Format(constants.DateFormat))

	b.WriteString("=== PERSONAL STATISTICS ===\n")
	fmt.Fprintf(&b, "Level: %d\n", state.Profile.Level)
	fmt.Fprintf(&b, "Current Streak: %d days\n", state.Profile.Streak)
	fmt.Fprintf(&b, "Total Sessions: %d\n", state.Profile.TotalSessions)
	fmt.Fprintf(&b, "Total Time: %d minutes\n\n", state.Profile.TotalBoredomTime)

	b.WriteString("=== INSIGHTS & REFLECTIONS ===\n\n")

	for i, in := range state.Insights {
		fmt.Fprintf(&b, "Insight #%d (%s)\n", i+1, in.Date.Format(constants.DateFormat))
		fmt.Fprintf(&b, "Challenge: %s\n", in.ChallengeTitle)
		if in.Thoughts != "" {
			fmt.Fprintf(&b, "Thoughts: %s\n", in.Thoughts)
		}
		if in.Creative != "" {
			fmt.Fprintf(&b, "Creative Insights: %s\n", in.Creative)
		}
		if in.Discomfort != "" {
			fmt.Fprintf(&b, "Discomfort Noticed: %s\n", in.Discomfort)
		}
		if in.Meaning != "" {
			fmt.Fprintf(&b, "Meaning & Purpose: %s\n", in.Meaning)
		}
		fmt.Fprintf(&b, "Tags: %s\n\n", strings.Join(in.Tags, ", "))
	}

	return b.String()
}

// Filename returns the conventional export filename for the given format and
// day.
func Filename(format Format, now time.Time) string {
	day := now.Format(constants.DateFormat)
	switch format {
	case FormatCSV:
		return fmt.Sprintf("%s_sessions_%s.csv", constants.AppName, day)
	case FormatInsights:
		return fmt.Sprintf("%s_insights_%s.txt", constants.AppName, day)
	}
	return fmt.Sprintf("%s_data_%s.json", constants.AppName, day)
}
