package app

import (
	"math"
	"time"

	"github.com/julianstephens/stillness/internal/models"
)

// DashboardMetrics are the derived display values recomputed on dashboard
// entry.
type DashboardMetrics struct {
	Level            int
	Streak           int
	TotalBoredomTime int
	TotalInsights    int
	ToleranceScore   int // min(100, totalBoredomTime/10)
	FreedomScore     int // max(0, 100 - dependency)
}

// ProfileMetrics are the derived display values for the profile screen.
type ProfileMetrics struct {
	Level           int
	DaysSinceStart  int
	TotalSessions   int
	TotalTime       int
	LongestSession  int
	TotalInsights   int
	Streak          int
	PronenessLabel  string
	DependencyLabel string
	MeaningLabel    string
}

// Dashboard computes the dashboard metrics for the given state.
func Dashboard(state models.AppState) DashboardMetrics {
	tolerance := int(math.Round(float64(state.Profile.TotalBoredomTime) / 10))
	if tolerance > 100 {
		tolerance = 100
	}
	freedom := 100 - state.Assessment.Dependency
	if freedom < 0 {
		freedom = 0
	}

	return DashboardMetrics{
		Level:            state.Profile.Level,
		Streak:           state.Profile.Streak,
		TotalBoredomTime: state.Profile.TotalBoredomTime,
		TotalInsights:    len(state.Insights),
		ToleranceScore:   tolerance,
		FreedomScore:     freedom,
	}
}

// Profile computes the profile metrics for the given state at the given time.
func Profile(state models.AppState, now time.Time) ProfileMetrics {
	days := 0
	if state.Profile.StartDate != nil {
		days = int(now.Sub(*state.Profile.StartDate).Hours()/24) + 1
	}

	return ProfileMetrics{
		Level:           state.Profile.Level,
		DaysSinceStart:  days,
		TotalSessions:   state.Profile.TotalSessions,
		TotalTime:       state.Profile.TotalBoredomTime,
		LongestSession:  state.Profile.LongestSession,
		TotalInsights:   len(state.Insights),
		Streak:          state.Profile.Streak,
		PronenessLabel:  scoreLabel(state.Assessment.Proneness),
		DependencyLabel: scoreLabel(state.Assessment.Dependency),
		MeaningLabel:    meaningLabel(state.Assessment.Meaning),
	}
}

func scoreLabel(v int) string {
	switch {
	case v < 33:
		return "Low"
	case v < 66:
		return "Medium"
	}
	return "High"
}

func meaningLabel(v int) string {
	switch {
	case v < 33:
		return "Developing"
	case v < 66:
		return "Growing"
	}
	return "Strong"
}

// RecentInsights returns up to n insights, newest first.
func RecentInsights(state models.AppState, n int) []models.Insight {
	out := make([]models.Insight, 0, n)
	for i := len(state.Insights) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, state.Insights[i])
	}
	return out
}

// FilterInsights returns insights carrying the given tag, newest first. The
// "all" filter matches everything.
func FilterInsights(state models.AppState, tag string) []models.Insight {
	var out []models.Insight
	for i := len(state.Insights) - 1; i >= 0; i-- {
		in := state.Insights[i]
		if tag == "all" || in.HasTag(tag) {
			out = append(out, in)
		}
	}
	return out
}
