package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/stillness/internal/app"
	"github.com/julianstephens/stillness/internal/catalog"
	"github.com/julianstephens/stillness/internal/constants"
	"github.com/julianstephens/stillness/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.confirm != confirmNone {
		return m.viewConfirm()
	}

	var content string
	showTabs := false

	switch m.ctrl.Screen() {
	case constants.ScreenLoading:
		content = "Loading..."
	case constants.ScreenOnboarding:
		content = m.viewOnboarding()
	case constants.ScreenAssessment:
		content = m.viewAssessment()
	case constants.ScreenDashboard:
		content = m.viewDashboard()
		showTabs = true
	case constants.ScreenChallenges:
		content = docStyle.Render(m.challengesModel.View())
		showTabs = true
	case constants.ScreenChallengeActive:
		content = m.timerModel.View(m.ctrl.Session(), m.ctrl.ActiveChallenge())
	case constants.ScreenReflection:
		content = m.viewReflection()
	case constants.ScreenInsights:
		content = docStyle.Render(m.insightsModel.View())
		showTabs = true
	case constants.ScreenProfile:
		content = m.viewProfile()
		showTabs = true
	}

	sections := []string{}
	if showTabs {
		sections = append(sections, m.viewTabs())
	}
	sections = append(sections, content)
	if m.notice != "" {
		sections = append(sections, noticeStyle.Render(m.notice))
	}
	sections = append(sections, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Dashboard", "Challenges", "Insights", "Profile"} {
		if m.ctrl.Screen() == tabScreens[i] {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewOnboarding() string {
	return lipgloss.Place(m.width, m.height-2,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			titleStyle.Render("Welcome to Stillness"),
			"",
			"Train your mind to be comfortable with boredom.",
			"Rediscover the quiet spaces between moments.",
			"",
			subtleStyle.Render("A short assessment will gauge where you are starting from."),
			"",
			"[enter] Begin",
		),
	)
}

func (m Model) viewAssessment() string {
	q := m.ctrl.CurrentQuestion()

	var b strings.Builder
	b.WriteString(subtleStyle.Render(fmt.Sprintf("Question %d of %d", m.ctrl.AssessmentIndex()+1, catalog.QuestionCount())))
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render(q.Text))
	b.WriteString("\n\n")

	for i, opt := range q.Options {
		cursor := "  "
		line := opt.Text
		if i == m.optionCursor {
			cursor = "> "
			line = selectedOptionStyle.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("enter: next · esc: previous"))

	return docStyle.Render(b.String())
}

func (m Model) viewDashboard() string {
	metrics := app.Dashboard(m.ctrl.State())

	var b strings.Builder
	b.WriteString(titleStyle.Render("Your Stillness Practice"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s  Level %s\n", "🧘", statStyle.Render(fmt.Sprintf("%d", metrics.Level))))
	b.WriteString(fmt.Sprintf("%s  Streak %s days\n", "🔥", statStyle.Render(fmt.Sprintf("%d", metrics.Streak))))
	b.WriteString(fmt.Sprintf("%s  %s minutes of boredom\n", "⏱", statStyle.Render(fmt.Sprintf("%d", metrics.TotalBoredomTime))))
	b.WriteString(fmt.Sprintf("%s  %s insights captured\n", "💡", statStyle.Render(fmt.Sprintf("%d", metrics.TotalInsights))))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Boredom tolerance  %s\n", renderScoreBar(metrics.ToleranceScore)))
	b.WriteString(fmt.Sprintf("Digital freedom    %s\n", renderScoreBar(metrics.FreedomScore)))
	b.WriteString("\n")

	// Suggest the highest unlocked tier's pick.
	var suggested *models.Challenge
	for _, ch := range catalog.Recommended() {
		if m.ctrl.Unlocked(ch) {
			ch := ch
			suggested = &ch
		}
	}
	if suggested != nil {
		b.WriteString(subtleStyle.Render("Suggested: ") + fmt.Sprintf("%s %s (%d min)\n\n", suggested.Icon, suggested.Title, suggested.Duration))
	}

	recent := app.RecentInsights(m.ctrl.State(), 3)
	if len(recent) > 0 {
		b.WriteString(subtleStyle.Render("Recent insights") + "\n")
		for _, in := range recent {
			b.WriteString("· " + in.Preview() + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(subtleStyle.Render("enter: start a challenge"))

	return docStyle.Render(b.String())
}

func (m Model) viewReflection() string {
	summary := ""
	if last := m.ctrl.LastCompleted(); last != nil {
		verb := "ended early after"
		if last.CompletedFully {
			verb = "sat with boredom for"
		}
		summary = titleStyle.Render(fmt.Sprintf("You %s %d minute(s).", verb, last.DurationMinutes))
	}

	header := subtleStyle.Render(fmt.Sprintf("Reflection %d of %d", m.ctrl.PromptIndex()+1, len(constants.ReflectionPrompts)))
	body := ""
	if m.form != nil {
		body = m.form.View()
	}
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, summary, header, "", body))
}

func (m Model) viewProfile() string {
	state := m.ctrl.State()
	metrics := app.Profile(state, time.Now())

	var b strings.Builder
	b.WriteString(titleStyle.Render("Profile"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Level %d · Day %d of your practice\n\n", metrics.Level, metrics.DaysSinceStart))
	b.WriteString(fmt.Sprintf("Sessions completed   %s\n", statStyle.Render(fmt.Sprintf("%d", metrics.TotalSessions))))
	b.WriteString(fmt.Sprintf("Total time           %s min\n", statStyle.Render(fmt.Sprintf("%d", metrics.TotalTime))))
	b.WriteString(fmt.Sprintf("Longest session      %s min\n", statStyle.Render(fmt.Sprintf("%d", metrics.LongestSession))))
	b.WriteString(fmt.Sprintf("Insights             %s\n", statStyle.Render(fmt.Sprintf("%d", metrics.TotalInsights))))
	b.WriteString(fmt.Sprintf("Current streak       %s days\n", statStyle.Render(fmt.Sprintf("%d", metrics.Streak))))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("Assessment") + "\n")
	b.WriteString(fmt.Sprintf("Phone dependency     %s\n", metrics.DependencyLabel))
	b.WriteString(fmt.Sprintf("Boredom proneness    %s\n", metrics.PronenessLabel))
	b.WriteString(fmt.Sprintf("Sense of meaning     %s\n", metrics.MeaningLabel))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("Preferences") + "\n")
	b.WriteString(fmt.Sprintf("[s] Font size            %s\n", state.Preferences.FontSize))
	b.WriteString(fmt.Sprintf("[c] High contrast        %s\n", onOff(state.Preferences.HighContrast)))
	b.WriteString(fmt.Sprintf("[n] Daily reminder       %s\n", onOff(state.Preferences.Notifications.DailyReminder)))
	b.WriteString(fmt.Sprintf("[a] Achievements         %s\n", onOff(state.Preferences.Notifications.Achievements)))
	b.WriteString(fmt.Sprintf("[m] Reflection reminders %s\n", onOff(state.Preferences.Notifications.ReflectionReminders)))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("[r] retake assessment · [x] reset all progress"))

	return docStyle.Render(b.String())
}

func (m Model) viewConfirm() string {
	var prompt string
	switch m.confirm {
	case confirmEndEarly:
		prompt = "End this challenge early?"
	case confirmSkipReflection:
		prompt = "Skip the reflection? Your answers so far will be discarded."
	case confirmRetake:
		prompt = "Retake the assessment? Your previous results will be replaced."
	case confirmReset:
		prompt = "Reset ALL progress? This cannot be undone."
	}

	style := titleStyle
	if m.confirm == confirmReset {
		style = dangerStyle
	}

	return lipgloss.Place(m.width, m.height-2,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			style.Render(prompt),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func renderScoreBar(score int) string {
	filled := score / 10
	if filled > 10 {
		filled = 10
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
	return fmt.Sprintf("%s %d/100", bar, score)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
