package timer

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/stillness/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 2).
			Align(lipgloss.Center)

	clockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true).
			Padding(1, 0).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Width(40).
			Align(lipgloss.Center)

	pausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	tipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("246"))
)

// Model renders the active challenge session: countdown, progress bar, tips.
type Model struct {
	bar    progress.Model
	width  int
	height int
}

func New() Model {
	return Model{
		bar: progress.New(progress.WithDefaultGradient()),
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.bar.Width = 40
}

func (m Model) View(session *models.ChallengeSession, challenge *models.Challenge) string {
	if session == nil || challenge == nil {
		return "No active challenge."
	}

	remaining := session.RemainingSeconds()
	clock := fmt.Sprintf("%02d:%02d", remaining/60, remaining%60)

	percent := 0.0
	if session.PlannedDurationSeconds > 0 {
		percent = float64(session.ElapsedSeconds) / float64(session.PlannedDurationSeconds)
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(fmt.Sprintf("%s %s", challenge.Icon, challenge.Title)),
		challenge.Description,
		"",
		clockStyle.Render(clock),
		m.bar.ViewAs(percent),
	)

	if session.Phase == models.SessionPaused {
		content = lipgloss.JoinVertical(lipgloss.Center, content, "", pausedStyle.Render("paused"))
	}

	if len(challenge.Tips) > 0 {
		tips := ""
		for _, tip := range challenge.Tips {
			tips += "• " + tip + "\n"
		}
		content = lipgloss.JoinVertical(lipgloss.Center, content, "", tipStyle.Render(tips))
	}

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}
