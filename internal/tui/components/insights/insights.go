package insights

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/stillness/internal/models"
)

// Filters lists the selectable tag filters in cycle order.
var Filters = []string{"all", "creative", "meaning", "personal", "general"}

var (
	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	activeFilterStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true)

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("246")).
			Italic(true)
)

// Model renders the insight history, filtered by tag and newest first.
type Model struct {
	insights []models.Insight
	filter   string
	width    int
	height   int
}

func New(insights []models.Insight, width, height int) Model {
	return Model{insights: insights, filter: "all", width: width, height: height}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetInsights replaces the rendered history (already filtered, newest first).
func (m *Model) SetInsights(insights []models.Insight) {
	m.insights = insights
}

// Filter returns the active tag filter.
func (m Model) Filter() string {
	return m.filter
}

// CycleFilter advances to the next tag filter and returns it.
func (m *Model) CycleFilter() string {
	for i, f := range Filters {
		if f == m.filter {
			m.filter = Filters[(i+1)%len(Filters)]
			return m.filter
		}
	}
	m.filter = Filters[0]
	return m.filter
}

func (m Model) View() string {
	var out string

	var tabs []string
	for _, f := range Filters {
		if f == m.filter {
			tabs = append(tabs, activeFilterStyle.Render(f))
		} else {
			tabs = append(tabs, f)
		}
	}
	out += strings.Join(tabs, " · ") + "\n\n"

	if len(m.insights) == 0 {
		return out + "No insights yet. Complete challenges to capture your thoughts."
	}

	for _, in := range m.insights {
		preview := in.Preview()
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		// Tags can be empty in a hand-edited state file.
		tag := "general"
		if len(in.Tags) > 0 {
			tag = in.Tags[0]
		}
		out += fmt.Sprintf("%s %s\n", dateStyle.Render(in.Date.Format("Jan 2")), tagStyle.Render(tag))
		out += preview + "\n"
		out += metaStyle.Render("From: "+in.ChallengeTitle) + "\n\n"
	}

	return out
}
