package challenges

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/stillness/internal/models"
)

var (
	tierStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 0)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	lockedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("246")).
			PaddingLeft(4)
)

// Item is one catalog entry together with its lock state at the user's
// current level.
type Item struct {
	Challenge models.Challenge
	Locked    bool
}

// Model is the unlock-gated catalog list.
type Model struct {
	items  []Item
	cursor int
	width  int
	height int
}

func New(items []Item, width, height int) Model {
	return Model{items: items, width: width, height: height}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetItems refreshes the list, keeping the cursor in range.
func (m *Model) SetItems(items []Item) {
	m.items = items
	if m.cursor >= len(items) {
		m.cursor = 0
	}
}

func (m *Model) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *Model) MoveDown() {
	if m.cursor < len(m.items)-1 {
		m.cursor++
	}
}

// Selected returns the item under the cursor.
func (m Model) Selected() (Item, bool) {
	if len(m.items) == 0 {
		return Item{}, false
	}
	return m.items[m.cursor], true
}

func (m Model) View() string {
	if len(m.items) == 0 {
		return "No challenges available."
	}

	var out string
	var lastTier models.Tier
	for i, item := range m.items {
		ch := item.Challenge

		if ch.Tier != lastTier {
			out += tierStyle.Render(string(ch.Tier)) + "\n"
			lastTier = ch.Tier
		}

		line := fmt.Sprintf("%s %s (%d min)", ch.Icon, ch.Title, ch.Duration)
		switch {
		case item.Locked:
			line = lockedStyle.Render(fmt.Sprintf("  🔒 %s (unlocks at level %d)", line, ch.UnlockLevel))
		case i == m.cursor:
			line = selectedStyle.Render("> " + line)
		default:
			line = "  " + line
		}
		out += line + "\n"

		if i == m.cursor && !item.Locked {
			out += descStyle.Render(ch.Description) + "\n"
		}
	}

	return out
}
