package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/stillness/internal/app"
	"github.com/julianstephens/stillness/internal/catalog"
	"github.com/julianstephens/stillness/internal/constants"
	"github.com/julianstephens/stillness/internal/models"
	"github.com/julianstephens/stillness/internal/storage"
	"github.com/julianstephens/stillness/internal/tui/components/challenges"
	"github.com/julianstephens/stillness/internal/tui/components/insights"
	"github.com/julianstephens/stillness/internal/tui/components/timer"
)

// confirmState identifies the pending confirmation overlay, if any.
type confirmState int

const (
	confirmNone confirmState = iota
	confirmEndEarly
	confirmSkipReflection
	confirmRetake
	confirmReset
)

// TickMsg drives the active challenge countdown, one per second. Seq names
// the tick cycle that produced it: pause and resume supersede the current
// cycle, and messages from superseded cycles are dropped. Without this a
// pause/resume inside one second would leave two live cycles, each accruing
// a second per wall-clock second.
type TickMsg struct {
	Seq int
}

func tick(seq int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return TickMsg{Seq: seq}
	})
}

// ReflectionFormModel backs the huh form for the current reflection prompt.
// Held by pointer so the form's value binding survives model copies.
type ReflectionFormModel struct {
	Text string
}

type Model struct {
	store           storage.Provider
	ctrl            *app.Controller
	keys            KeyMap
	help            help.Model
	challengesModel challenges.Model
	timerModel      timer.Model
	insightsModel   insights.Model
	form            *huh.Form
	reflectionForm  *ReflectionFormModel
	confirm         confirmState
	tickSeq         int
	optionCursor    int
	notice          string
	width           int
	height          int
	quitting        bool
}

// tabScreens are the top-level screens reachable via tab navigation.
var tabScreens = []constants.Screen{
	constants.ScreenDashboard,
	constants.ScreenChallenges,
	constants.ScreenInsights,
	constants.ScreenProfile,
}

func NewModel(store storage.Provider) (Model, error) {
	ctrl := app.New(store, nil)
	if err := ctrl.Bootstrap(); err != nil {
		return Model{}, err
	}

	m := Model{
		store:           store,
		ctrl:            ctrl,
		keys:            DefaultKeyMap(),
		help:            help.New(),
		challengesModel: challenges.New(nil, 0, 0),
		timerModel:      timer.New(),
		insightsModel:   insights.New(nil, 0, 0),
	}
	m.refreshChallenges()
	m.refreshInsights()

	return m, nil
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.ctrl.Screen() {
	case constants.ScreenChallengeActive:
		keys = []key.Binding{m.keys.Pause, m.keys.End, m.keys.Quit}
	case constants.ScreenInsights:
		keys = append(keys, m.keys.Filter)
	case constants.ScreenProfile:
		keys = append(keys, m.keys.Retake, m.keys.Reset)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter, m.keys.Back}

	var actions []key.Binding
	switch m.ctrl.Screen() {
	case constants.ScreenChallengeActive:
		actions = []key.Binding{m.keys.Pause, m.keys.End}
	case constants.ScreenInsights:
		actions = []key.Binding{m.keys.Filter}
	case constants.ScreenProfile:
		actions = []key.Binding{m.keys.Font, m.keys.Contrast, m.keys.Retake, m.keys.Reset}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	if sess := m.ctrl.Session(); sess != nil && sess.Phase == models.SessionRunning {
		return tick(m.tickSeq)
	}
	return nil
}

// refreshChallenges rebuilds the challenge list with current unlock gating.
func (m *Model) refreshChallenges() {
	var items []challenges.Item
	for _, ch := range catalog.Challenges() {
		items = append(items, challenges.Item{
			Challenge: ch,
			Locked:    !m.ctrl.Unlocked(ch),
		})
	}
	m.challengesModel.SetItems(items)
}

// refreshInsights re-applies the active tag filter to the insight history.
func (m *Model) refreshInsights() {
	filtered := app.FilterInsights(m.ctrl.State(), m.insightsModel.Filter())
	m.insightsModel.SetInsights(filtered)
}

// reflectionPromptTitles maps the draft field keys onto the wording shown
// above the textbox.
var reflectionPromptTitles = map[string]string{
	"thoughts":   "What thoughts came up during this challenge?",
	"creative":   "Did any creative ideas or solutions emerge?",
	"discomfort": "What discomfort did you notice, and how did it change?",
	"meaning":    "Did you find any meaning or purpose in the stillness?",
}

// startReflectionForm builds the huh form for the current reflection prompt,
// pre-filled with any previously captured answer.
func (m *Model) startReflectionForm() tea.Cmd {
	m.reflectionForm = &ReflectionFormModel{Text: m.ctrl.DraftField()}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title(reflectionPromptTitles[m.ctrl.CurrentPrompt()]).
				Description("enter: continue · ctrl+p: previous prompt · esc: skip").
				CharLimit(2000).
				Value(&m.reflectionForm.Text),
		),
	)
	return m.form.Init()
}
