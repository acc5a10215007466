package tui

import (
	"errors"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/stillness/internal/app"
	"github.com/julianstephens/stillness/internal/backup"
	"github.com/julianstephens/stillness/internal/constants"
	"github.com/julianstephens/stillness/internal/logger"
	"github.com/julianstephens/stillness/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.challengesModel.SetSize(msg.Width, msg.Height-6)
		m.timerModel.SetSize(msg.Width, msg.Height-6)
		m.insightsModel.SetSize(msg.Width, msg.Height-6)
		return m, nil

	case TickMsg:
		return m.updateTick(msg)

	case tea.KeyMsg:
		if m.confirm != confirmNone {
			return m.updateConfirm(msg)
		}
		if m.ctrl.Screen() == constants.ScreenReflection {
			return m.updateReflection(msg)
		}
		return m.updateKeys(msg)
	}

	// Everything else (cursor blinks and the like) belongs to the form.
	if m.ctrl.Screen() == constants.ScreenReflection && m.form != nil {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m Model) updateTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.tickSeq {
		// From a cycle superseded by pause or resume; let it die.
		return m, nil
	}
	sess := m.ctrl.Session()
	if sess == nil || sess.Phase != models.SessionRunning {
		return m, nil
	}
	if m.ctrl.Tick() {
		m.refreshChallenges()
		return m, m.startReflectionForm()
	}
	return m, tick(m.tickSeq)
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		pending := m.confirm
		m.confirm = confirmNone
		switch pending {
		case confirmEndEarly:
			m.ctrl.EndChallengeEarly()
			m.refreshChallenges()
			return m, m.startReflectionForm()
		case confirmSkipReflection:
			m.ctrl.SkipReflection()
			m.form = nil
			m.refreshInsights()
		case confirmRetake:
			m.ctrl.RetakeAssessment()
			m.optionCursor = 0
		case confirmReset:
			// Snapshot the state file first so an accidental reset
			// stays recoverable, as the CLI reset does.
			if _, err := backup.NewManager(m.store.GetConfigPath()).CreateBackup(); err != nil {
				logger.Warn("Automatic backup failed", "error", err)
			}
			m.ctrl.ResetProgress()
			m.refreshChallenges()
			m.refreshInsights()
		}
	case "n", "N", "esc":
		m.confirm = confirmNone
	}
	return m, nil
}

func (m Model) updateReflection(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.confirm = confirmSkipReflection
		return m, nil
	case "ctrl+p":
		// Step back one prompt, keeping whatever was typed so far.
		m.ctrl.SetDraftField(m.reflectionForm.Text)
		m.ctrl.PreviousPrompt()
		return m, m.startReflectionForm()
	}
	return m.updateForm(msg)
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		done := m.ctrl.NextPrompt(m.reflectionForm.Text)
		if done {
			m.form = nil
			m.refreshInsights()
			if m.ctrl.LeveledUp() {
				m.notice = "Level up! New challenges unlocked."
				m.refreshChallenges()
			}
			return m, nil
		}
		return m, m.startReflectionForm()
	}

	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.ctrl.Screen() == constants.ScreenChallengeActive {
			// Don't let a stray q abandon a session silently.
			m.confirm = confirmEndEarly
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.ctrl.Screen() {
	case constants.ScreenOnboarding:
		return m.updateOnboarding(msg)
	case constants.ScreenAssessment:
		return m.updateAssessment(msg)
	case constants.ScreenChallengeActive:
		return m.updateChallengeActive(msg)
	default:
		return m.updateTabbed(msg)
	}
}

func (m Model) updateOnboarding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Enter) {
		m.ctrl.StartAssessment()
		m.optionCursor = 0
	}
	return m, nil
}

func (m Model) updateAssessment(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	q := m.ctrl.CurrentQuestion()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.optionCursor > 0 {
			m.optionCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.optionCursor < len(q.Options)-1 {
			m.optionCursor++
		}
	case key.Matches(msg, m.keys.Enter):
		if err := m.ctrl.SelectOption(m.optionCursor); err != nil {
			m.notice = err.Error()
			return m, nil
		}
		if err := m.ctrl.NextQuestion(); err != nil {
			if errors.Is(err, app.ErrUnanswered) {
				m.notice = "Please select an option to continue."
			}
			return m, nil
		}
		m.optionCursor = m.cursorForCurrent()
		if m.ctrl.Screen() == constants.ScreenDashboard {
			m.refreshChallenges()
		}
	case key.Matches(msg, m.keys.Back):
		m.ctrl.PreviousQuestion()
		m.optionCursor = m.cursorForCurrent()
	}
	return m, nil
}

// cursorForCurrent seeds the option cursor from any previously selected answer.
func (m Model) cursorForCurrent() int {
	if m.ctrl.Screen() != constants.ScreenAssessment {
		return 0
	}
	if sel := m.ctrl.SelectedOption(); sel >= 0 {
		return sel
	}
	return 0
}

func (m Model) updateChallengeActive(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Pause):
		sess := m.ctrl.Session()
		if sess == nil {
			return m, nil
		}
		if sess.Phase == models.SessionRunning {
			m.ctrl.PauseChallenge()
			m.tickSeq++
			return m, nil
		}
		m.ctrl.ResumeChallenge()
		m.tickSeq++
		return m, tick(m.tickSeq)
	case key.Matches(msg, m.keys.End):
		m.confirm = confirmEndEarly
	}
	return m, nil
}

func (m Model) updateTabbed(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Tab):
		m.ctrl.GoTo(nextTab(m.ctrl.Screen(), 1))
		return m, nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.ctrl.GoTo(nextTab(m.ctrl.Screen(), -1))
		return m, nil
	}

	switch m.ctrl.Screen() {
	case constants.ScreenDashboard:
		if key.Matches(msg, m.keys.Enter) {
			m.ctrl.GoTo(constants.ScreenChallenges)
		}
	case constants.ScreenChallenges:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.challengesModel.MoveUp()
		case key.Matches(msg, m.keys.Down):
			m.challengesModel.MoveDown()
		case key.Matches(msg, m.keys.Enter):
			item, ok := m.challengesModel.Selected()
			if !ok {
				return m, nil
			}
			if err := m.ctrl.SelectChallenge(item.Challenge.ID); err != nil {
				if errors.Is(err, app.ErrChallengeLocked) {
					m.notice = lockedNotice(item.Challenge)
				} else {
					m.notice = err.Error()
				}
				return m, nil
			}
			m.tickSeq++
			return m, tick(m.tickSeq)
		}
	case constants.ScreenInsights:
		if key.Matches(msg, m.keys.Filter) {
			m.insightsModel.CycleFilter()
			m.refreshInsights()
		}
	case constants.ScreenProfile:
		switch {
		case key.Matches(msg, m.keys.Font):
			m.ctrl.CycleFontSize()
		case key.Matches(msg, m.keys.Contrast):
			m.ctrl.ToggleHighContrast()
		case key.Matches(msg, m.keys.Retake):
			m.confirm = confirmRetake
		case key.Matches(msg, m.keys.Reset):
			m.confirm = confirmReset
		default:
			switch msg.String() {
			case "n":
				m.ctrl.ToggleDailyReminder()
			case "a":
				m.ctrl.ToggleAchievements()
			case "m":
				m.ctrl.ToggleReflectionReminders()
			}
		}
	}

	return m, nil
}

func nextTab(current constants.Screen, dir int) constants.Screen {
	for i, s := range tabScreens {
		if s == current {
			return tabScreens[(i+dir+len(tabScreens))%len(tabScreens)]
		}
	}
	return tabScreens[0]
}

func lockedNotice(ch models.Challenge) string {
	return "Locked: " + ch.Title + " unlocks at level " + strconv.Itoa(ch.UnlockLevel)
}
