package app

import (
	"time"

	"github.com/julianstephens/stillness/internal/constants"
	"github.com/julianstephens/stillness/internal/logger"
	"github.com/julianstephens/stillness/internal/models"
	"github.com/julianstephens/stillness/internal/storage"
)

// Confirmer is the confirmation capability for irreversible actions (ending a
// challenge early, skipping a reflection, retaking the assessment, resetting
// progress). The presentation layer provides the concrete implementation; a
// nil Confirmer accepts everything.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Controller owns the application state aggregate and applies every state
// transition. Flows mutate the aggregate through controller methods only;
// each mutating operation persists the full aggregate best-effort before
// returning. The presentation layer reads the resulting state and renders it.
type Controller struct {
	store   storage.Provider
	confirm Confirmer
	clock   func() time.Time

	state  models.AppState
	screen constants.Screen

	// assessment flow
	assessmentIndex int
	answers         []int // selected option index per question, -1 = unanswered

	// challenge flow
	session         *models.ChallengeSession
	activeChallenge *models.Challenge
	lastCompleted   *models.CompletedChallenge
	leveledUp       bool

	// reflection flow
	promptIndex   int
	lastInsightID int64
}

// New creates a controller bound to the given store. The confirmer may be
// nil, in which case all confirmations are treated as accepted.
func New(store storage.Provider, confirm Confirmer) *Controller {
	return &Controller{
		store:   store,
		confirm: confirm,
		clock:   time.Now,
		screen:  constants.ScreenLoading,
	}
}

// Bootstrap loads persisted state and routes to the initial screen. The
// active screen is never restored from persistence: a fresh profile lands on
// onboarding, everything else on the dashboard.
func (c *Controller) Bootstrap() error {
	state, err := c.store.Load()
	if err != nil {
		return err
	}
	c.state = state

	for _, in := range c.state.Insights {
		if in.ID > c.lastInsightID {
			c.lastInsightID = in.ID
		}
	}

	c.route()
	return nil
}

// route applies the startup router's single rule.
func (c *Controller) route() {
	if c.state.Profile.StartDate == nil {
		c.screen = constants.ScreenOnboarding
	} else {
		c.screen = constants.ScreenDashboard
	}
}

// GoTo activates the named screen. The transition itself is total; entry
// preconditions for challenge-active and reflection are enforced by the
// challenge and reflection flows, which are the only callers for those
// screens. Every transition persists the aggregate.
func (c *Controller) GoTo(screen constants.Screen) {
	c.screen = screen
	c.persist()
}

// Screen returns the currently active screen.
func (c *Controller) Screen() constants.Screen {
	return c.screen
}

// State returns a copy of the current aggregate.
func (c *Controller) State() models.AppState {
	return c.state
}

// LeveledUp reports whether the most recent completion raised the level, and
// clears the flag.
func (c *Controller) LeveledUp() bool {
	up := c.leveledUp
	c.leveledUp = false
	return up
}

// ResetProgress wipes all progress after confirmation and returns to
// onboarding. Reports whether the reset happened.
func (c *Controller) ResetProgress() bool {
	if !c.confirmed("Are you sure? This will delete all your progress and cannot be undone.") {
		return false
	}

	if err := c.store.Reset(); err != nil {
		logger.Error("Failed to reset storage", "error", err)
	}
	c.state = models.DefaultState()
	c.session = nil
	c.activeChallenge = nil
	c.lastCompleted = nil
	c.lastInsightID = 0
	c.route()
	return true
}

// CycleFontSize advances the font size preference to the next size.
func (c *Controller) CycleFontSize() string {
	sizes := models.FontSizes
	next := sizes[0]
	for i, s := range sizes {
		if s == c.state.Preferences.FontSize {
			next = sizes[(i+1)%len(sizes)]
			break
		}
	}
	c.state.Preferences.FontSize = next
	c.persist()
	return next
}

// ToggleHighContrast flips the high-contrast preference.
func (c *Controller) ToggleHighContrast() bool {
	c.state.Preferences.HighContrast = !c.state.Preferences.HighContrast
	c.persist()
	return c.state.Preferences.HighContrast
}

// ToggleDailyReminder flips the daily reminder notification preference.
func (c *Controller) ToggleDailyReminder() bool {
	c.state.Preferences.Notifications.DailyReminder = !c.state.Preferences.Notifications.DailyReminder
	c.persist()
	return c.state.Preferences.Notifications.DailyReminder
}

// ToggleAchievements flips the achievement notification preference.
func (c *Controller) ToggleAchievements() bool {
	c.state.Preferences.Notifications.Achievements = !c.state.Preferences.Notifications.Achievements
	c.persist()
	return c.state.Preferences.Notifications.Achievements
}

// ToggleReflectionReminders flips the reflection reminder preference.
func (c *Controller) ToggleReflectionReminders() bool {
	c.state.Preferences.Notifications.ReflectionReminders = !c.state.Preferences.Notifications.ReflectionReminders
	c.persist()
	return c.state.Preferences.Notifications.ReflectionReminders
}

func (c *Controller) confirmed(prompt string) bool {
	if c.confirm == nil {
		return true
	}
	return c.confirm.Confirm(prompt)
}

// persist writes the aggregate best-effort. Failures are logged and
// swallowed; the in-memory state stays authoritative for the session.
func (c *Controller) persist() {
	if err := c.store.Save(c.state); err != nil {
		logger.Error("Failed to persist state", "error", err)
	}
}

func (c *Controller) now() time.Time {
	return c.clock()
}
