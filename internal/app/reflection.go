package app

import (
	"strings"

	"github.com/julianstephens/stillness/internal/constants"
	"github.com/julianstephens/stillness/internal/models"
)

// startReflection enters the four-step reflection wizard with an empty draft.
// Only challenge completion calls this, which keeps the reflection screen's
// "just-completed session" precondition in the flow rather than the
// navigation controller.
func (c *Controller) startReflection() {
	c.promptIndex = 0
	c.state.Draft = models.ReflectionDraft{}
	c.GoTo(constants.ScreenReflection)
}

// PromptIndex returns the current reflection prompt index (0-3).
func (c *Controller) PromptIndex() int {
	return c.promptIndex
}

// CurrentPrompt returns the name of the current reflection prompt.
func (c *Controller) CurrentPrompt() string {
	return constants.ReflectionPrompts[c.promptIndex]
}

// DraftField returns the draft text for the current prompt.
func (c *Controller) DraftField() string {
	return c.state.Draft.Field(c.promptIndex)
}

// SetDraftField stores text into the draft field for the current prompt and
// persists it, so an interrupted reflection survives a restart.
func (c *Controller) SetDraftField(text string) {
	c.state.Draft.SetField(c.promptIndex, text)
	c.persist()
}

// NextPrompt captures the current textbox value and advances the wizard. On
// the last prompt it synthesizes the insight and returns to the dashboard.
// Returns true when the flow finished.
func (c *Controller) NextPrompt(text string) bool {
	c.state.Draft.SetField(c.promptIndex, text)

	if c.promptIndex == len(constants.ReflectionPrompts)-1 {
		c.saveReflection()
		return true
	}

	c.promptIndex++
	c.persist()
	return false
}

// PreviousPrompt steps back one prompt, stopping at the first.
func (c *Controller) PreviousPrompt() {
	if c.promptIndex > 0 {
		c.promptIndex--
		c.persist()
	}
}

// SkipReflection abandons the draft after confirmation: no insight is
// created. Reports whether the skip happened.
func (c *Controller) SkipReflection() bool {
	if !c.confirmed("Skip reflection? You can still add insights later from the Insights tab.") {
		return false
	}
	c.state.Draft = models.ReflectionDraft{}
	c.activeChallenge = nil
	c.GoTo(constants.ScreenDashboard)
	return true
}

// saveReflection synthesizes the draft into an append-only insight and
// returns to the dashboard.
func (c *Controller) saveReflection() {
	now := c.now()

	// Insight IDs are unix milliseconds; bump to keep them strictly
	// increasing when two insights land in the same millisecond.
	id := now.UnixMilli()
	if id <= c.lastInsightID {
		id = c.lastInsightID + 1
	}
	c.lastInsightID = id

	insight := models.Insight{
		ID:         id,
		Date:       now,
		Thoughts:   c.state.Draft.Thoughts,
		Creative:   c.state.Draft.Creative,
		Discomfort: c.state.Draft.Discomfort,
		Meaning:    c.state.Draft.Meaning,
		Tags:       DetermineTags(c.state.Draft),
	}
	if c.activeChallenge != nil {
		insight.ChallengeID = c.activeChallenge.ID
		insight.ChallengeTitle = c.activeChallenge.Title
	}

	c.state.Insights = append(c.state.Insights, insight)
	c.state.Profile.TotalInsights = len(c.state.Insights)
	c.state.Draft = models.ReflectionDraft{}
	c.activeChallenge = nil

	c.GoTo(constants.ScreenDashboard)
}

// DetermineTags derives insight tags from the draft: creative, meaning and
// thoughts each contribute a tag when their trimmed length exceeds the
// threshold; an unqualified draft gets the general tag.
func DetermineTags(d models.ReflectionDraft) []string {
	var tags []string

	if len(strings.TrimSpace(d.Creative)) > constants.TagMinLength {
		tags = append(tags, constants.TagCreative)
	}
	if len(strings.TrimSpace(d.Meaning)) > constants.TagMinLength {
		tags = append(tags, constants.TagMeaning)
	}
	if len(strings.TrimSpace(d.Thoughts)) > constants.TagMinLength {
		tags = append(tags, constants.TagPersonal)
	}

	if len(tags) == 0 {
		return []string{constants.TagGeneral}
	}
	return tags
}
