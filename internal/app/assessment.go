package app

import (
	"errors"
	"fmt"
	"math"

	"github.com/julianstephens/stillness/internal/catalog"
	"github.com/julianstephens/stillness/internal/constants"
	"github.com/julianstephens/stillness/internal/models"
)

// ErrUnanswered is returned when the user tries to advance past an unanswered
// question. It is a validation failure, not a fatal error: the caller blocks
// the transition and prompts the user.
var ErrUnanswered = errors.New("please select an option")

// StartAssessment resets the assessment flow and activates the assessment
// screen.
func (c *Controller) StartAssessment() {
	c.assessmentIndex = 0
	c.answers = make([]int, catalog.QuestionCount())
	for i := range c.answers {
		c.answers[i] = -1
	}
	c.GoTo(constants.ScreenAssessment)
}

// RetakeAssessment restarts the flow after confirmation. Re-taking re-runs
// scoring only; the profile's start date is set once and never touched again.
func (c *Controller) RetakeAssessment() bool {
	if !c.confirmed("Retake the assessment? This will update your boredom profile.") {
		return false
	}
	c.StartAssessment()
	return true
}

// AssessmentIndex returns the 0-based index of the current question.
func (c *Controller) AssessmentIndex() int {
	return c.assessmentIndex
}

// CurrentQuestion returns the question at the current index.
func (c *Controller) CurrentQuestion() catalog.Question {
	return catalog.Questions()[c.assessmentIndex]
}

// SelectedOption returns the recorded answer for the current question, or -1.
func (c *Controller) SelectedOption() int {
	if c.answers == nil {
		return -1
	}
	return c.answers[c.assessmentIndex]
}

// SelectOption records an answer for the current question. Answers are
// overwritable until the flow advances past the last question.
func (c *Controller) SelectOption(option int) error {
	q := c.CurrentQuestion()
	if option < 0 || option >= len(q.Options) {
		return fmt.Errorf("option out of range: %d", option)
	}
	c.answers[c.assessmentIndex] = option
	c.persist()
	return nil
}

// NextQuestion advances the flow. On the last question it triggers scoring,
// initializes the profile on first completion, and lands on the dashboard.
func (c *Controller) NextQuestion() error {
	if c.answers[c.assessmentIndex] < 0 {
		return ErrUnanswered
	}

	if c.assessmentIndex == catalog.QuestionCount()-1 {
		c.state.Assessment = CalculateAssessmentResults(c.answers)
		if c.state.Profile.StartDate == nil {
			now := c.now()
			c.state.Profile.StartDate = &now
			c.state.Profile.Level = 1
			c.state.Profile.Streak = 1
		}
		c.GoTo(constants.ScreenDashboard)
		return nil
	}

	c.assessmentIndex++
	c.persist()
	return nil
}

// PreviousQuestion steps back one question, stopping at the first.
func (c *Controller) PreviousQuestion() {
	if c.assessmentIndex > 0 {
		c.assessmentIndex--
		c.persist()
	}
}

// CalculateAssessmentResults scores a complete answer sequence. For each
// category the selected option scores are averaged and scaled by 25, which
// maps option scores 1-4 onto roughly [25,100]. The function is a pure,
// deterministic function of the answers.
func CalculateAssessmentResults(answers []int) models.AssessmentResult {
	sums := map[catalog.Category]int{}
	counts := map[catalog.Category]int{}

	for i, q := range catalog.Questions() {
		if i >= len(answers) || answers[i] < 0 || answers[i] >= len(q.Options) {
			continue
		}
		sums[q.Category] += q.Options[answers[i]].Score
		counts[q.Category]++
	}

	score := func(cat catalog.Category) int {
		if counts[cat] == 0 {
			return 0
		}
		return int(math.Round(float64(sums[cat]) / float64(counts[cat]) * constants.AssessmentScale))
	}

	return models.AssessmentResult{
		Dependency: score(catalog.CategoryDependency),
		Proneness:  score(catalog.CategoryProneness),
		Meaning:    score(catalog.CategoryMeaning),
	}
}
