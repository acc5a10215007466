package catalog

// Category tags an assessment question with the score it contributes to.
type Category string

const (
	CategoryDependency Category = "dependency"
	CategoryProneness  Category = "proneness"
	CategoryMeaning    Category = "meaning"
)

// Option is one scored answer to an assessment question.
type Option struct {
	Text  string `json:"text"`
	Score int    `json:"score"` // 1-4
}

// Question is one entry in the fixed onboarding assessment.
type Question struct {
	Text     string   `json:"text"`
	Options  []Option `json:"options"`
	Category Category `json:"category"`
}

var questions = []Question{
	{
		Text: "How often do you check your phone in a typical hour?",
		Options: []Option{
			{Text: "0-2 times", Score: 1},
			{Text: "3-5 times", Score: 2},
			{Text: "6-10 times", Score: 3},
			{Text: "More than 10 times", Score: 4},
		},
		Category: CategoryDependency,
	},
	{
		Text: "When you have 5 free minutes, what do you usually do?",
		Options: []Option{
			{Text: "Let my mind wander", Score: 1},
			{Text: "Think about tasks", Score: 2},
			{Text: "Look for something to do", Score: 3},
			{Text: "Immediately grab my phone", Score: 4},
		},
		Category: CategoryProneness,
	},
	{
		Text: "How clear is your sense of life purpose?",
		Options: []Option{
			{Text: "Very clear - I know what matters", Score: 4},
			{Text: "Somewhat clear", Score: 3},
			{Text: "Unclear - I'm searching", Score: 2},
			{Text: "Very unclear", Score: 1},
		},
		Category: CategoryMeaning,
	},
	{
		Text: "How uncomfortable do you feel when you can't use your phone?",
		Options: []Option{
			{Text: "Not uncomfortable at all", Score: 1},
			{Text: "Slightly uncomfortable", Score: 2},
			{Text: "Quite uncomfortable", Score: 3},
			{Text: "Very anxious", Score: 4},
		},
		Category: CategoryDependency,
	},
	{
		Text: "When was the last time you felt truly bored?",
		Options: []Option{
			{Text: "Today or yesterday", Score: 4},
			{Text: "This week", Score: 3},
			{Text: "This month", Score: 2},
			{Text: "Can't remember", Score: 1},
		},
		Category: CategoryProneness,
	},
	{
		Text: "How often do you reflect on life's big questions?",
		Options: []Option{
			{Text: "Daily", Score: 4},
			{Text: "Weekly", Score: 3},
			{Text: "Rarely", Score: 2},
			{Text: "Almost never", Score: 1},
		},
		Category: CategoryMeaning,
	},
	{
		Text: "Can you sit in a quiet room for 15 minutes doing nothing?",
		Options: []Option{
			{Text: "Easily", Score: 1},
			{Text: "With some effort", Score: 2},
			{Text: "Very difficult", Score: 3},
			{Text: "Nearly impossible", Score: 4},
		},
		Category: CategoryProneness,
	},
	{
		Text: "Do you feel your life has meaning?",
		Options: []Option{
			{Text: "Yes, strongly", Score: 4},
			{Text: "Yes, somewhat", Score: 3},
			{Text: "Not really", Score: 2},
			{Text: "No", Score: 1},
		},
		Category: CategoryMeaning,
	},
}

// Questions returns the ordered assessment question sequence.
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}

// QuestionCount returns the number of assessment questions.
func QuestionCount() int {
	return len(questions)
}
