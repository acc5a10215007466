package constants

// Screen identifies one of the application screens. Exactly one screen is
// active at a time; see the navigation controller in internal/app.
type Screen string

const (
	AppName           = "stillness"
	Version           = "v1.0.0"
	DefaultConfigPath = "~/.config/stillness/stillness.db"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Screens
	ScreenLoading         Screen = "loading"
	ScreenOnboarding      Screen = "onboarding"
	ScreenAssessment      Screen = "assessment"
	ScreenDashboard       Screen = "dashboard"
	ScreenChallenges      Screen = "challenges"
	ScreenChallengeActive Screen = "challenge-active"
	ScreenReflection      Screen = "reflection"
	ScreenInsights        Screen = "insights"
	ScreenProfile         Screen = "profile"

	// Assessment scoring: category averages are scaled by this factor so that
	// option scores 1-4 map onto roughly [25,100].
	AssessmentScale = 25

	// Level-up: sessions required to leave level L is LevelUpFactor * L.
	LevelUpFactor = 3

	// Streak grace window in days. A gap of 0 or 1 days extends the streak;
	// anything larger resets it to 1.
	StreakGraceDays = 1

	// TagMinLength is the trimmed character count a reflection field must
	// exceed to contribute its tag to an insight.
	TagMinLength = 20

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "stillness-"

	// Insight tags
	TagCreative = "creative"
	TagMeaning  = "meaning"
	TagPersonal = "personal"
	TagGeneral  = "general"
)

// ReflectionPrompts is the fixed prompt order of the reflection wizard.
var ReflectionPrompts = [4]string{"thoughts", "creative", "discomfort", "meaning"}
