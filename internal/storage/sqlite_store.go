package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/stillness/internal/logger"
	"github.com/julianstephens/stillness/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS meta (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS profile (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	level INTEGER NOT NULL,
	streak INTEGER NOT NULL,
	total_boredom_time INTEGER NOT NULL,
	total_insights INTEGER NOT NULL,
	total_sessions INTEGER NOT NULL,
	longest_session INTEGER NOT NULL,
	start_date TEXT,
	last_session_date TEXT
);
CREATE TABLE IF NOT EXISTS assessment (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	dependency INTEGER NOT NULL,
	proneness INTEGER NOT NULL,
	meaning INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS sessions (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	challenge_id TEXT NOT NULL,
	duration_minutes INTEGER NOT NULL,
	completed_at TEXT NOT NULL,
	completed_fully INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS insights (
	id INTEGER PRIMARY KEY,
	challenge_id TEXT NOT NULL,
	challenge_title TEXT NOT NULL,
	date TEXT NOT NULL,
	thoughts TEXT NOT NULL,
	creative TEXT NOT NULL,
	discomfort TEXT NOT NULL,
	meaning TEXT NOT NULL,
	tags TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS reflection_draft (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	thoughts TEXT NOT NULL,
	creative TEXT NOT NULL,
	discomfort TEXT NOT NULL,
	meaning TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS preferences (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	font_size TEXT NOT NULL,
	high_contrast INTEGER NOT NULL,
	daily_reminder INTEGER NOT NULL,
	achievements INTEGER NOT NULL,
	reflection_reminders INTEGER NOT NULL
);
`

// SQLiteStore persists the aggregate into a SQLite database. It stores the
// same logical document as the JSON store: singleton rows for the profile,
// assessment, draft and preferences, plus append-only session and insight
// tables.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	if err := s.open(); err != nil {
		return err
	}

	return s.Save(models.DefaultState())
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if _, err := db.Exec(
		"INSERT INTO meta (key, value) VALUES ('schema_version', ?) ON CONFLICT(key) DO NOTHING",
		fmt.Sprintf("%d", models.StateVersion),
	); err != nil {
		db.Close()
		return fmt.Errorf("failed to record schema version: %w", err)
	}

	s.db = db
	return nil
}

// Load reads the aggregate. Missing rows (fresh database) and unreadable
// databases both yield the default state; the latter is logged.
func (s *SQLiteStore) Load() (models.AppState, error) {
	state := models.DefaultState()

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return state, nil
	}

	if err := s.open(); err != nil {
		logger.Warn("Persisted state is unreadable, falling back to defaults", "path", s.path, "error", err)
		return models.DefaultState(), nil
	}

	if err := s.loadInto(&state); err != nil {
		logger.Warn("Persisted state is malformed, falling back to defaults", "path", s.path, "error", err)
		return models.DefaultState(), nil
	}

	return state, nil
}

func (s *SQLiteStore) loadInto(state *models.AppState) error {
	var startDate, lastSession sql.NullString
	err := s.db.QueryRow(`SELECT level, streak, total_boredom_time, total_insights,
		total_sessions, longest_session, start_date, last_session_date
		FROM profile WHERE id = 1`).Scan(
		&state.Profile.Level, &state.Profile.Streak, &state.Profile.TotalBoredomTime,
		&state.Profile.TotalInsights, &state.Profile.TotalSessions,
		&state.Profile.LongestSession, &startDate, &lastSession,
	)
	if err != nil && err != sql.ErrNoRows {
		return err
	}
	if t, ok := parseTime(startDate); ok {
		state.Profile.StartDate = &t
	}
	if t, ok := parseTime(lastSession); ok {
		state.Profile.LastSessionDate = &t
	}

	err = s.db.QueryRow("SELECT dependency, proneness, meaning FROM assessment WHERE id = 1").Scan(
		&state.Assessment.Dependency, &state.Assessment.Proneness, &state.Assessment.Meaning,
	)
	if err != nil && err != sql.ErrNoRows {
		return err
	}

	rows, err := s.db.Query("SELECT challenge_id, duration_minutes, completed_at, completed_fully FROM sessions ORDER BY seq")
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var rec models.CompletedChallenge
		var completedAt string
		if err := rows.Scan(&rec.ChallengeID, &rec.DurationMinutes, &completedAt, &rec.CompletedFully); err != nil {
			return err
		}
		if t, err := time.Parse(time.RFC3339, completedAt); err == nil {
			rec.CompletedAt = t
		}
		state.Sessions = append(state.Sessions, rec)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	irows, err := s.db.Query(`SELECT id, challenge_id, challenge_title, date,
		thoughts, creative, discomfort, meaning, tags FROM insights ORDER BY id`)
	if err != nil {
		return err
	}
	defer irows.Close()
	for irows.Next() {
		var in models.Insight
		var date, tags string
		if err := irows.Scan(&in.ID, &in.ChallengeID, &in.ChallengeTitle, &date,
			&in.Thoughts, &in.Creative, &in.Discomfort, &in.Meaning, &tags); err != nil {
			return err
		}
		if t, err := time.Parse(time.RFC3339, date); err == nil {
			in.Date = t
		}
		if err := json.Unmarshal([]byte(tags), &in.Tags); err != nil {
			return err
		}
		state.Insights = append(state.Insights, in)
	}
	if err := irows.Err(); err != nil {
		return err
	}

	err = s.db.QueryRow("SELECT thoughts, creative, discomfort, meaning FROM reflection_draft WHERE id = 1").Scan(
		&state.Draft.Thoughts, &state.Draft.Creative, &state.Draft.Discomfort, &state.Draft.Meaning,
	)
	if err != nil && err != sql.ErrNoRows {
		return err
	}

	var highContrast, dailyReminder, achievements, reflectionReminders bool
	err = s.db.QueryRow(`SELECT font_size, high_contrast, daily_reminder, achievements,
		reflection_reminders FROM preferences WHERE id = 1`).Scan(
		&state.Preferences.FontSize, &highContrast, &dailyReminder, &achievements, &reflectionReminders,
	)
	if err != nil && err != sql.ErrNoRows {
		return err
	}
	if err == nil {
		state.Preferences.HighContrast = highContrast
		state.Preferences.Notifications = models.NotificationPrefs{
			DailyReminder:       dailyReminder,
			Achievements:        achievements,
			ReflectionReminders: reflectionReminders,
		}
	}

	return nil
}

// Save writes the full aggregate in one transaction. The session and insight
// tables are rewritten wholesale; both histories are small and append-only.
func (s *SQLiteStore) Save(state models.AppState) error {
	if err := s.open(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO profile (id, level, streak, total_boredom_time,
		total_insights, total_sessions, longest_session, start_date, last_session_date)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			level = excluded.level,
			streak = excluded.streak,
			total_boredom_time = excluded.total_boredom_time,
			total_insights = excluded.total_insights,
			total_sessions = excluded.total_sessions,
			longest_session = excluded.longest_session,
			start_date = excluded.start_date,
			last_session_date = excluded.last_session_date`,
		state.Profile.Level, state.Profile.Streak, state.Profile.TotalBoredomTime,
		state.Profile.TotalInsights, state.Profile.TotalSessions, state.Profile.LongestSession,
		formatTime(state.Profile.StartDate), formatTime(state.Profile.LastSessionDate),
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	_, err = tx.Exec(`INSERT INTO assessment (id, dependency, proneness, meaning)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			dependency = excluded.dependency,
			proneness = excluded.proneness,
			meaning = excluded.meaning`,
		state.Assessment.Dependency, state.Assessment.Proneness, state.Assessment.Meaning,
	)
	if err != nil {
		return fmt.Errorf("failed to save assessment: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("failed to clear sessions: %w", err)
	}
	for _, rec := range state.Sessions {
		_, err := tx.Exec(`INSERT INTO sessions (challenge_id, duration_minutes, completed_at, completed_fully)
			VALUES (?, ?, ?, ?)`,
			rec.ChallengeID, rec.DurationMinutes, rec.CompletedAt.UTC().Format(time.RFC3339), rec.CompletedFully,
		)
		if err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}
	}

	if _, err := tx.Exec("DELETE FROM insights"); err != nil {
		return fmt.Errorf("failed to clear insights: %w", err)
	}
	for _, in := range state.Insights {
		tags, err := json.Marshal(in.Tags)
		if err != nil {
			return fmt.Errorf("failed to serialize tags: %w", err)
		}
		_, err = tx.Exec(`INSERT INTO insights (id, challenge_id, challenge_title, date,
			thoughts, creative, discomfort, meaning, tags)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			in.ID, in.ChallengeID, in.ChallengeTitle, in.Date.UTC().Format(time.RFC3339),
			in.Thoughts, in.Creative, in.Discomfort, in.Meaning, string(tags),
		)
		if err != nil {
			return fmt.Errorf("failed to save insight: %w", err)
		}
	}

	_, err = tx.Exec(`INSERT INTO reflection_draft (id, thoughts, creative, discomfort, meaning)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			thoughts = excluded.thoughts,
			creative = excluded.creative,
			discomfort = excluded.discomfort,
			meaning = excluded.meaning`,
		state.Draft.Thoughts, state.Draft.Creative, state.Draft.Discomfort, state.Draft.Meaning,
	)
	if err != nil {
		return fmt.Errorf("failed to save reflection draft: %w", err)
	}

	_, err = tx.Exec(`INSERT INTO preferences (id, font_size, high_contrast, daily_reminder,
		achievements, reflection_reminders)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			font_size = excluded.font_size,
			high_contrast = excluded.high_contrast,
			daily_reminder = excluded.daily_reminder,
			achievements = excluded.achievements,
			reflection_reminders = excluded.reflection_reminders`,
		state.Preferences.FontSize, state.Preferences.HighContrast,
		state.Preferences.Notifications.DailyReminder,
		state.Preferences.Notifications.Achievements,
		state.Preferences.Notifications.ReflectionReminders,
	)
	if err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	return tx.Commit()
}

// Reset clears every table while keeping the schema in place.
func (s *SQLiteStore) Reset() error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil
	}
	if err := s.open(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"profile", "assessment", "sessions", "insights", "reflection_draft", "preferences"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to reset %s: %w", table, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func formatTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

func parseTime(v sql.NullString) (time.Time, bool) {
	if !v.Valid || v.String == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, v.String)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
