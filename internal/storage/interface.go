package storage

import "github.com/julianstephens/stillness/internal/models"

// Provider persists the full application state aggregate. Implementations are
// selected by config file extension in main: ".json" maps to the JSON store,
// anything else to SQLite.
//
// Load never surfaces malformed state to the caller: a missing or unparseable
// store yields the default aggregate. Save is invoked after every mutating
// operation; callers treat failures as best-effort (log and continue).
type Provider interface {
	// Lifecycle
	Init() error
	Load() (models.AppState, error)
	Close() error

	// State
	Save(models.AppState) error
	Reset() error

	// Utils
	GetConfigPath() string
}
