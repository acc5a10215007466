package models

import "time"

// Tier groups challenges by intended duration and difficulty.
type Tier string

const (
	TierMicro Tier = "micro"
	TierMeso  Tier = "meso"
	TierMacro Tier = "macro"
)

// Challenge is a static catalog entry. Catalog data is defined at build time
// and immutable; in particular UnlockLevel never changes, so the set of
// unlocked challenges only grows as the user's level grows.
type Challenge struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    int      `json:"duration"` // minutes
	Icon        string   `json:"icon"`
	Tips        []string `json:"tips"`
	UnlockLevel int      `json:"unlock_level"`
	Tier        Tier     `json:"tier"`
}

// SessionPhase is the phase of an active challenge session.
type SessionPhase string

const (
	SessionRunning SessionPhase = "running"
	SessionPaused  SessionPhase = "paused"
)

// ChallengeSession is one timed attempt at a challenge. At most one exists at
// a time; it lives only between start and complete/abort and is never
// persisted.
type ChallengeSession struct {
	ID                     string       `json:"id"`
	ChallengeID            string       `json:"challenge_id"`
	StartTime              time.Time    `json:"start_time"`
	PlannedDurationSeconds int          `json:"planned_duration_seconds"`
	ElapsedSeconds         int          `json:"elapsed_seconds"`
	Phase                  SessionPhase `json:"phase"`
}

// RemainingSeconds returns the countdown remainder, floored at zero.
func (s ChallengeSession) RemainingSeconds() int {
	r := s.PlannedDurationSeconds - s.ElapsedSeconds
	if r < 0 {
		return 0
	}
	return r
}

// CompletedChallenge is the append-only history record derived from a
// finished session. Records are never mutated or removed except by full
// reset.
type CompletedChallenge struct {
	ChallengeID     string    `json:"challenge_id"`
	DurationMinutes int       `json:"duration_minutes"` // wall-clock, floored
	CompletedAt     time.Time `json:"completed_at"`
	CompletedFully  bool      `json:"completed_fully"`
}
