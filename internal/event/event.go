// Package event defines the submission event model consumed by the
// activity chart pipeline and loads event datasets from JSON.
package event

import (
	"fmt"
	"time"
)

// Status classifies a submission outcome.
type Status string

// Submission status values.
const (
	StatusAccepted Status = "accepted"
	StatusOther    Status = "other"
)

// Difficulty classifies a problem. The empty value means the difficulty
// is unknown to the caller.
type Difficulty string

// Problem difficulty values.
const (
	DifficultyUnset  Difficulty = ""
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Event is a single time-stamped submission. Events are owned by the
// caller and are never mutated by the chart pipeline.
type Event struct {
	Timestamp  time.Time  `json:"timestamp"`
	Status     Status     `json:"status"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Language   string     `json:"language"`
	ProblemID  string     `json:"problem_id"`
}

// Accepted reports whether the event is an accepted submission.
func (e Event) Accepted() bool {
	return e.Status == StatusAccepted
}

// ParseStatus converts a string to a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusAccepted, StatusOther:
		return Status(s), nil
	default:
		return "", fmt.Errorf("parse status: unknown value %q", s)
	}
}

// ParseDifficulty converts a string to a Difficulty. The empty string is
// valid and means unset.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyUnset, DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), nil
	default:
		return "", fmt.Errorf("parse difficulty: unknown value %q", s)
	}
}
