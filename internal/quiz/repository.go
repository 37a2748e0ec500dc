package quiz

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrInvalidTransition reports an intent the current phase does not accept.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrOutOfRange reports an option index outside the current question.
	ErrOutOfRange = errors.New("option index out of range")
	// ErrInvalidBank reports a question set that fails validation.
	ErrInvalidBank = errors.New("invalid question bank")
	// ErrSessionIncomplete reports a result requested before the pass is complete.
	ErrSessionIncomplete = errors.New("session is not complete")
)

// Result is the recorded outcome of one completed pass.
type Result struct {
	PassID         string         `json:"pass_id"`
	FinishedAt     time.Time      `json:"finished_at"`
	Score          int            `json:"score"`
	Total          int            `json:"total"`
	Percentage     int            `json:"percentage"`
	Grade          Grade          `json:"grade"`
	HintsUsed      int            `json:"hints_used"`
	FiftyFiftyUsed int            `json:"fifty_fifty_used"`
	Skipped        int            `json:"skipped"`
	Categories     []CategoryStat `json:"categories"`
}

type ResultRepository interface {
	// SaveResult stores a result. Saving a pass that already exists is a no-op.
	SaveResult(ctx context.Context, result Result) error
	// ListResults returns results newest first; limit <= 0 returns all.
	ListResults(ctx context.Context, limit int) ([]Result, error)
}
