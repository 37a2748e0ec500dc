package quiz

import (
	"context"
	"fmt"
	"time"
)

type Service struct {
	bank    *Bank
	results ResultRepository
	now     func() time.Time
}

// NewService wires a bank to an optional result repository. A nil repository
// disables history.
func NewService(bank *Bank, results ResultRepository) *Service {
	return &Service{
		bank:    bank,
		results: results,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) Bank() *Bank {
	return s.bank
}

func (s *Service) NewSession() *Session {
	return NewSession(s.bank)
}

func (s *Service) HistoryEnabled() bool {
	return s.results != nil
}

// Finish builds the result of a complete session and stores it.
func (s *Service) Finish(ctx context.Context, session *Session) (Result, error) {
	result, err := s.BuildResult(session)
	if err != nil {
		return Result{}, err
	}
	if err := s.Record(ctx, result); err != nil {
		return Result{}, err
	}
	return result, nil
}

// Record stores a result built earlier. It does not touch any session, so it
// may run after the session has moved on. Without a repository it does nothing.
func (s *Service) Record(ctx context.Context, result Result) error {
	if s.results == nil {
		return nil
	}
	if err := s.results.SaveResult(ctx, result); err != nil {
		return fmt.Errorf("save result %s: %w", result.PassID, err)
	}
	return nil
}

func (s *Service) RecentResults(ctx context.Context, limit int) ([]Result, error) {
	if s.results == nil {
		return nil, nil
	}
	return s.results.ListResults(ctx, limit)
}

// BuildResult captures the outcome of a complete session without storing it.
func (s *Service) BuildResult(session *Session) (Result, error) {
	if session.Phase() != PhaseComplete {
		return Result{}, fmt.Errorf("%w: pass %s is %s", ErrSessionIncomplete, session.PassID(), session.Phase())
	}

	snap := session.Snapshot()
	return Result{
		PassID:         snap.PassID,
		FinishedAt:     s.now(),
		Score:          snap.Score,
		Total:          snap.QuestionCount,
		Percentage:     session.ScorePercentage(),
		Grade:          session.Grade(),
		HintsUsed:      snap.HintsUsed,
		FiftyFiftyUsed: snap.FiftyFiftyUsed,
		Skipped:        snap.SkippedCount,
		Categories:     session.CategoryBreakdown(),
	}, nil
}
