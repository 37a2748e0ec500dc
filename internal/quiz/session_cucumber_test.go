package quiz_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"eduquiz/internal/bank"
	"eduquiz/internal/quiz"
)

// TestSessionFeatures executes the session scenarios via godog.
func TestSessionFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "quiz-session",
		ScenarioInitializer: initializeSessionScenario,
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{filepath.Join("features", "session.feature")},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// sessionState holds one scenario's session and the outcome of its last intent.
type sessionState struct {
	session *quiz.Session
	lastErr error
}

func initializeSessionScenario(ctx *godog.ScenarioContext) {
	state := &sessionState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		state.session = nil
		state.lastErr = nil
		return ctx, nil
	})

	ctx.Step(`^a new session over the reference bank$`, state.newSession)
	ctx.Step(`^I answer options ([\d, ]+) in order$`, state.answerInOrder)
	ctx.Step(`^I answer option (\d+) and advance$`, state.answerInOrder)
	ctx.Step(`^I select option (\d+)$`, state.selectOption)
	ctx.Step(`^I confirm$`, state.intent(func(s *quiz.Session) error { return s.Confirm() }))
	ctx.Step(`^I skip$`, state.intent(func(s *quiz.Session) error { return s.Skip() }))
	ctx.Step(`^I use fifty-fifty$`, state.intent(func(s *quiz.Session) error { return s.UseFiftyFifty() }))
	ctx.Step(`^I reset$`, state.intent(func(s *quiz.Session) error { s.Reset(); return nil }))
	ctx.Step(`^I skip every question$`, state.skipEverything)

	ctx.Step(`^the last intent is rejected$`, state.lastIntentRejected)
	ctx.Step(`^the session is complete$`, state.phaseIs("complete"))
	ctx.Step(`^the phase is "([^"]+)"$`, state.phaseNamed)
	ctx.Step(`^the score is (\d+)$`, state.scoreIs)
	ctx.Step(`^the score percentage is (\d+)$`, state.percentageIs)
	ctx.Step(`^the grade is "([^"]+)"$`, state.gradeIs)
	ctx.Step(`^the answer log is "([^"]*)"$`, state.answerLogIs)
	ctx.Step(`^the answer log is empty$`, func() error { return state.answerLogIs("") })
	ctx.Step(`^every answer log entry is false$`, state.everyEntryFalse)
	ctx.Step(`^(\d+) questions are recorded as skipped$`, state.skippedCountIs)
	ctx.Step(`^options ([\d, ]+) are eliminated$`, state.eliminatedAre)
	ctx.Step(`^option (\d+) can be selected$`, state.optionSelectable)
	ctx.Step(`^the explanation is hidden$`, state.explanationHidden)
	ctx.Step(`^the question index is (\d+)$`, state.questionIndexIs)
}

func (s *sessionState) newSession() error {
	s.session = quiz.NewSession(bank.Default())
	return nil
}

func (s *sessionState) intent(op func(*quiz.Session) error) func() error {
	return func() error {
		s.lastErr = op(s.session)
		return nil
	}
}

func (s *sessionState) answerInOrder(list string) error {
	answers, err := parseInts(list)
	if err != nil {
		return err
	}
	for _, answer := range answers {
		if err := s.session.SelectOption(answer); err != nil {
			return err
		}
		if err := s.session.Confirm(); err != nil {
			return err
		}
		if err := s.session.Advance(); err != nil {
			return err
		}
	}
	return nil
}

func (s *sessionState) selectOption(idx int) error {
	s.lastErr = s.session.SelectOption(idx)
	return nil
}

func (s *sessionState) skipEverything() error {
	for s.session.Phase() != quiz.PhaseComplete {
		if err := s.session.Skip(); err != nil {
			return err
		}
		if err := s.session.Advance(); err != nil {
			return err
		}
	}
	return nil
}

func (s *sessionState) lastIntentRejected() error {
	if !errors.Is(s.lastErr, quiz.ErrInvalidTransition) {
		return fmt.Errorf("expected invalid transition, got %v", s.lastErr)
	}
	return nil
}

func (s *sessionState) phaseIs(want string) func() error {
	return func() error { return s.phaseNamed(want) }
}

func (s *sessionState) phaseNamed(want string) error {
	if got := s.session.Phase().String(); got != want {
		return fmt.Errorf("phase = %s, want %s", got, want)
	}
	return nil
}

func (s *sessionState) scoreIs(want int) error {
	if got := s.session.Snapshot().Score; got != want {
		return fmt.Errorf("score = %d, want %d", got, want)
	}
	return nil
}

func (s *sessionState) percentageIs(want int) error {
	if got := s.session.ScorePercentage(); got != want {
		return fmt.Errorf("percentage = %d, want %d", got, want)
	}
	return nil
}

func (s *sessionState) gradeIs(want string) error {
	if got := s.session.Grade().String(); got != want {
		return fmt.Errorf("grade = %s, want %s", got, want)
	}
	return nil
}

func (s *sessionState) answerLogIs(want string) error {
	log := s.session.Snapshot().AnswerLog
	parts := make([]string, 0, len(log))
	for _, entry := range log {
		parts = append(parts, strconv.FormatBool(entry))
	}
	if got := strings.Join(parts, ","); got != want {
		return fmt.Errorf("answer log = %q, want %q", got, want)
	}
	return nil
}

func (s *sessionState) everyEntryFalse() error {
	snap := s.session.Snapshot()
	if len(snap.AnswerLog) != snap.QuestionCount {
		return fmt.Errorf("answer log has %d entries, want %d", len(snap.AnswerLog), snap.QuestionCount)
	}
	for idx, entry := range snap.AnswerLog {
		if entry {
			return fmt.Errorf("answer log entry %d is true", idx)
		}
	}
	return nil
}

func (s *sessionState) skippedCountIs(want int) error {
	if got := s.session.Snapshot().SkippedCount; got != want {
		return fmt.Errorf("skipped = %d, want %d", got, want)
	}
	return nil
}

func (s *sessionState) eliminatedAre(list string) error {
	want, err := parseInts(list)
	if err != nil {
		return err
	}
	got := s.session.Snapshot().Eliminated
	if fmt.Sprint(got) != fmt.Sprint(want) {
		return fmt.Errorf("eliminated = %v, want %v", got, want)
	}
	return nil
}

func (s *sessionState) optionSelectable(idx int) error {
	return s.session.SelectOption(idx)
}

func (s *sessionState) explanationHidden() error {
	if s.session.Snapshot().ExplanationVisible {
		return fmt.Errorf("explanation is visible")
	}
	return nil
}

func (s *sessionState) questionIndexIs(want int) error {
	if got := s.session.Snapshot().QuestionIndex; got != want {
		return fmt.Errorf("question index = %d, want %d", got, want)
	}
	return nil
}

func parseInts(list string) ([]int, error) {
	var out []int
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
