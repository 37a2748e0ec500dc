package quiz

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// NoSelection marks the absence of a selected option.
const NoSelection = -1

// fiftyFiftyRemoves is how many incorrect options the elimination aid hides.
const fiftyFiftyRemoves = 2

// Session owns the progress of one pass over a bank. It is not safe for
// concurrent use; callers that accept intents from several goroutines must
// serialize them.
type Session struct {
	bank   *Bank
	passID string

	phase    Phase
	index    int
	selected int
	score    int

	answerLog      []bool
	hintShown      map[string]bool
	fiftyFiftyUsed map[string]bool
	eliminated     map[int]bool
	skipped        map[string]bool
	// skippedCurrent is set when the current reveal came from Skip.
	skippedCurrent bool
}

func NewSession(bank *Bank) *Session {
	s := &Session{bank: bank}
	s.Reset()
	return s
}

func (s *Session) PassID() string {
	return s.passID
}

func (s *Session) Phase() Phase {
	return s.phase
}

// SelectOption marks idx as the chosen option for the current question.
// Re-selecting, or switching to another option, is allowed until Confirm.
func (s *Session) SelectOption(idx int) error {
	if s.phase != PhaseAnswering {
		return s.reject("select option")
	}
	if idx < 0 || idx >= len(s.current().Options) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, idx, len(s.current().Options))
	}
	if s.eliminated[idx] {
		return fmt.Errorf("%w: option %d was eliminated", ErrInvalidTransition, idx)
	}
	s.selected = idx
	return nil
}

// Confirm scores the selected option and reveals the answer.
func (s *Session) Confirm() error {
	if s.phase != PhaseAnswering {
		return s.reject("confirm")
	}
	if s.selected == NoSelection {
		return fmt.Errorf("%w: confirm without a selected option", ErrInvalidTransition)
	}

	correct := s.selected == s.bank.correctIndex(s.index)
	s.answerLog = append(s.answerLog, correct)
	if correct {
		s.score++
	}
	s.skippedCurrent = false
	s.phase = PhaseRevealed
	return nil
}

// RequestHint records that the hint of the current question was shown.
// Repeated requests are accepted and change nothing.
func (s *Session) RequestHint() error {
	if s.phase != PhaseAnswering {
		return s.reject("request hint")
	}
	s.hintShown[s.current().ID] = true
	return nil
}

// UseFiftyFifty hides the two lowest-indexed incorrect options of the current
// question. It can be used once per question.
func (s *Session) UseFiftyFifty() error {
	if s.phase != PhaseAnswering {
		return s.reject("use fifty-fifty")
	}
	question := s.current()
	if s.fiftyFiftyUsed[question.ID] {
		return fmt.Errorf("%w: fifty-fifty already used on %s", ErrInvalidTransition, question.ID)
	}

	removed := 0
	for idx := range question.Options {
		if removed == fiftyFiftyRemoves {
			break
		}
		if idx == question.CorrectIndex {
			continue
		}
		s.eliminated[idx] = true
		removed++
	}
	if s.eliminated[s.selected] {
		s.selected = NoSelection
	}
	s.fiftyFiftyUsed[question.ID] = true
	return nil
}

// Skip records the current question as incorrect without a selection. The
// explanation of a skipped question is never revealed; callers are expected to
// Advance right away.
func (s *Session) Skip() error {
	if s.phase != PhaseAnswering {
		return s.reject("skip")
	}
	s.answerLog = append(s.answerLog, false)
	s.skipped[s.current().ID] = true
	s.selected = NoSelection
	s.skippedCurrent = true
	s.phase = PhaseRevealed
	return nil
}

// Advance moves to the next question, or completes the pass after the last.
func (s *Session) Advance() error {
	if s.phase != PhaseRevealed {
		return s.reject("advance")
	}
	if s.index+1 >= s.bank.Len() {
		s.phase = PhaseComplete
		return nil
	}
	s.index++
	s.selected = NoSelection
	s.eliminated = make(map[int]bool)
	s.skippedCurrent = false
	s.phase = PhaseAnswering
	return nil
}

// Reset discards all progress and starts a new pass at the first question.
func (s *Session) Reset() {
	s.passID = uuid.NewString()
	s.phase = PhaseAnswering
	s.index = 0
	s.selected = NoSelection
	s.score = 0
	s.answerLog = nil
	s.hintShown = make(map[string]bool)
	s.fiftyFiftyUsed = make(map[string]bool)
	s.eliminated = make(map[int]bool)
	s.skipped = make(map[string]bool)
	s.skippedCurrent = false
}

// Snapshot returns a copy of the observable state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		PassID:         s.passID,
		Phase:          s.phase,
		QuestionIndex:  s.index,
		QuestionCount:  s.bank.Len(),
		SelectedOption: s.selected,
		Score:          s.score,
		AnswerLog:      append([]bool(nil), s.answerLog...),
		HintsUsed:      len(s.hintShown),
		FiftyFiftyUsed: len(s.fiftyFiftyUsed),
		SkippedCount:   len(s.skipped),
	}
	snap.Eliminated = make([]int, 0, len(s.eliminated))
	for idx := range s.eliminated {
		snap.Eliminated = append(snap.Eliminated, idx)
	}
	sort.Ints(snap.Eliminated)

	if s.phase != PhaseComplete {
		question := s.current()
		snap.Question = &question
		snap.HintShown = s.hintShown[question.ID]
		snap.FiftyFiftyUsedHere = s.fiftyFiftyUsed[question.ID]
		snap.SkippedCurrent = s.phase == PhaseRevealed && s.skippedCurrent
		if s.phase == PhaseRevealed && !s.skippedCurrent {
			snap.ExplanationVisible = true
			snap.LastAnswerCorrect = s.answerLog[len(s.answerLog)-1]
		}
	}
	return snap
}

func (s *Session) current() Question {
	return s.bank.At(s.index)
}

func (s *Session) reject(op string) error {
	return fmt.Errorf("%w: %s while %s", ErrInvalidTransition, op, s.phase)
}
