package quiz

// Snapshot is a read-only view of a session taken after an operation. All
// derived results are computed from it on demand.
type Snapshot struct {
	PassID        string
	Phase         Phase
	QuestionIndex int
	QuestionCount int
	// Question is nil once the pass is complete.
	Question       *Question
	SelectedOption int
	Eliminated     []int
	Score          int
	AnswerLog      []bool

	HintShown          bool
	FiftyFiftyUsedHere bool
	SkippedCurrent     bool
	ExplanationVisible bool
	LastAnswerCorrect  bool

	HintsUsed      int
	FiftyFiftyUsed int
	SkippedCount   int
}

func (s Snapshot) IsEliminated(idx int) bool {
	for _, eliminated := range s.Eliminated {
		if eliminated == idx {
			return true
		}
	}
	return false
}

// Progress is the share of the pass reached, in percent, counting the current
// question as reached.
func (s Snapshot) Progress() int {
	if s.QuestionCount == 0 {
		return 0
	}
	if s.Phase == PhaseComplete {
		return 100
	}
	return (s.QuestionIndex + 1) * 100 / s.QuestionCount
}
