package quiz

import "fmt"

// Grade is an ordered performance band, best first.
type Grade int

const (
	GradeExcellent Grade = iota
	GradeGood
	GradeFair
	GradeNeedsImprovement
)

func (g Grade) String() string {
	switch g {
	case GradeExcellent:
		return "Excellent"
	case GradeGood:
		return "Good"
	case GradeFair:
		return "Fair"
	case GradeNeedsImprovement:
		return "Needs improvement"
	default:
		return fmt.Sprintf("grade(%d)", int(g))
	}
}

func (g Grade) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

func (g *Grade) UnmarshalText(text []byte) error {
	for _, candidate := range []Grade{GradeExcellent, GradeGood, GradeFair, GradeNeedsImprovement} {
		if candidate.String() == string(text) {
			*g = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown grade %q", text)
}

type CategoryStat struct {
	Category string `json:"category"`
	Correct  int    `json:"correct"`
	Total    int    `json:"total"`
}

// Percentage of correct answers within the category, rounded.
func (c CategoryStat) Percentage() int {
	return ScorePercentage(c.Correct, c.Total)
}

// Summary aggregates the counters shown at the end of a pass.
type Summary struct {
	Correct        int
	Incorrect      int
	Answered       int
	HintsUsed      int
	FiftyFiftyUsed int
	Skipped        int
}

// ScorePercentage is round(100 * score / total), halves rounded up.
func ScorePercentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*score + total) / (2 * total)
}

// GradeFor maps score out of total to a band. Band floors are 90, 70 and 50
// percent and belong to the higher band. The exact ratio is compared, not the
// rounded percentage.
func GradeFor(score, total int) Grade {
	switch {
	case total <= 0:
		return GradeNeedsImprovement
	case score*100 >= 90*total:
		return GradeExcellent
	case score*100 >= 70*total:
		return GradeGood
	case score*100 >= 50*total:
		return GradeFair
	default:
		return GradeNeedsImprovement
	}
}

// CategoryBreakdown counts, per category in order of first appearance, the
// correct entries of answerLog and the questions in that category.
func CategoryBreakdown(bank *Bank, answerLog []bool) []CategoryStat {
	positions := make(map[string]int)
	var stats []CategoryStat
	for idx, question := range bank.questions {
		pos, ok := positions[question.Category]
		if !ok {
			pos = len(stats)
			positions[question.Category] = pos
			stats = append(stats, CategoryStat{Category: question.Category})
		}
		stats[pos].Total++
		if idx < len(answerLog) && answerLog[idx] {
			stats[pos].Correct++
		}
	}
	return stats
}

func Summarize(snap Snapshot) Summary {
	summary := Summary{
		Answered:       len(snap.AnswerLog),
		HintsUsed:      snap.HintsUsed,
		FiftyFiftyUsed: snap.FiftyFiftyUsed,
		Skipped:        snap.SkippedCount,
	}
	for _, correct := range snap.AnswerLog {
		if correct {
			summary.Correct++
		} else {
			summary.Incorrect++
		}
	}
	return summary
}

func (s *Session) ScorePercentage() int {
	return ScorePercentage(s.score, s.bank.Len())
}

func (s *Session) Grade() Grade {
	return GradeFor(s.score, s.bank.Len())
}

func (s *Session) CategoryBreakdown() []CategoryStat {
	return CategoryBreakdown(s.bank, s.answerLog)
}
