package userclient

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"eduquiz/internal/quiz"
)

// parseOption accepts a letter a-d or a digit 1-4.
func parseOption(word string) (int, bool) {
	if len(word) != 1 {
		return 0, false
	}
	switch c := word[0]; {
	case c >= 'a' && c < 'a'+quiz.OptionCount:
		return int(c - 'a'), true
	case c >= '1' && c < '1'+quiz.OptionCount:
		return int(c - '1'), true
	}
	return 0, false
}

func parseSignedLimit(args []string, index int, defaultValue int) (int, error) {
	if len(args) <= index {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(args[index])
	if err != nil {
		return 0, errors.New("must be an integer")
	}
	return value, nil
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  a-d or 1-4       select an option")
	fmt.Fprintln(out, "  Enter, ok        confirm / next question")
	fmt.Fprintln(out, "  h                hint")
	fmt.Fprintln(out, "  50               remove two wrong options")
	fmt.Fprintln(out, "  s                skip")
	fmt.Fprintln(out, "  r                start over")
	fmt.Fprintln(out, "  save             retry saving a finished pass")
	fmt.Fprintln(out, "  results [limit]  recent results")
	fmt.Fprintln(out, "  q                quit")
}

func printState(out io.Writer, state sessionState) {
	if state.Phase == quiz.PhaseComplete {
		if state.Result != nil {
			printResult(out, *state.Result)
			if state.RecordError != "" {
				fmt.Fprintf(out, "Result not saved: %s. Type save to retry.\n", state.RecordError)
			}
		} else {
			fmt.Fprintf(out, "\nFinished: %d/%d\n", state.Score, state.QuestionCount)
		}
		return
	}

	question := state.Question
	if question == nil {
		return
	}
	fmt.Fprintf(out, "\nQ%d/%d [%s]: %s\n", state.QuestionIndex+1, state.QuestionCount, question.Category, question.Prompt)
	for idx, option := range question.Options {
		if eliminated(state, idx) {
			continue
		}
		marker := " "
		if state.SelectedOption != nil && *state.SelectedOption == idx {
			marker = ">"
		}
		fmt.Fprintf(out, "%s %c. %s\n", marker, 'A'+idx, option)
	}
	if question.Hint != "" {
		fmt.Fprintf(out, "Hint: %s\n", question.Hint)
	}
	if state.Phase == quiz.PhaseRevealed && state.Correct != nil {
		if *state.Correct {
			fmt.Fprintln(out, "Correct!")
		} else {
			fmt.Fprintf(out, "Wrong. Correct answer was %s\n", correctAnswerDisplay(*question))
		}
		if question.Explanation != "" {
			fmt.Fprintln(out, question.Explanation)
		}
	}
}

func printResult(out io.Writer, result quiz.Result) {
	fmt.Fprintf(out, "\nFinal score: %d/%d (%d%%) - %s\n", result.Score, result.Total, result.Percentage, result.Grade)
	if result.Skipped > 0 {
		fmt.Fprintf(out, "Skipped: %d\n", result.Skipped)
	}
	fmt.Fprintln(out, "Type r to play again.")
}

func printResults(out io.Writer, results []quiz.Result) {
	if len(results) == 0 {
		fmt.Fprintln(out, "No results recorded.")
		return
	}
	for _, result := range results {
		fmt.Fprintf(out, "  %s  %d/%d (%d%%) %s\n",
			result.FinishedAt.Local().Format("2006-01-02 15:04"), result.Score, result.Total, result.Percentage, result.Grade)
	}
}

func eliminated(state sessionState, idx int) bool {
	for _, removed := range state.Eliminated {
		if removed == idx {
			return true
		}
	}
	return false
}

func describeClientError(err error, serverURL string) error {
	if errors.Is(err, ErrServiceUnavailable) {
		return fmt.Errorf("quiz service unavailable at %s", serverURL)
	}
	return err
}

func correctAnswerDisplay(question questionItem) string {
	if question.CorrectIndex == nil || *question.CorrectIndex < 0 || *question.CorrectIndex >= len(question.Options) {
		return "unknown"
	}
	idx := *question.CorrectIndex
	return fmt.Sprintf("%c. %s", 'A'+idx, question.Options[idx])
}
