package cli

import (
	"errors"
	"fmt"
	"io"

	"eduquiz/internal/quiz"
)

func printQuestion(out io.Writer, snap quiz.Snapshot) {
	question := snap.Question
	if question == nil {
		return
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Q%d/%d [%s]: %s\n\n", snap.QuestionIndex+1, snap.QuestionCount, question.Category, question.Prompt)
	printOptions(out, snap)
}

func printOptions(out io.Writer, snap quiz.Snapshot) {
	for idx, option := range snap.Question.Options {
		if snap.IsEliminated(idx) {
			continue
		}
		fmt.Fprintf(out, "%s. %s\n", optionLetter(idx), option)
	}
	fmt.Fprintln(out)
}

func printHint(out io.Writer, snap quiz.Snapshot) {
	hint := snap.Question.Hint
	if hint == "" {
		hint = "No hint for this question."
	}
	fmt.Fprintf(out, "Hint: %s\n", hint)
}

func printReveal(out io.Writer, snap quiz.Snapshot) {
	question := snap.Question
	correctText := optionTextForIndex(question.Options, question.CorrectIndex)
	if snap.LastAnswerCorrect {
		fmt.Fprintln(out, "Correct!")
	} else {
		fmt.Fprintf(out, "Wrong. Correct answer was %s. %s\n", optionLetter(question.CorrectIndex), correctText)
	}
	if question.Explanation != "" {
		fmt.Fprintln(out, question.Explanation)
	}
	fmt.Fprintln(out, "Press Enter for the next question.")
}

func printSummary(out io.Writer, snap quiz.Snapshot, result quiz.Result) {
	summary := quiz.Summarize(snap)
	fmt.Fprintf(out, "\nFinal score: %d/%d (%d%%) - %s\n", result.Score, result.Total, result.Percentage, result.Grade)
	fmt.Fprintf(out, "Correct: %d  Incorrect: %d  Hints: %d  Fifty-fifty: %d  Skipped: %d\n",
		summary.Correct, summary.Incorrect, summary.HintsUsed, summary.FiftyFiftyUsed, summary.Skipped)

	fmt.Fprintln(out, "\nBy category:")
	for _, stat := range result.Categories {
		fmt.Fprintf(out, "  %-14s %d/%d (%d%%)\n", stat.Category, stat.Correct, stat.Total, stat.Percentage())
	}
}

func printHistory(out io.Writer, history []quiz.Result) {
	if len(history) == 0 {
		return
	}
	fmt.Fprintln(out, "\nRecent results:")
	for _, result := range history {
		fmt.Fprintf(out, "  %s  %d/%d (%d%%) %s\n",
			result.FinishedAt.Local().Format("2006-01-02 15:04"), result.Score, result.Total, result.Percentage, result.Grade)
	}
}

func printRejection(out io.Writer, err error) {
	switch {
	case errors.Is(err, quiz.ErrOutOfRange):
		fmt.Fprintf(out, "Invalid option. Please enter a letter A-%c.\n", 'A'+quiz.OptionCount-1)
	case errors.Is(err, quiz.ErrInvalidTransition):
		fmt.Fprintf(out, "Not now: %v\n", err)
	default:
		fmt.Fprintf(out, "error: %v\n", err)
	}
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  a-d or 1-4   select an option")
	fmt.Fprintln(out, "  Enter, ok    confirm the selection / go to the next question")
	fmt.Fprintln(out, "  h            show the hint")
	fmt.Fprintln(out, "  50           remove two wrong options (once per question)")
	fmt.Fprintln(out, "  s            skip the question")
	fmt.Fprintln(out, "  r            start over")
	fmt.Fprintln(out, "  q            quit")
}

func optionLetter(idx int) string {
	return string(rune('A' + idx))
}

func optionTextForIndex(options []string, index int) string {
	if index < 0 || index >= len(options) {
		return ""
	}
	return options[index]
}
