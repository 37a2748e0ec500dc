package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"eduquiz/internal/quiz"
)

var (
	colorTitle    = lipgloss.Color("33")
	colorMuted    = lipgloss.Color("242")
	colorCorrect  = lipgloss.Color("34")
	colorWrong    = lipgloss.Color("160")
	colorHint     = lipgloss.Color("214")
	colorSelected = lipgloss.Color("63")
)

// renderHeader renders the question counter and progress bar.
func renderHeader(snap quiz.Snapshot, bar progress.Model, noColor bool) string {
	counter := fmt.Sprintf("Question %d of %d | Score %d", min(snap.QuestionIndex+1, snap.QuestionCount), snap.QuestionCount, snap.Score)
	if snap.Phase == quiz.PhaseComplete {
		counter = fmt.Sprintf("Finished | Score %d of %d", snap.Score, snap.QuestionCount)
	}
	return stylize(counter, noColor, colorTitle) + "\n" + bar.ViewAs(float64(snap.Progress())/100) + "\n"
}

// renderQuestion renders the prompt, options and any revealed feedback.
func renderQuestion(snap quiz.Snapshot, noColor bool) string {
	question := snap.Question
	var b strings.Builder
	b.WriteString(stylize(question.Category, noColor, colorMuted))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Bold(!noColor).Render(question.Prompt))
	b.WriteString("\n\n")

	for idx, option := range question.Options {
		cursor := "  "
		if idx == snap.SelectedOption {
			cursor = "> "
		}
		line := fmt.Sprintf("%c. %s", 'A'+idx, option)
		switch {
		case snap.IsEliminated(idx):
			line = stylize(line+" (removed)", noColor, colorMuted)
		case snap.ExplanationVisible && idx == question.CorrectIndex:
			line = stylize(line+" ✓", noColor, colorCorrect)
		case snap.ExplanationVisible && idx == snap.SelectedOption:
			line = stylize(line+" ✗", noColor, colorWrong)
		case idx == snap.SelectedOption:
			line = stylize(line, noColor, colorSelected)
		}
		b.WriteString(cursor + line + "\n")
	}

	if snap.HintShown && question.Hint != "" {
		b.WriteString("\n")
		b.WriteString(stylize("Hint: "+question.Hint, noColor, colorHint))
		b.WriteString("\n")
	}

	if snap.ExplanationVisible {
		b.WriteString("\n")
		if snap.LastAnswerCorrect {
			b.WriteString(stylize("Correct!", noColor, colorCorrect))
		} else {
			b.WriteString(stylize("Wrong.", noColor, colorWrong))
		}
		if question.Explanation != "" {
			b.WriteString(" ")
			b.WriteString(question.Explanation)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderSummary renders grade, counters, category breakdown and history.
func renderSummary(snap quiz.Snapshot, result *quiz.Result, history []quiz.Result, noColor bool) string {
	if result == nil {
		return "No result.\n"
	}
	summary := quiz.Summarize(snap)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(!noColor).Render(
		fmt.Sprintf("%s: %d/%d (%d%%)", result.Grade, result.Score, result.Total, result.Percentage)))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Correct %d | Incorrect %d | Hints %d | 50/50 %d | Skipped %d\n\n",
		summary.Correct, summary.Incorrect, summary.HintsUsed, summary.FiftyFiftyUsed, summary.Skipped)

	for _, stat := range result.Categories {
		fmt.Fprintf(&b, "%-14s %d/%d (%d%%)\n", stat.Category, stat.Correct, stat.Total, stat.Percentage())
	}

	if len(history) > 0 {
		b.WriteString("\n")
		b.WriteString(stylize("Recent results", noColor, colorMuted))
		b.WriteString("\n")
		for _, past := range history {
			fmt.Fprintf(&b, "%s  %d/%d  %s\n", past.FinishedAt.Local().Format("2006-01-02 15:04"), past.Score, past.Total, past.Grade)
		}
	}
	b.WriteString("\nPress r to play again or q to quit.\n")
	return b.String()
}

func renderNotice(notice string, noColor bool) string {
	if notice == "" {
		return ""
	}
	return stylize(notice, noColor, colorHint) + "\n"
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
