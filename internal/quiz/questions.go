package quiz

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"
)

// OptionCount is the number of options every question carries.
const OptionCount = 4

type Question struct {
	ID           string
	Category     string
	Prompt       string
	Options      []string
	CorrectIndex int
	Explanation  string
	Hint         string
}

// Bank is the read-only question table a session runs over. It is built once
// and never mutated afterwards.
type Bank struct {
	questions []Question
}

// NewBank validates questions and returns an immutable table. Questions without
// an ID get one derived from their prompt and options.
func NewBank(questions []Question) (*Bank, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: no questions", ErrInvalidBank)
	}

	seen := make(map[string]int, len(questions))
	table := make([]Question, 0, len(questions))
	for idx, question := range questions {
		question.Options = append([]string(nil), question.Options...)
		if question.ID == "" {
			question.ID = MakeQuestionID(question)
		}
		if err := validateQuestion(question); err != nil {
			return nil, fmt.Errorf("%w: question %d: %v", ErrInvalidBank, idx+1, err)
		}
		if prev, dup := seen[question.ID]; dup {
			return nil, fmt.Errorf("%w: question %d reuses id %q of question %d", ErrInvalidBank, idx+1, question.ID, prev+1)
		}
		seen[question.ID] = idx
		table = append(table, question)
	}

	return &Bank{questions: table}, nil
}

func (b *Bank) Len() int {
	return len(b.questions)
}

// At returns the question at position idx. Options are copied so callers
// cannot reach into the table.
func (b *Bank) At(idx int) Question {
	question := b.questions[idx]
	question.Options = append([]string(nil), question.Options...)
	return question
}

func (b *Bank) Questions() []Question {
	out := make([]Question, 0, len(b.questions))
	for idx := range b.questions {
		out = append(out, b.At(idx))
	}
	return out
}

// Categories lists distinct categories in order of first appearance.
func (b *Bank) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, question := range b.questions {
		if seen[question.Category] {
			continue
		}
		seen[question.Category] = true
		categories = append(categories, question.Category)
	}
	return categories
}

func (b *Bank) correctIndex(idx int) int {
	return b.questions[idx].CorrectIndex
}

// MakeQuestionID derives a stable identifier from the prompt and option order.
func MakeQuestionID(question Question) string {
	var keyBuilder strings.Builder
	keyBuilder.WriteString(question.Prompt)
	for _, option := range question.Options {
		keyBuilder.WriteString("|")
		keyBuilder.WriteString(option)
	}

	hash := sha1.Sum([]byte(keyBuilder.String()))
	return "q_" + hex.EncodeToString(hash[:])[:12]
}

func validateQuestion(question Question) error {
	if strings.TrimSpace(question.Prompt) == "" {
		return fmt.Errorf("prompt is empty")
	}
	if len(question.Options) != OptionCount {
		return fmt.Errorf("expected %d options, got %d", OptionCount, len(question.Options))
	}
	for idx, option := range question.Options {
		if strings.TrimSpace(option) == "" {
			return fmt.Errorf("option %d is empty", idx)
		}
	}
	if question.CorrectIndex < 0 || question.CorrectIndex >= len(question.Options) {
		return fmt.Errorf("correct index %d out of range", question.CorrectIndex)
	}
	return nil
}
