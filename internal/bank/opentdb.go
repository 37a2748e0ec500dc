package bank

import (
	"html"
	"math/rand"
	"strings"

	"eduquiz/internal/opentdb"
	"eduquiz/internal/quiz"
)

// FromOpenTDB converts trivia payloads into bank questions. Only questions
// with exactly OptionCount-1 incorrect answers are kept. Options are shuffled
// with rng; the difficulty becomes the hint.
func FromOpenTDB(raw []opentdb.RawQuestion, rng *rand.Rand) []quiz.Question {
	questions := make([]quiz.Question, 0, len(raw))
	for _, item := range raw {
		if len(item.IncorrectAnswers) != quiz.OptionCount-1 {
			continue
		}
		question := buildQuestion(item, rng)
		question.ID = quiz.MakeQuestionID(question)
		questions = append(questions, question)
	}
	return questions
}

func buildQuestion(raw opentdb.RawQuestion, rng *rand.Rand) quiz.Question {
	type choice struct {
		text      string
		isCorrect bool
	}

	choices := make([]choice, 0, len(raw.IncorrectAnswers)+1)
	for _, incorrect := range raw.IncorrectAnswers {
		choices = append(choices, choice{
			text:      html.UnescapeString(incorrect),
			isCorrect: false,
		})
	}

	choices = append(choices, choice{
		text:      html.UnescapeString(raw.CorrectAnswer),
		isCorrect: true,
	})

	rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	options := make([]string, len(choices))
	correctIndex := -1
	for idx, candidate := range choices {
		options[idx] = candidate.text
		if candidate.isCorrect {
			correctIndex = idx
		}
	}

	var hint string
	if difficulty := strings.TrimSpace(raw.Difficulty); difficulty != "" {
		hint = "Difficulty: " + difficulty
	}

	return quiz.Question{
		Category:     html.UnescapeString(raw.Category),
		Prompt:       html.UnescapeString(raw.Question),
		Options:      options,
		CorrectIndex: correctIndex,
		Hint:         hint,
	}
}
