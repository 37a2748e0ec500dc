// Package bank reads and writes question banks as YAML.
package bank

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"eduquiz/internal/quiz"
)

//go:embed default.yaml
var defaultBank []byte

// Document is the on-disk layout of a question bank.
type Document struct {
	Title     string         `yaml:"title,omitempty"`
	Questions []QuestionSpec `yaml:"questions"`
}

type QuestionSpec struct {
	ID          string   `yaml:"id,omitempty"`
	Category    string   `yaml:"category"`
	Prompt      string   `yaml:"prompt"`
	Options     []string `yaml:"options"`
	Correct     int      `yaml:"correct"`
	Explanation string   `yaml:"explanation,omitempty"`
	Hint        string   `yaml:"hint,omitempty"`
}

// Default returns the bank compiled into the binary.
func Default() *quiz.Bank {
	b, err := Parse(defaultBank)
	if err != nil {
		panic(fmt.Sprintf("embedded question bank: %v", err))
	}
	return b
}

// Load reads, parses, normalizes and validates a bank file.
func Load(path string) (*quiz.Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank: %w", err)
	}
	b, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Parse decodes a single YAML document; unknown fields are rejected.
func Parse(data []byte) (*quiz.Bank, error) {
	doc, err := decode(data)
	if err != nil {
		return nil, err
	}
	return quiz.NewBank(doc.toQuestions())
}

// Encode renders questions as a bank document.
func Encode(title string, questions []quiz.Question) ([]byte, error) {
	doc := Document{Title: title, Questions: make([]QuestionSpec, 0, len(questions))}
	for _, question := range questions {
		doc.Questions = append(doc.Questions, QuestionSpec{
			ID:          question.ID,
			Category:    question.Category,
			Prompt:      question.Prompt,
			Options:     question.Options,
			Correct:     question.CorrectIndex,
			Explanation: question.Explanation,
			Hint:        question.Hint,
		})
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode bank: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("encode bank: %w", err)
	}
	return buf.Bytes(), nil
}

func decode(data []byte) (Document, error) {
	var doc Document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("parse bank: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Document{}, fmt.Errorf("parse bank: multiple YAML documents are not supported")
		}
		return Document{}, fmt.Errorf("parse bank: %w", err)
	}
	return doc, nil
}

func (d Document) toQuestions() []quiz.Question {
	questions := make([]quiz.Question, 0, len(d.Questions))
	for _, spec := range d.Questions {
		options := make([]string, 0, len(spec.Options))
		for _, option := range spec.Options {
			options = append(options, strings.TrimSpace(option))
		}
		questions = append(questions, quiz.Question{
			ID:           strings.TrimSpace(spec.ID),
			Category:     strings.TrimSpace(spec.Category),
			Prompt:       strings.TrimSpace(spec.Prompt),
			Options:      options,
			CorrectIndex: spec.Correct,
			Explanation:  strings.TrimSpace(spec.Explanation),
			Hint:         strings.TrimSpace(spec.Hint),
		})
	}
	return questions
}
