package httpapi

import (
	"eduquiz/internal/quiz"
)

type sessionResponse struct {
	PassID         string            `json:"pass_id"`
	Phase          quiz.Phase        `json:"phase"`
	QuestionIndex  int               `json:"question_index"`
	QuestionCount  int               `json:"question_count"`
	Progress       int               `json:"progress"`
	Question       *questionResponse `json:"question,omitempty"`
	SelectedOption *int              `json:"selected_option,omitempty"`
	Eliminated     []int             `json:"eliminated"`
	Score          int               `json:"score"`
	AnswerLog      []bool            `json:"answer_log"`
	HintsUsed      int               `json:"hints_used"`
	FiftyFiftyUsed int               `json:"fifty_fifty_used"`
	Skipped        int               `json:"skipped"`
	Correct        *bool             `json:"correct,omitempty"`
	Result         *quiz.Result      `json:"result,omitempty"`
	RecordError    string            `json:"record_error,omitempty"`
}

// questionResponse leaves out the answer until the question is revealed.
type questionResponse struct {
	ID           string   `json:"id"`
	Category     string   `json:"category"`
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	Hint         string   `json:"hint,omitempty"`
	CorrectIndex *int     `json:"correct_index,omitempty"`
	Explanation  string   `json:"explanation,omitempty"`
	SkippedHere  bool     `json:"skipped_here,omitempty"`
}

type selectRequest struct {
	Option *int `json:"option"`
}

type resultsResponse struct {
	Results []quiz.Result `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}
