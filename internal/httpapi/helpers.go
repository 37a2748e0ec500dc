package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"eduquiz/internal/quiz"
)

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, quiz.ErrInvalidTransition):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, quiz.ErrOutOfRange):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "request failed"})
	}
}

func toSessionResponse(snap quiz.Snapshot, result *quiz.Result) sessionResponse {
	response := sessionResponse{
		PassID:         snap.PassID,
		Phase:          snap.Phase,
		QuestionIndex:  snap.QuestionIndex,
		QuestionCount:  snap.QuestionCount,
		Progress:       snap.Progress(),
		Eliminated:     snap.Eliminated,
		Score:          snap.Score,
		AnswerLog:      snap.AnswerLog,
		HintsUsed:      snap.HintsUsed,
		FiftyFiftyUsed: snap.FiftyFiftyUsed,
		Skipped:        snap.SkippedCount,
	}
	if response.Eliminated == nil {
		response.Eliminated = []int{}
	}
	if response.AnswerLog == nil {
		response.AnswerLog = []bool{}
	}
	if snap.SelectedOption != quiz.NoSelection {
		selected := snap.SelectedOption
		response.SelectedOption = &selected
	}
	if snap.Question != nil {
		response.Question = toQuestionResponse(snap)
	}
	if snap.ExplanationVisible {
		correct := snap.LastAnswerCorrect
		response.Correct = &correct
	}
	if snap.Phase == quiz.PhaseComplete {
		response.Result = result
	}
	return response
}

func toQuestionResponse(snap quiz.Snapshot) *questionResponse {
	question := snap.Question
	item := &questionResponse{
		ID:          question.ID,
		Category:    question.Category,
		Prompt:      question.Prompt,
		Options:     question.Options,
		SkippedHere: snap.SkippedCurrent,
	}
	if snap.HintShown {
		item.Hint = question.Hint
	}
	if snap.ExplanationVisible {
		correctIndex := question.CorrectIndex
		item.CorrectIndex = &correctIndex
		item.Explanation = question.Explanation
	}
	return item
}

func parseLimit(r *http.Request, defaultValue int) (int, error) {
	value := strings.TrimSpace(r.URL.Query().Get("limit"))
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.New("limit must be an integer")
	}
	// <=0 means "all results".
	return parsed, nil
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}
