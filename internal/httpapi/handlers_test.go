package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"eduquiz/internal/bank"
	"eduquiz/internal/quiz"
)

type memResults struct {
	mu      sync.Mutex
	results []quiz.Result
	saveErr error
}

func (m *memResults) setSaveErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}

func (m *memResults) SaveResult(_ context.Context, result quiz.Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.results = append([]quiz.Result{result}, m.results...)
	return nil
}

func (m *memResults) ListResults(_ context.Context, limit int) ([]quiz.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit <= 0 || limit > len(m.results) {
		limit = len(m.results)
	}
	return append([]quiz.Result(nil), m.results[:limit]...), nil
}

func newTestService(results quiz.ResultRepository) *quiz.Service {
	return quiz.NewService(bank.Default(), results)
}

func do(t *testing.T, router http.Handler, method, path, body string) (int, sessionResponse) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var payload sessionResponse
	if rec.Code == http.StatusOK {
		if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
			t.Fatalf("decode %s %s: %v", method, path, err)
		}
	}
	return rec.Code, payload
}

func TestSessionStartsAnswering(t *testing.T) {
	router := NewRouter(newTestService(nil))

	code, payload := do(t, router, http.MethodGet, "/session", "")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want %d", code, http.StatusOK)
	}
	if payload.Phase != quiz.PhaseAnswering || payload.QuestionIndex != 0 || payload.QuestionCount != 5 {
		t.Fatalf("unexpected initial session: %+v", payload)
	}
	if payload.Question == nil || payload.Question.CorrectIndex != nil || payload.Question.Explanation != "" {
		t.Fatalf("answer leaked before reveal: %+v", payload.Question)
	}
	if payload.SelectedOption != nil {
		t.Fatalf("expected no selection, got %d", *payload.SelectedOption)
	}
}

func TestSelectConfirmRevealsAnswer(t *testing.T) {
	router := NewRouter(newTestService(nil))

	code, payload := do(t, router, http.MethodPost, "/session/select", `{"option":1}`)
	if code != http.StatusOK || payload.SelectedOption == nil || *payload.SelectedOption != 1 {
		t.Fatalf("select = (%d, %+v)", code, payload)
	}

	code, payload = do(t, router, http.MethodPost, "/session/confirm", "")
	if code != http.StatusOK || payload.Phase != quiz.PhaseRevealed {
		t.Fatalf("confirm = (%d, %+v)", code, payload)
	}
	if payload.Correct == nil || *payload.Correct {
		t.Fatalf("expected a wrong answer, got %+v", payload.Correct)
	}
	if payload.Question.CorrectIndex == nil || *payload.Question.CorrectIndex != 0 {
		t.Fatalf("expected revealed correct index 0, got %+v", payload.Question)
	}
	if payload.Question.Explanation == "" {
		t.Fatalf("expected explanation after reveal")
	}
}

func TestRejectedIntentsMapToStatusCodes(t *testing.T) {
	router := NewRouter(newTestService(nil))

	tests := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{name: "confirm without selection", path: "/session/confirm", status: http.StatusConflict},
		{name: "advance while answering", path: "/session/advance", status: http.StatusConflict},
		{name: "option out of range", path: "/session/select", body: `{"option":7}`, status: http.StatusBadRequest},
		{name: "missing option", path: "/session/select", body: `{}`, status: http.StatusBadRequest},
		{name: "malformed body", path: "/session/select", body: `{`, status: http.StatusBadRequest},
	}

	for _, tc := range tests {
		code, _ := do(t, router, http.MethodPost, tc.path, tc.body)
		if code != tc.status {
			t.Fatalf("%s: status = %d, want %d", tc.name, code, tc.status)
		}
	}

	_, payload := do(t, router, http.MethodGet, "/session", "")
	if payload.Phase != quiz.PhaseAnswering || payload.SelectedOption != nil || len(payload.AnswerLog) != 0 {
		t.Fatalf("rejections changed the session: %+v", payload)
	}
}

func TestHintAndFiftyFifty(t *testing.T) {
	router := NewRouter(newTestService(nil))

	_, payload := do(t, router, http.MethodPost, "/session/hint", "")
	if payload.Question.Hint == "" || payload.HintsUsed != 1 {
		t.Fatalf("expected hint to be shown: %+v", payload)
	}

	code, payload := do(t, router, http.MethodPost, "/session/fifty-fifty", "")
	if code != http.StatusOK || len(payload.Eliminated) != 2 {
		t.Fatalf("fifty-fifty = (%d, %+v)", code, payload)
	}
	for _, idx := range payload.Eliminated {
		if idx == 0 {
			t.Fatalf("correct option was eliminated: %v", payload.Eliminated)
		}
	}

	if code, _ := do(t, router, http.MethodPost, "/session/fifty-fifty", ""); code != http.StatusConflict {
		t.Fatalf("second fifty-fifty status = %d, want %d", code, http.StatusConflict)
	}
}

func TestCompletePassIsRecorded(t *testing.T) {
	results := &memResults{}
	router := NewRouter(newTestService(results))

	var payload sessionResponse
	for range 5 {
		if code, _ := do(t, router, http.MethodPost, "/session/skip", ""); code != http.StatusOK {
			t.Fatalf("skip status = %d", code)
		}
		_, payload = do(t, router, http.MethodPost, "/session/advance", "")
	}

	if payload.Phase != quiz.PhaseComplete || payload.Question != nil {
		t.Fatalf("expected complete session, got %+v", payload)
	}
	if payload.Result == nil || payload.Result.Skipped != 5 || payload.Result.Grade != quiz.GradeNeedsImprovement {
		t.Fatalf("unexpected result %+v", payload.Result)
	}
	if len(results.results) != 1 || results.results[0].PassID != payload.PassID {
		t.Fatalf("pass was not recorded: %+v", results.results)
	}

	req := httptest.NewRequest(http.MethodGet, "/results?limit=5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	var listed resultsResponse
	if err := json.NewDecoder(rec.Body).Decode(&listed); err != nil {
		t.Fatalf("decode results: %v", err)
	}
	if len(listed.Results) != 1 {
		t.Fatalf("expected 1 listed result, got %d", len(listed.Results))
	}

	_, payload = do(t, router, http.MethodPost, "/session/reset", "")
	if payload.Phase != quiz.PhaseAnswering || payload.Result != nil || payload.Score != 0 {
		t.Fatalf("reset did not start a new pass: %+v", payload)
	}
}

func TestFailedRecordKeepsResultPending(t *testing.T) {
	results := &memResults{saveErr: errors.New("disk full")}
	router := NewRouter(newTestService(results))

	var code int
	var payload sessionResponse
	for range 5 {
		do(t, router, http.MethodPost, "/session/skip", "")
		code, payload = do(t, router, http.MethodPost, "/session/advance", "")
	}
	if code != http.StatusOK {
		t.Fatalf("final advance status = %d, want %d", code, http.StatusOK)
	}
	if payload.Phase != quiz.PhaseComplete || payload.Result == nil {
		t.Fatalf("expected complete session with a result, got %+v", payload)
	}
	if !strings.Contains(payload.RecordError, "disk full") {
		t.Fatalf("record_error = %q", payload.RecordError)
	}

	_, payload = do(t, router, http.MethodGet, "/session", "")
	if payload.Result == nil || payload.RecordError == "" {
		t.Fatalf("pending result lost: %+v", payload)
	}

	results.setSaveErr(nil)
	code, payload = do(t, router, http.MethodPost, "/session/record", "")
	if code != http.StatusOK || payload.RecordError != "" || payload.Result == nil {
		t.Fatalf("record = (%d, %+v)", code, payload)
	}
	if len(results.results) != 1 || results.results[0].PassID != payload.PassID {
		t.Fatalf("pass was not recorded: %+v", results.results)
	}

	if code, _ := do(t, router, http.MethodPost, "/session/record", ""); code != http.StatusConflict {
		t.Fatalf("record without pending result status = %d, want %d", code, http.StatusConflict)
	}
}

func TestParseLimit(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/results", nil)
	if got, err := parseLimit(req, 10); err != nil || got != 10 {
		t.Fatalf("default parseLimit = (%d, %v), want (10, nil)", got, err)
	}

	req = httptest.NewRequest(http.MethodGet, "/results?limit=-1", nil)
	if got, err := parseLimit(req, 10); err != nil || got != -1 {
		t.Fatalf("negative parseLimit = (%d, %v), want (-1, nil)", got, err)
	}

	req = httptest.NewRequest(http.MethodGet, "/results?limit=abc", nil)
	if _, err := parseLimit(req, 10); err == nil {
		t.Fatalf("expected integer validation error")
	}
}

func TestResultsWithoutHistory(t *testing.T) {
	router := NewRouter(newTestService(nil))
	req := httptest.NewRequest(http.MethodGet, "/results", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"results":[]`) {
		t.Fatalf("results = (%d, %s)", rec.Code, rec.Body.String())
	}
}

func TestServiceUnavailable(t *testing.T) {
	api := NewAPI(nil)
	rec := httptest.NewRecorder()
	api.HandleSession(rec, httptest.NewRequest(http.MethodGet, "/session", nil))

	if rec.Code != http.StatusInternalServerError || !strings.Contains(rec.Body.String(), "quiz service unavailable") {
		t.Fatalf("unexpected response: %d %s", rec.Code, rec.Body.String())
	}
}
