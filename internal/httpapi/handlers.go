package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"eduquiz/internal/quiz"
)

const defaultListLimit = 10

func (a *API) HandleSession(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session == nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "quiz service unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, a.snapshotResponse())
}

func (a *API) HandleSelect(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var request selectRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if request.Option == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "option is required"})
		return
	}

	option := *request.Option
	a.intent(func(context.Context) error {
		return a.session.SelectOption(option)
	})(w, r)
}

// intent runs apply under the session lock and answers with the new state.
// A rejected intent leaves the session untouched.
func (a *API) intent(apply func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		defer a.mu.Unlock()

		if a.session == nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "quiz service unavailable"})
			return
		}
		if err := apply(r.Context()); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, a.snapshotResponse())
	}
}

func (a *API) snapshotResponse() sessionResponse {
	response := toSessionResponse(a.session.Snapshot(), a.lastResult)
	if a.recordErr != nil {
		response.RecordError = a.recordErr.Error()
	}
	return response
}

func (a *API) confirm(context.Context) error {
	return a.session.Confirm()
}

func (a *API) hint(context.Context) error {
	return a.session.RequestHint()
}

func (a *API) fiftyFifty(context.Context) error {
	return a.session.UseFiftyFifty()
}

func (a *API) skip(context.Context) error {
	return a.session.Skip()
}

// advance completes the pass after the last question and tries to record it.
// A failed save does not undo the transition; the result stays pending until
// record succeeds.
func (a *API) advance(ctx context.Context) error {
	if err := a.session.Advance(); err != nil {
		return err
	}
	if a.session.Phase() != quiz.PhaseComplete {
		return nil
	}
	result, err := a.service.BuildResult(a.session)
	if err != nil {
		return err
	}
	a.lastResult = &result
	a.recordErr = a.service.Record(ctx, result)
	return nil
}

// record retries storing a completed pass whose save failed.
func (a *API) record(ctx context.Context) error {
	if a.lastResult == nil || a.recordErr == nil {
		return fmt.Errorf("%w: no pending result to record", quiz.ErrInvalidTransition)
	}
	a.recordErr = a.service.Record(ctx, *a.lastResult)
	return nil
}

func (a *API) reset(context.Context) error {
	a.session.Reset()
	a.lastResult = nil
	a.recordErr = nil
	return nil
}

func (a *API) HandleResults(w http.ResponseWriter, r *http.Request) {
	if a.service == nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "quiz service unavailable"})
		return
	}

	limit, err := parseLimit(r, a.historyLimit)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	results, err := a.service.RecentResults(r.Context(), limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to list results"})
		return
	}
	if results == nil {
		results = []quiz.Result{}
	}
	writeJSON(w, http.StatusOK, resultsResponse{Results: results})
}
