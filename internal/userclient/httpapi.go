package userclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"eduquiz/internal/quiz"
)

var ErrServiceUnavailable = errors.New("quiz service unavailable")

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return e.Message
}

// Rejected reports whether the server refused an intent in the current state.
func (e *APIError) Rejected() bool {
	return e.StatusCode == http.StatusConflict || e.StatusCode == http.StatusBadRequest
}

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

type questionItem struct {
	ID           string   `json:"id"`
	Category     string   `json:"category"`
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	Hint         string   `json:"hint,omitempty"`
	CorrectIndex *int     `json:"correct_index,omitempty"`
	Explanation  string   `json:"explanation,omitempty"`
	SkippedHere  bool     `json:"skipped_here,omitempty"`
}

type sessionState struct {
	PassID         string        `json:"pass_id"`
	Phase          quiz.Phase    `json:"phase"`
	QuestionIndex  int           `json:"question_index"`
	QuestionCount  int           `json:"question_count"`
	Question       *questionItem `json:"question,omitempty"`
	SelectedOption *int          `json:"selected_option,omitempty"`
	Eliminated     []int         `json:"eliminated"`
	Score          int           `json:"score"`
	HintsUsed      int           `json:"hints_used"`
	FiftyFiftyUsed int           `json:"fifty_fifty_used"`
	Skipped        int           `json:"skipped"`
	Correct        *bool         `json:"correct,omitempty"`
	Result         *quiz.Result  `json:"result,omitempty"`
	RecordError    string        `json:"record_error,omitempty"`
}

type resultsResponse struct {
	Results []quiz.Result `json:"results"`
}

type selectRequest struct {
	Option int `json:"option"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewHTTPClient(baseURL string, httpClient *http.Client) *HTTPClient {
	baseURL = strings.TrimSpace(baseURL)
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = defaultServer
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (c *HTTPClient) Session(ctx context.Context) (sessionState, error) {
	var state sessionState
	err := c.doJSON(ctx, http.MethodGet, "/session", nil, &state)
	return state, err
}

func (c *HTTPClient) Select(ctx context.Context, option int) (sessionState, error) {
	var state sessionState
	err := c.doJSON(ctx, http.MethodPost, "/session/select", selectRequest{Option: option}, &state)
	return state, err
}

// Intent posts a body-less intent such as "confirm" or "advance".
func (c *HTTPClient) Intent(ctx context.Context, name string) (sessionState, error) {
	var state sessionState
	err := c.doJSON(ctx, http.MethodPost, "/session/"+url.PathEscape(name), nil, &state)
	return state, err
}

func (c *HTTPClient) Results(ctx context.Context, limit int) ([]quiz.Result, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))

	var payload resultsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/results?"+query.Encode(), nil, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, requestBody any, responseBody any) error {
	fullURL := c.baseURL + path

	var body io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return err
	}
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		apiErr := APIError{StatusCode: response.StatusCode}
		var payload errorResponse
		if err := json.NewDecoder(response.Body).Decode(&payload); err == nil && strings.TrimSpace(payload.Error) != "" {
			apiErr.Message = payload.Error
		}
		if apiErr.Message == "" {
			apiErr.Message = response.Status
		}
		return &apiErr
	}

	if responseBody == nil {
		return nil
	}
	return json.NewDecoder(response.Body).Decode(responseBody)
}
