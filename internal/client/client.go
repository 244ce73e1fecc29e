// Package client is a typed HTTP client for the practice API.
package client

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
	"sync"
	"time"
)

// Error statuses reported by the API.
const (
	StatusUnauthenticated = "UNAUTHENTICATED"
	StatusNotFound        = "NOT_FOUND"
	StatusInvalidArgument = "INVALID_ARGUMENT"
	StatusAlreadyExists   = "ALREADY_EXISTS"
	StatusInternal        = "INTERNAL"
)

const maxResponseBytes = 1 << 20

// APIError is an error envelope returned by the server.
type APIError struct {
	HTTPStatus int
	Status     string
	Message    string
	Details    []FieldError
}

// FieldError is one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d %s: %s", e.HTTPStatus, e.Status, e.Message)
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// Client calls the practice API. The access token obtained by Login or
// Register is attached to every later request.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

// New creates a Client for the server at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SetToken replaces the access token.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the current access token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// ---------------------------------------------------------------------------
// Identity
// ---------------------------------------------------------------------------

// Identity is the signed-in user.
type Identity struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

type authResponse struct {
	AccessToken string   `json:"accessToken"`
	Identity    Identity `json:"identity"`
}

// Register creates an identity and signs in as it.
func (c *Client) Register(ctx context.Context, email, password, displayName string) (*Identity, error) {
	body := map[string]string{"email": email, "password": password, "displayName": displayName}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", body, &resp); err != nil {
		return nil, fmt.Errorf("client.Register: %w", err)
	}
	c.SetToken(resp.AccessToken)
	return &resp.Identity, nil
}

// Login signs in with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (*Identity, error) {
	body := map[string]string{"email": email, "password": password}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return nil, fmt.Errorf("client.Login: %w", err)
	}
	c.SetToken(resp.AccessToken)
	return &resp.Identity, nil
}

// ---------------------------------------------------------------------------
// Practice
// ---------------------------------------------------------------------------

// VocabularyItem is a word and its meaning.
type VocabularyItem struct {
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
}

// Attempt is a generated passage and its outcome. Times are epoch milliseconds.
type Attempt struct {
	ID             string           `json:"id"`
	Text           string           `json:"text"`
	UID            string           `json:"uid"`
	Score          float64          `json:"score"`
	CreatedAt      int64            `json:"createdAt"`
	Completed      bool             `json:"completed"`
	SuggestedWords []VocabularyItem `json:"suggested_words"`
	UnknownWords   []string         `json:"unknown_words"`
	CompletedAt    *int64           `json:"completedAt,omitempty"`
}

// Submission is the outcome of processSelectedWords.
type Submission struct {
	Success      bool              `json:"success"`
	NewScore     float64           `json:"newScore"`
	UnknownWords map[string]string `json:"unknownWords"`
}

// Profile is the caller's proficiency record.
type Profile struct {
	UID         string           `json:"uid"`
	Email       *string          `json:"email"`
	DisplayName string           `json:"displayName"`
	Score       float64          `json:"score"`
	Vocabulary  []VocabularyItem `json:"vocabulary"`
	CreatedAt   int64            `json:"createdAt"`
}

// GeneratePracticeText returns the in-progress attempt, generating one if needed.
func (c *Client) GeneratePracticeText(ctx context.Context) (*Attempt, error) {
	var a Attempt
	if err := c.call(ctx, "/v1/generatePracticeText", struct{}{}, &a); err != nil {
		return nil, fmt.Errorf("client.GeneratePracticeText: %w", err)
	}
	return &a, nil
}

// ProcessSelectedWords submits the words flagged on an attempt.
func (c *Client) ProcessSelectedWords(ctx context.Context, attemptID string, words []string) (*Submission, error) {
	if words == nil {
		words = []string{}
	}
	req := struct {
		SelectedWords   []string `json:"selectedWords"`
		GeneratedTextID string   `json:"generatedTextId"`
	}{SelectedWords: words, GeneratedTextID: attemptID}

	var s Submission
	if err := c.call(ctx, "/v1/processSelectedWords", req, &s); err != nil {
		return nil, fmt.Errorf("client.ProcessSelectedWords: %w", err)
	}
	return &s, nil
}

// Profile returns the caller's profile.
func (c *Client) Profile(ctx context.Context) (*Profile, error) {
	var p Profile
	if err := c.get(ctx, "/v1/profile", &p); err != nil {
		return nil, fmt.Errorf("client.Profile: %w", err)
	}
	return &p, nil
}

// CurrentAttempt returns the in-progress attempt. A NOT_FOUND APIError means
// there is none.
func (c *Client) CurrentAttempt(ctx context.Context) (*Attempt, error) {
	var a Attempt
	if err := c.get(ctx, "/v1/attempts/current", &a); err != nil {
		return nil, fmt.Errorf("client.CurrentAttempt: %w", err)
	}
	return &a, nil
}

// GetAttempt returns one of the caller's attempts.
func (c *Client) GetAttempt(ctx context.Context, id string) (*Attempt, error) {
	var a Attempt
	if err := c.get(ctx, "/v1/attempts/"+url.PathEscape(id), &a); err != nil {
		return nil, fmt.Errorf("client.GetAttempt: %w", err)
	}
	return &a, nil
}

// ListAttempts returns the caller's attempts, newest first. A nil completed
// lists both states; limit 0 uses the server default.
func (c *Client) ListAttempts(ctx context.Context, completed *bool, limit int) ([]Attempt, error) {
	q := url.Values{}
	if completed != nil {
		q.Set("completed", strconv.FormatBool(*completed))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	path := "/v1/attempts"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out []Attempt
	if err := c.get(ctx, path, &out); err != nil {
		return nil, fmt.Errorf("client.ListAttempts: %w", err)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Transport
// ---------------------------------------------------------------------------

type resultEnvelope struct {
	Result json.RawMessage `json:"result"`
}

type errorEnvelope struct {
	Error *struct {
		Status  string       `json:"status"`
		Message string       `json:"message"`
		Details []FieldError `json:"details"`
	} `json:"error"`
}

// call posts {"data": in} and decodes the "result" member into out.
func (c *Client) call(ctx context.Context, path string, in, out any) error {
	var env resultEnvelope
	if err := c.do(ctx, http.MethodPost, path, map[string]any{"data": in}, &env); err != nil {
		return err
	}
	return decodeResult(env, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	var env resultEnvelope
	if err := c.do(ctx, http.MethodGet, path, nil, &env); err != nil {
		return err
	}
	return decodeResult(env, out)
}

func decodeResult(env resultEnvelope, out any) error {
	if len(env.Result) == 0 {
		return fmt.Errorf("response without result")
	}
	if err := json.Unmarshal(env.Result, out); err != nil {
		return fmt.Errorf("decode result: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseAPIError(resp.StatusCode, data)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseAPIError(code int, data []byte) error {
	apiErr := &APIError{HTTPStatus: code, Status: StatusInternal, Message: http.StatusText(code)}

	var env errorEnvelope
	if err := json.Unmarshal(data, &env); err == nil && env.Error != nil {
		apiErr.Status = env.Error.Status
		apiErr.Message = env.Error.Message
		apiErr.Details = env.Error.Details
	}
	return apiErr
}
