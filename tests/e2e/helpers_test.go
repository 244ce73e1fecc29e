//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/bipbipboopboop/ielts-progressor/internal/adapter/postgres/testhelper"
	"github.com/bipbipboopboop/ielts-progressor/internal/app"
	"github.com/bipbipboopboop/ielts-progressor/internal/config"
)

const (
	testPassage = "Ubiquitous devices shape how students prepare for the exam. " +
		"Many candidates practise daily. Some rely on printed books. Others prefer podcasts."
	passageModel = "test/passage-model"
	scoringModel = "test/scoring-model"
	hookSecret   = "test-hook-secret"
)

// ---------------------------------------------------------------------------
// fakeWatsonx serves the IAM token and text generation endpoints.
// ---------------------------------------------------------------------------

type fakeWatsonx struct {
	*httptest.Server

	mu           sync.Mutex
	scoreReply   string
	tokenCalls   int
	passageCalls int
	scoringCalls int
	lastScoring  string
}

func newFakeWatsonx(t *testing.T) *fakeWatsonx {
	t.Helper()

	f := &fakeWatsonx{scoreReply: "7.5"}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /identity/token", f.token)
	mux.HandleFunc("POST /ml/v1/text/generation", f.generate)
	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Close)
	return f
}

func (f *fakeWatsonx) token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil || r.PostForm.Get("apikey") == "" {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	f.mu.Lock()
	f.tokenCalls++
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"access_token":"fake-iam-token","token_type":"Bearer","expires_in":3600}`))
}

func (f *fakeWatsonx) generate(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "Bearer fake-iam-token" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Input   string `json:"input"`
		ModelID string `json:"model_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	text := testPassage
	if req.ModelID == scoringModel {
		f.scoringCalls++
		f.lastScoring = req.Input
		text = f.scoreReply
	} else {
		f.passageCalls++
	}
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"model_id": req.ModelID,
		"results":  []map[string]any{{"generated_text": text, "stop_reason": "eos_token"}},
	})
}

func (f *fakeWatsonx) setScoreReply(s string) {
	f.mu.Lock()
	f.scoreReply = s
	f.mu.Unlock()
}

func (f *fakeWatsonx) counts() (token, passage, scoring int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tokenCalls, f.passageCalls, f.scoringCalls
}

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL     string
	Client  *http.Client
	Pool    *pgxpool.Pool
	Watsonx *fakeWatsonx
	app     *app.Container
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// setupTestServer bootstraps the application stack backed by a real
// PostgreSQL container and a fake generation backend.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	wx := newFakeWatsonx(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:        "test-secret-at-least-32-chars-long!!",
			JWTIssuer:        "test-issuer",
			AccessTokenTTL:   15 * time.Minute,
			PasswordHashCost: 4,
			HookSecret:       hookSecret,
		},
		Generation: config.GenerationConfig{
			Backend:       config.BackendWatsonx,
			APIKey:        "test-api-key",
			ProjectID:     "test-project",
			TokenURL:      wx.URL + "/identity/token",
			GenerationURL: wx.URL + "/ml/v1/text/generation",
			PassageModel:  passageModel,
			ScoringModel:  scoringModel,
			HTTPTimeout:   5 * time.Second,
		},
		Dictionary: config.DictionaryConfig{Provider: config.DictionaryStub},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         86400,
		},
	}

	c := app.Build(cfg, pool, logger)

	srv := httptest.NewServer(c.Handler)
	t.Cleanup(srv.Close)
	t.Cleanup(c.Dispatcher.Wait)

	return &testServer{
		URL:     srv.URL,
		Client:  srv.Client(),
		Pool:    pool,
		Watsonx: wx,
		app:     c,
	}
}

// register creates an identity, waits for its profile and returns the token.
func (ts *testServer) register(t *testing.T, email string) (token, uid string) {
	t.Helper()

	status, body := ts.post(t, "/auth/register", map[string]string{
		"email": email, "password": "correct-horse", "displayName": "Tester",
	}, "")
	require.Equal(t, http.StatusCreated, status, "register: %v", body)

	ts.app.Dispatcher.Wait()

	identity := body["identity"].(map[string]any)
	return body["accessToken"].(string), identity["id"].(string)
}

// call invokes a callable operation and returns status and decoded body.
func (ts *testServer) call(t *testing.T, path string, data any, token string) (int, map[string]any) {
	t.Helper()
	return ts.post(t, path, map[string]any{"data": data}, token)
}

func (ts *testServer) post(t *testing.T, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	b, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, bytes.NewReader(b))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return ts.do(t, req)
}

func (ts *testServer) get(t *testing.T, path, token string) (int, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return ts.do(t, req)
}

func (ts *testServer) do(t *testing.T, req *http.Request) (int, map[string]any) {
	t.Helper()

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	if resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}
	return resp.StatusCode, out
}

func result(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	r, ok := body["result"].(map[string]any)
	require.True(t, ok, "expected result object, got %v", body)
	return r
}

func errorStatus(t *testing.T, body map[string]any) string {
	t.Helper()
	e, ok := body["error"].(map[string]any)
	require.True(t, ok, "expected error object, got %v", body)
	return e["status"].(string)
}
