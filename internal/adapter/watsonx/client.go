// Package watsonx talks to a watsonx.ai text generation deployment.
package watsonx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/bipbipboopboop/ielts-progressor/internal/generation"
)

// tokenSource issues bearer tokens for the generation endpoint.
type tokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Options configures a Client.
type Options struct {
	GenerationURL string
	ProjectID     string
	PassageModel  string
	ScoringModel  string
	HTTPTimeout   time.Duration
}

// Client is a generation.Backend backed by watsonx.ai.
type Client struct {
	tokens     tokenSource
	opts       Options
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client that authenticates through tokens.
func NewClient(tokens tokenSource, opts Options, logger *slog.Logger) *Client {
	return &Client{
		tokens:     tokens,
		opts:       opts,
		httpClient: &http.Client{Timeout: opts.HTTPTimeout},
		log:        logger.With("adapter", "watsonx"),
	}
}

// NewSession fetches a fresh bearer token and binds it to a Session.
func (c *Client) NewSession(ctx context.Context) (generation.Session, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("watsonx.NewSession: %w", err)
	}
	return &Session{client: c, token: token}, nil
}

// Session sends generation requests with a fixed bearer token.
type Session struct {
	client *Client
	token  string
}

// Generate sends the prompt and returns the first generated text.
func (s *Session) Generate(ctx context.Context, req generation.Request) (string, error) {
	c := s.client

	model, maxTokens := c.modelFor(req.Kind)
	payload, err := json.Marshal(newGenerationRequest(req.Prompt, model, c.opts.ProjectID, maxTokens))
	if err != nil {
		return "", fmt.Errorf("watsonx: encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.GenerationURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("watsonx: create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.token)

	c.log.DebugContext(ctx, "generation request",
		slog.String("kind", req.Kind.String()),
		slog.String("model", model),
		slog.Int("max_new_tokens", maxTokens),
	)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.ErrorContext(ctx, "generation request failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("watsonx: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("watsonx: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil {
			code, msg := apiErr.first()
			c.log.ErrorContext(ctx, "generation request rejected",
				slog.Int("status", resp.StatusCode),
				slog.String("code", code),
				slog.String("message", msg))
		}
		return "", fmt.Errorf("watsonx: unexpected status %d", resp.StatusCode)
	}

	var genResp generationResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return "", fmt.Errorf("watsonx: decode json: %w: %w", generation.ErrMalformedResponse, err)
	}

	text, err := genResp.firstText()
	if err != nil {
		return "", fmt.Errorf("watsonx: %w", err)
	}

	c.log.DebugContext(ctx, "generation response",
		slog.String("kind", req.Kind.String()),
		slog.Int("chars", len(text)),
		slog.Duration("elapsed", time.Since(start)),
	)

	return text, nil
}

func (c *Client) modelFor(kind generation.Kind) (model string, maxNewTokens int) {
	if kind == generation.KindScoring {
		return c.opts.ScoringModel, scoringMaxNewTokens
	}
	return c.opts.PassageModel, passageMaxNewTokens
}
