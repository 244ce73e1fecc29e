// Package anthropic is a generation.Backend backed by the Anthropic Messages API.
package anthropic

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/bipbipboopboop/ielts-progressor/internal/generation"
)

const (
	passageMaxTokens = 500
	scoringMaxTokens = 200
	temperature      = 0.7
)

// Options configures a Client.
type Options struct {
	APIKey       string
	BaseURL      string
	PassageModel string
	ScoringModel string
	HTTPTimeout  time.Duration
}

// Client wraps the SDK client. Credentials are static, so sessions are cheap.
type Client struct {
	client sdk.Client
	opts   Options
	log    *slog.Logger
}

// NewClient creates a Client. Requests are never retried.
func NewClient(opts Options, logger *slog.Logger) *Client {
	reqOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithMaxRetries(0),
		option.WithHTTPClient(&http.Client{Timeout: opts.HTTPTimeout}),
	}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}

	return &Client{
		client: sdk.NewClient(reqOpts...),
		opts:   opts,
		log:    logger.With("adapter", "anthropic"),
	}
}

// NewSession returns a session bound to the client.
func (c *Client) NewSession(_ context.Context) (generation.Session, error) {
	return &Session{client: c}, nil
}

// Session sends prompts through the Messages API.
type Session struct {
	client *Client
}

// Generate sends the prompt as a single user message and returns the first text block.
func (s *Session) Generate(ctx context.Context, req generation.Request) (string, error) {
	c := s.client
	model, maxTokens := c.modelFor(req.Kind)

	start := time.Now()
	msg, err := c.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:       sdk.Model(model),
		MaxTokens:   maxTokens,
		Temperature: sdk.Float(temperature),
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(req.Prompt)),
		},
	})
	if err != nil {
		c.log.ErrorContext(ctx, "messages request failed",
			slog.String("kind", req.Kind.String()),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("anthropic: messages request: %w", err)
	}

	if len(msg.Content) == 0 {
		return "", fmt.Errorf("anthropic: empty content: %w", generation.ErrMalformedResponse)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		b.WriteString(block.Text)
	}
	text := b.String()

	c.log.DebugContext(ctx, "messages response",
		slog.String("kind", req.Kind.String()),
		slog.String("model", model),
		slog.Int("chars", len(text)),
		slog.Duration("elapsed", time.Since(start)),
	)

	return text, nil
}

func (c *Client) modelFor(kind generation.Kind) (string, int64) {
	if kind == generation.KindScoring {
		return c.opts.ScoringModel, scoringMaxTokens
	}
	return c.opts.PassageModel, passageMaxTokens
}
