package watsonx

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bipbipboopboop/ielts-progressor/internal/generation"
)

const apiKeyGrantType = "urn:ibm:params:oauth:grant-type:apikey"

// TokenProvider exchanges a static API key for a short-lived bearer token.
// Tokens are not cached: every call performs a fresh exchange.
type TokenProvider struct {
	apiKey     string
	tokenURL   string
	httpClient *http.Client
	log        *slog.Logger
}

// NewTokenProvider creates a TokenProvider for the given IAM endpoint.
func NewTokenProvider(apiKey, tokenURL string, timeout time.Duration, logger *slog.Logger) *TokenProvider {
	return &TokenProvider{
		apiKey:     apiKey,
		tokenURL:   tokenURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "watsonx_iam"),
	}
}

// tokenResponse represents the response from the IAM token endpoint.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// errorResponse represents the IAM error format.
type errorResponse struct {
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

// Token performs the API key grant and returns the access token.
func (p *TokenProvider) Token(ctx context.Context) (string, error) {
	data := url.Values{}
	data.Set("grant_type", apiKeyGrantType)
	data.Set("apikey", p.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return "", fmt.Errorf("watsonx: create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.ErrorContext(ctx, "token exchange failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("watsonx: token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("watsonx: read token response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp errorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.ErrorCode != "" {
			p.log.ErrorContext(ctx, "token exchange failed",
				slog.Int("status", resp.StatusCode),
				slog.String("error_code", errResp.ErrorCode),
				slog.String("error", errResp.ErrorMessage))
		} else {
			p.log.ErrorContext(ctx, "token exchange failed", slog.Int("status", resp.StatusCode))
		}
		return "", fmt.Errorf("watsonx: token endpoint returned status %d", resp.StatusCode)
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", fmt.Errorf("watsonx: decode token response: %w: %w", generation.ErrMalformedResponse, err)
	}

	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("watsonx: token response without access_token: %w", generation.ErrMalformedResponse)
	}

	return tokenResp.AccessToken, nil
}
