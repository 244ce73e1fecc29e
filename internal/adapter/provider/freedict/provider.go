package freedict

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
)

const defaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

// Provider looks up word meanings in the FreeDictionary API.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider with the default FreeDictionary API URL.
func NewProvider(logger *slog.Logger) *Provider {
	return NewProviderWithURL(defaultBaseURL, 10*time.Second, logger)
}

// NewProviderWithURL creates a Provider with a custom base URL and timeout.
func NewProviderWithURL(baseURL string, timeout time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "freedict"),
	}
}

// LookupMeanings returns a meaning for every word. Words the dictionary does
// not know map to an empty string. Lookups run one after another.
func (p *Provider) LookupMeanings(ctx context.Context, words []string) (map[string]string, error) {
	out := make(map[string]string, len(words))
	for _, w := range words {
		if _, ok := out[w]; ok {
			continue
		}
		meaning, err := p.fetchMeaning(ctx, w)
		if err != nil {
			return nil, err
		}
		out[w] = meaning
	}
	return out, nil
}

func (p *Provider) fetchMeaning(ctx context.Context, word string) (string, error) {
	reqURL := p.baseURL + "/" + url.PathEscape(strings.ToLower(word))

	p.log.DebugContext(ctx, "freedict request", slog.String("word", word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("freedict: create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.ErrorContext(ctx, "freedict request failed", slog.String("word", word), slog.String("error", err.Error()))
		return "", fmt.Errorf("freedict: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("freedict: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("freedict: read body: %w", err)
	}

	var entries []apiEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return "", fmt.Errorf("freedict: decode json: %w", err)
	}

	meaning := firstMeaning(entries)

	p.log.DebugContext(ctx, "freedict response",
		slog.String("word", word),
		slog.Int("entries", len(entries)),
		slog.Bool("found", meaning != ""),
	)

	return meaning, nil
}
