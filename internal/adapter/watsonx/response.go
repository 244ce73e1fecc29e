package watsonx

import (
	"fmt"

	"github.com/bipbipboopboop/ielts-progressor/internal/generation"
)

// generationResponse is the subset of the text generation reply that is used.
type generationResponse struct {
	ModelID string             `json:"model_id"`
	Results []generationResult `json:"results"`
}

type generationResult struct {
	GeneratedText       string `json:"generated_text"`
	GeneratedTokenCount int    `json:"generated_token_count"`
	StopReason          string `json:"stop_reason"`
}

// firstText returns the first generated string, or ErrMalformedResponse when
// the reply carries no results.
func (r *generationResponse) firstText() (string, error) {
	if r.Results == nil {
		return "", fmt.Errorf("missing results: %w", generation.ErrMalformedResponse)
	}
	if len(r.Results) == 0 {
		return "", fmt.Errorf("empty results: %w", generation.ErrMalformedResponse)
	}
	return r.Results[0].GeneratedText, nil
}

// apiError is the error body returned by the generation endpoint.
type apiError struct {
	Errors []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
	StatusCode int `json:"status_code"`
}

func (e apiError) first() (code, message string) {
	if len(e.Errors) == 0 {
		return "", ""
	}
	return e.Errors[0].Code, e.Errors[0].Message
}
