// Package scoring estimates a learner's IELTS band from the words they could not read.
package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/bipbipboopboop/ielts-progressor/internal/domain"
	"github.com/bipbipboopboop/ielts-progressor/internal/generation"
)

// ErrUnparsableScore is returned when the model reply has no leading number.
var ErrUnparsableScore = errors.New("unparsable score")

// leadingNumber matches the longest decimal prefix a float parser would accept.
var leadingNumber = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// Service turns a list of unknown words into a score through a generation session.
type Service struct {
	log *slog.Logger
}

// NewService creates a new scoring service.
func NewService(logger *slog.Logger) *Service {
	return &Service{log: logger.With("service", "scoring")}
}

// Estimate asks the model for a band given the ordered list of unknown words.
// The reply is parsed, not validated: values outside the band scale are returned as-is.
func (s *Service) Estimate(ctx context.Context, sess generation.Session, unknownWords []string) (float64, error) {
	// Step 1: Build prompt
	prompt, err := BuildPrompt(unknownWords)
	if err != nil {
		return 0, fmt.Errorf("scoring.Estimate: %w", err)
	}

	// Step 2: Ask the model
	reply, err := sess.Generate(ctx, generation.Request{Kind: generation.KindScoring, Prompt: prompt})
	if err != nil {
		return 0, fmt.Errorf("scoring.Estimate generate: %w", err)
	}

	// Step 3: Parse
	score, err := ParseScore(reply)
	if err != nil {
		s.log.WarnContext(ctx, "score reply not numeric",
			slog.String("reply", truncate(reply, 80)),
			slog.Int("unknown_words", len(unknownWords)))
		return 0, fmt.Errorf("scoring.Estimate: %w", err)
	}

	s.log.DebugContext(ctx, "score estimated",
		slog.Float64("score", score),
		slog.Int("unknown_words", len(unknownWords)))

	return score, nil
}

// BuildPrompt renders the scoring prompt. The words are embedded verbatim as a JSON array.
func BuildPrompt(unknownWords []string) (string, error) {
	if unknownWords == nil {
		unknownWords = []string{}
	}
	list, err := json.Marshal(unknownWords)
	if err != nil {
		return "", fmt.Errorf("encode unknown words: %w", err)
	}

	scale := domain.ScoreScale()
	bands := make([]string, len(scale))
	for i, b := range scale {
		bands[i] = domain.FormatScore(b)
	}

	var sb strings.Builder
	sb.WriteString("A student read a short passage and marked the words they did not understand. ")
	sb.WriteString("Based on these words, estimate the student's IELTS reading band. ")
	sb.WriteString("Answer with exactly one of the following values: ")
	sb.WriteString(strings.Join(bands, ", "))
	sb.WriteString(". Reply with the number ONLY, no explanations.\n")
	sb.WriteString("Unknown words: ")
	sb.Write(list)

	return sb.String(), nil
}

// ParseScore reads a score the way a lenient float parser does: surrounding
// whitespace is ignored and the longest leading decimal prefix is used.
func ParseScore(reply string) (float64, error) {
	prefix := leadingNumber.FindString(strings.TrimSpace(reply))
	if prefix == "" {
		return 0, ErrUnparsableScore
	}

	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnparsableScore, err)
	}
	return v, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
