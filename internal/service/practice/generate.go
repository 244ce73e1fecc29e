package practice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bipbipboopboop/ielts-progressor/internal/domain"
	"github.com/bipbipboopboop/ielts-progressor/internal/generation"
	"github.com/bipbipboopboop/ielts-progressor/pkg/ctxutil"
)

// GeneratePracticeText returns a passage at the caller's current level.
// If the caller already has an in-progress attempt it is returned unchanged
// and no remote call is made. Otherwise a new passage is generated and stored.
func (s *Service) GeneratePracticeText(ctx context.Context) (*domain.Attempt, error) {
	const op = "practice.GeneratePracticeText"

	// Step 1: Require identity
	uid, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	// Step 2: Load profile
	profile, err := s.accounts.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "profile missing for authenticated identity", slog.String("user_id", uid))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return nil, s.internal(ctx, op, "load profile", err, slog.String("user_id", uid))
	}
	score := profile.CurrentScore()

	// Step 3: Resume in-progress attempt
	current, err := s.attempts.GetInProgress(ctx, uid)
	switch {
	case err == nil:
		s.log.DebugContext(ctx, "resuming in-progress attempt",
			slog.String("user_id", uid),
			slog.String("attempt_id", current.ID.String()))
		return current, nil
	case !errors.Is(err, domain.ErrNotFound):
		return nil, s.internal(ctx, op, "load in-progress attempt", err, slog.String("user_id", uid))
	}

	// Step 4: Generate passage
	sess, err := s.generator.NewSession(ctx)
	if err != nil {
		return nil, s.internal(ctx, op, "open session", err, slog.String("user_id", uid))
	}

	text, err := sess.Generate(ctx, generation.Request{Kind: generation.KindPassage, Prompt: PassagePrompt(score)})
	if err != nil {
		return nil, s.internal(ctx, op, "generate passage", err, slog.String("user_id", uid))
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, s.internal(ctx, op, "generate passage", generation.ErrMalformedResponse, slog.String("user_id", uid))
	}

	// Step 5: Persist attempt
	attempt := domain.NewAttempt(uid, text, score, s.now())
	created, err := s.attempts.Create(ctx, &attempt)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			// A concurrent call stored its attempt first.
			winner, getErr := s.attempts.GetInProgress(ctx, uid)
			if getErr != nil {
				return nil, s.internal(ctx, op, "load concurrent attempt", getErr, slog.String("user_id", uid))
			}
			return winner, nil
		}
		return nil, s.internal(ctx, op, "store attempt", err, slog.String("user_id", uid))
	}

	s.log.InfoContext(ctx, "practice text generated",
		slog.String("user_id", uid),
		slog.String("attempt_id", created.ID.String()),
		slog.String("score", domain.FormatScore(score)))

	return created, nil
}
