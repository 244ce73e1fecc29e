package practice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bipbipboopboop/ielts-progressor/internal/domain"
	"github.com/bipbipboopboop/ielts-progressor/pkg/ctxutil"
)

// ProcessSelectedWords completes an attempt with the words the caller flagged.
// The new score is estimated remotely; the profile score and the attempt are
// then updated in one transaction. Submitting an already completed attempt
// returns its stored outcome without remote calls or writes.
func (s *Service) ProcessSelectedWords(ctx context.Context, input ProcessSelectedWordsInput) (*domain.SubmissionResult, error) {
	const op = "practice.ProcessSelectedWords"

	// Step 1: Require identity
	uid, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	// Step 2: Validate input
	id, words, err := input.Validate()
	if err != nil {
		return nil, err
	}

	// Step 3: Load attempt
	attempt, err := s.attempts.GetByID(ctx, uid, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return nil, s.internal(ctx, op, "load attempt", err,
			slog.String("user_id", uid), slog.String("attempt_id", id.String()))
	}

	// Step 4: Completed attempts return their stored outcome
	if attempt.Completed {
		s.log.InfoContext(ctx, "attempt already completed",
			slog.String("user_id", uid), slog.String("attempt_id", id.String()))
		return s.outcome(ctx, op, attempt)
	}

	// Step 5: Estimate new score
	sess, err := s.generator.NewSession(ctx)
	if err != nil {
		return nil, s.internal(ctx, op, "open session", err, slog.String("user_id", uid))
	}

	score, err := s.scorer.Estimate(ctx, sess, words)
	if err != nil {
		return nil, s.internal(ctx, op, "estimate score", err,
			slog.String("user_id", uid), slog.String("attempt_id", id.String()))
	}

	// Step 6: Update profile score and complete attempt atomically
	var completed *domain.Attempt
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		locked, err := s.attempts.GetByIDForUpdate(txCtx, uid, id)
		if err != nil {
			return fmt.Errorf("lock attempt: %w", err)
		}
		if locked.Completed {
			// A concurrent submission committed first; keep its outcome.
			completed = locked
			return nil
		}

		if err := s.accounts.UpdateScore(txCtx, uid, score); err != nil {
			return fmt.Errorf("update score: %w", err)
		}

		completed, err = s.attempts.Complete(txCtx, uid, id, score, words)
		if err != nil {
			return fmt.Errorf("complete attempt: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, s.internal(ctx, op, "store outcome", err,
			slog.String("user_id", uid), slog.String("attempt_id", id.String()))
	}

	s.log.InfoContext(ctx, "attempt completed",
		slog.String("user_id", uid),
		slog.String("attempt_id", id.String()),
		slog.Float64("new_score", completed.Score),
		slog.Int("unknown_words", len(completed.UnknownWords)))

	// Step 7: Look up meanings
	return s.outcome(ctx, op, completed)
}

// outcome builds the submission result of a completed attempt.
func (s *Service) outcome(ctx context.Context, op string, attempt *domain.Attempt) (*domain.SubmissionResult, error) {
	meanings := map[string]string{}
	if len(attempt.UnknownWords) > 0 {
		found, err := s.meanings.LookupMeanings(ctx, attempt.UnknownWords)
		if err != nil {
			return nil, s.internal(ctx, op, "lookup meanings", err,
				slog.String("attempt_id", attempt.ID.String()))
		}
		for _, w := range attempt.UnknownWords {
			meanings[w] = found[w]
		}
	}

	return &domain.SubmissionResult{
		Attempt:      attempt,
		NewScore:     attempt.Score,
		UnknownWords: meanings,
	}, nil
}
