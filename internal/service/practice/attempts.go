package practice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bipbipboopboop/ielts-progressor/internal/domain"
	"github.com/bipbipboopboop/ielts-progressor/pkg/ctxutil"
)

// CurrentAttempt returns the caller's in-progress attempt.
// Returns ErrNotFound if there is none.
func (s *Service) CurrentAttempt(ctx context.Context) (*domain.Attempt, error) {
	const op = "practice.CurrentAttempt"

	uid, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	a, err := s.attempts.GetInProgress(ctx, uid)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return nil, s.internal(ctx, op, "load attempt", err, slog.String("user_id", uid))
	}
	return a, nil
}

// GetAttempt returns one of the caller's attempts by id.
func (s *Service) GetAttempt(ctx context.Context, id uuid.UUID) (*domain.Attempt, error) {
	const op = "practice.GetAttempt"

	uid, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	a, err := s.attempts.GetByID(ctx, uid, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return nil, s.internal(ctx, op, "load attempt", err,
			slog.String("user_id", uid), slog.String("attempt_id", id.String()))
	}
	return a, nil
}

// ListAttempts returns the caller's attempts, newest first.
func (s *Service) ListAttempts(ctx context.Context, input ListAttemptsInput) ([]*domain.Attempt, error) {
	const op = "practice.ListAttempts"

	uid, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	list, err := s.attempts.List(ctx, domain.AttemptFilter{
		UID:       uid,
		Completed: input.Completed,
		Limit:     input.Limit,
	})
	if err != nil {
		return nil, s.internal(ctx, op, "list attempts", err, slog.String("user_id", uid))
	}
	return list, nil
}
