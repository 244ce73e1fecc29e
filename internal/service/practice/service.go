// Package practice implements the two practice operations: generating a
// passage at the learner's level and processing the words they flagged.
package practice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bipbipboopboop/ielts-progressor/internal/domain"
	"github.com/bipbipboopboop/ielts-progressor/internal/generation"
)

// accountRepo defines the profile repository interface needed by practice service.
type accountRepo interface {
	GetByUID(ctx context.Context, uid string) (*domain.Profile, error)
	UpdateScore(ctx context.Context, uid string, score float64) error
}

// attemptRepo defines the attempt repository interface needed by practice service.
type attemptRepo interface {
	Create(ctx context.Context, a *domain.Attempt) (*domain.Attempt, error)
	GetByID(ctx context.Context, uid string, id uuid.UUID) (*domain.Attempt, error)
	GetByIDForUpdate(ctx context.Context, uid string, id uuid.UUID) (*domain.Attempt, error)
	GetInProgress(ctx context.Context, uid string) (*domain.Attempt, error)
	Complete(ctx context.Context, uid string, id uuid.UUID, score float64, unknownWords []string) (*domain.Attempt, error)
	List(ctx context.Context, filter domain.AttemptFilter) ([]*domain.Attempt, error)
}

// txManager defines the transaction manager interface needed by practice service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// generator opens authenticated sessions on the text-generation backend.
type generator interface {
	NewSession(ctx context.Context) (generation.Session, error)
}

// scorer estimates a band from the flagged words.
type scorer interface {
	Estimate(ctx context.Context, sess generation.Session, unknownWords []string) (float64, error)
}

// meaningLookup resolves word meanings. Unknown words map to "".
type meaningLookup interface {
	LookupMeanings(ctx context.Context, words []string) (map[string]string, error)
}

// Service implements practice operations.
type Service struct {
	log       *slog.Logger
	accounts  accountRepo
	attempts  attemptRepo
	tx        txManager
	generator generator
	scorer    scorer
	meanings  meaningLookup
	now       func() time.Time
}

// NewService creates a new practice service instance.
func NewService(
	logger *slog.Logger,
	accounts accountRepo,
	attempts attemptRepo,
	tx txManager,
	gen generator,
	sc scorer,
	meanings meaningLookup,
) *Service {
	return &Service{
		log:       logger.With("service", "practice"),
		accounts:  accounts,
		attempts:  attempts,
		tx:        tx,
		generator: gen,
		scorer:    sc,
		meanings:  meanings,
		now:       time.Now,
	}
}

// internal logs a collaborator failure and returns ErrInternal in its place.
// The original error is never returned to the caller.
func (s *Service) internal(ctx context.Context, op, step string, err error, attrs ...any) error {
	attrs = append(attrs, slog.String("op", op), slog.String("step", step), slog.String("error", err.Error()))
	s.log.ErrorContext(ctx, "practice operation failed", attrs...)
	return fmt.Errorf("%s %s: %w", op, step, domain.ErrInternal)
}
