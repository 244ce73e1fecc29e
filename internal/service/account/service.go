// Package account owns the Profile lifecycle: creation on identity creation,
// backfill of identities that pre-date the handler, and profile reads.
package account

import (
	"context"
	"log/slog"

	"github.com/bipbipboopboop/ielts-progressor/internal/domain"
)

// accountRepo defines the profile repository interface needed by account service.
type accountRepo interface {
	GetByUID(ctx context.Context, uid string) (*domain.Profile, error)
	Ensure(ctx context.Context, p domain.Profile) (bool, error)
}

// identityLister defines the identity query needed by Backfill.
type identityLister interface {
	ListWithoutAccount(ctx context.Context, limit int) ([]*domain.Identity, error)
}

// Service implements account operations.
type Service struct {
	log        *slog.Logger
	accounts   accountRepo
	identities identityLister
}

// NewService creates a new account service instance.
func NewService(logger *slog.Logger, accounts accountRepo, identities identityLister) *Service {
	return &Service{
		log:        logger.With("service", "account"),
		accounts:   accounts,
		identities: identities,
	}
}
