// Package auth implements the local identity provider: registration, login and
// access-token validation. Every new identity is announced to the account
// lifecycle dispatcher.
package auth

import (
	"context"
	"log/slog"

	"github.com/bipbipboopboop/ielts-progressor/internal/config"
	"github.com/bipbipboopboop/ielts-progressor/internal/domain"
)

// identityRepo defines the identity repository interface needed by auth service.
type identityRepo interface {
	Create(ctx context.Context, i *domain.Identity) (*domain.Identity, error)
	GetByEmail(ctx context.Context, email string) (*domain.Identity, error)
}

// jwtManager defines the token operations needed by auth service.
type jwtManager interface {
	GenerateAccessToken(uid string, email string) (string, error)
	ValidateAccessToken(token string) (string, error)
}

// eventPublisher receives IdentityCreated events after registration.
type eventPublisher interface {
	Dispatch(ctx context.Context, evt domain.IdentityCreated)
}

// Service implements auth operations.
type Service struct {
	log        *slog.Logger
	identities identityRepo
	jwt        jwtManager
	events     eventPublisher
	cfg        config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	identities identityRepo,
	jwt jwtManager,
	events eventPublisher,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:        logger.With("service", "auth"),
		identities: identities,
		jwt:        jwt,
		events:     events,
		cfg:        cfg,
	}
}
