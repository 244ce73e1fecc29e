package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bipbipboopboop/ielts-progressor/internal/auth"
	"github.com/bipbipboopboop/ielts-progressor/internal/domain"
)

// Register creates a new identity with email + password and returns an access token.
// Returns ErrAlreadyExists if the email is taken. Profile creation happens
// asynchronously through the event publisher.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Email = domain.NormalizeEmail(input.Email)
	input.DisplayName = domain.NormalizeDisplayName(input.DisplayName)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Hash password
	hash, err := auth.HashPassword(input.Password, s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	// Step 3: Store identity. Email uniqueness is enforced by the database.
	created, err := s.identities.Create(ctx, &domain.Identity{
		ID:           uuid.NewString(),
		Email:        input.Email,
		DisplayName:  input.DisplayName,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	// Step 4: Issue token
	token, err := s.jwt.GenerateAccessToken(created.ID, created.Email)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue token: %w", err)
	}

	// Step 5: Announce the identity
	s.events.Dispatch(ctx, domain.IdentityCreated{
		UID:         created.ID,
		Email:       created.Email,
		DisplayName: created.DisplayName,
	})

	s.log.InfoContext(ctx, "identity registered", slog.String("user_id", created.ID))

	return &AuthResult{AccessToken: token, Identity: created}, nil
}
