package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bipbipboopboop/ielts-progressor/internal/auth"
	"github.com/bipbipboopboop/ielts-progressor/internal/domain"
)

// Login authenticates an identity with email + password.
// Returns ErrUnauthorized if the email is unknown or the password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Email = strings.TrimSpace(input.Email)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Find identity
	ident, err := s.identities.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get identity: %w", err)
	}

	// Step 3: Verify password
	if err := auth.CheckPassword(ident.PasswordHash, input.Password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login: %w", err)
	}

	// Step 4: Issue token
	token, err := s.jwt.GenerateAccessToken(ident.ID, ident.Email)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "identity logged in", slog.String("user_id", ident.ID))

	return &AuthResult{AccessToken: token, Identity: ident}, nil
}

// ValidateToken returns the uid carried by an access token.
// Any invalid, expired or foreign token yields ErrUnauthorized.
func (s *Service) ValidateToken(ctx context.Context, token string) (string, error) {
	uid, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "access token rejected", slog.String("error", err.Error()))
		return "", domain.ErrUnauthorized
	}
	return uid, nil
}
