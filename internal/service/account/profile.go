package account

import (
	"context"
	"fmt"

	"github.com/bipbipboopboop/ielts-progressor/internal/domain"
	"github.com/bipbipboopboop/ielts-progressor/pkg/ctxutil"
)

// GetProfile returns the authenticated user's profile.
// Returns ErrUnauthorized if no uid is found in context.
func (s *Service) GetProfile(ctx context.Context) (*domain.Profile, error) {
	uid, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.accounts.GetByUID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("account.GetProfile: %w", err)
	}

	return p, nil
}
