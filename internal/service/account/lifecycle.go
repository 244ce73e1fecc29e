package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bipbipboopboop/ielts-progressor/internal/domain"
)

// OnIdentityCreated creates the Profile for a newly created identity.
// It is idempotent: a duplicate or concurrent trigger for the same uid leaves
// the existing profile untouched and returns nil.
func (s *Service) OnIdentityCreated(ctx context.Context, evt domain.IdentityCreated) error {
	// Step 1: Validate event
	uid := strings.TrimSpace(evt.UID)
	if uid == "" {
		return domain.NewValidationError("uid", "required")
	}

	var email *string
	if e := domain.NormalizeEmail(evt.Email); e != "" {
		email = &e
	}

	// Step 2: Upsert profile
	created, err := s.accounts.Ensure(ctx, domain.NewProfile(uid, email, domain.NormalizeDisplayName(evt.DisplayName)))
	if err != nil {
		return fmt.Errorf("account.OnIdentityCreated: %w", err)
	}

	if created {
		s.log.InfoContext(ctx, "profile created", slog.String("user_id", uid))
	} else {
		s.log.DebugContext(ctx, "profile already exists", slog.String("user_id", uid))
	}

	return nil
}

// BackfillResult summarizes a Backfill run.
type BackfillResult struct {
	Scanned int
	Created int
	Failed  int
}

// Backfill creates profiles for identities that have none, in batches of
// batchSize, until no such identity remains. A failure for one identity is
// logged and counted; it does not stop the run. Identities that keep failing
// are returned again by the next query, so the run stops after a batch in
// which nothing was created.
func (s *Service) Backfill(ctx context.Context, batchSize int) (BackfillResult, error) {
	if batchSize <= 0 {
		return BackfillResult{}, domain.NewValidationError("batch_size", "must be positive")
	}

	var res BackfillResult
	for {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("account.Backfill: %w", err)
		}

		batch, err := s.identities.ListWithoutAccount(ctx, batchSize)
		if err != nil {
			return res, fmt.Errorf("account.Backfill list identities: %w", err)
		}
		if len(batch) == 0 {
			break
		}

		createdInBatch := 0
		for _, ident := range batch {
			res.Scanned++
			err := s.OnIdentityCreated(ctx, domain.IdentityCreated{
				UID:         ident.ID,
				Email:       ident.Email,
				DisplayName: ident.DisplayName,
			})
			if err != nil {
				res.Failed++
				s.log.ErrorContext(ctx, "backfill profile failed",
					slog.String("user_id", ident.ID),
					slog.String("error", err.Error()))
				continue
			}
			res.Created++
			createdInBatch++
		}

		if createdInBatch == 0 || len(batch) < batchSize {
			break
		}
	}

	s.log.InfoContext(ctx, "backfill finished",
		slog.Int("scanned", res.Scanned),
		slog.Int("created", res.Created),
		slog.Int("failed", res.Failed))

	return res, nil
}
