package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bipbipboopboop/ielts-progressor/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedProfile creates an account row with default score and empty vocabulary.
func SeedProfile(t *testing.T, pool *pgxpool.Pool) domain.Profile {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	email := "learner-" + suffix + "@example.com"
	p := domain.NewProfile(uuid.NewString(), &email, "Learner "+suffix)

	err := pool.QueryRow(ctx,
		`INSERT INTO accounts (uid, email, display_name, score)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`,
		p.UID, p.Email, p.DisplayName, p.Score,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile insert account: %v", err)
	}

	return p
}

// SeedAttempt creates an attempt for uid with the given completion state.
func SeedAttempt(t *testing.T, pool *pgxpool.Pool, uid string, completed bool) domain.Attempt {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	a := domain.NewAttempt(uid, "The weather was remarkably pleasant.", domain.DefaultScore, now)
	if completed {
		a.Completed = true
		a.UnknownWords = []string{"remarkably"}
		a.CompletedAt = &now
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO generated_texts (id, uid, text, score, completed, unknown_words, created_at, completed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID, a.UID, a.Text, a.Score, a.Completed, a.UnknownWords, a.CreatedAt, a.CompletedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAttempt insert: %v", err)
	}

	return a
}
