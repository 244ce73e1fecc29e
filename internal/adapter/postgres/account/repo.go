// Package account implements the Profile repository using PostgreSQL.
package account

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/bipbipboopboop/ielts-progressor/internal/adapter/postgres"
	"github.com/bipbipboopboop/ielts-progressor/internal/domain"
)

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new account repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const accountColumns = `uid, email, display_name, score, vocabulary, created_at, updated_at`

const getByUIDSQL = `
SELECT ` + accountColumns + `
FROM accounts
WHERE uid = $1`

const ensureSQL = `
INSERT INTO accounts (uid, email, display_name, score, vocabulary, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
ON CONFLICT (uid) DO NOTHING`

const updateScoreSQL = `
UPDATE accounts
SET score = $2, updated_at = now()
WHERE uid = $1`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// GetByUID returns the profile for uid.
// Returns domain.ErrNotFound if no profile exists.
func (r *Repo) GetByUID(ctx context.Context, uid string) (*domain.Profile, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProfile(querier.QueryRow(ctx, getByUIDSQL, uid))
	if err != nil {
		return nil, postgres.MapError(err, "account", uid)
	}

	return p, nil
}

// Ensure inserts the profile unless one already exists for its uid.
// Concurrent calls for the same uid are serialized by the primary key;
// exactly one of them reports created=true.
func (r *Repo) Ensure(ctx context.Context, p domain.Profile) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	vocab, err := marshalVocabulary(p.Vocabulary)
	if err != nil {
		return false, fmt.Errorf("account %s: %w", p.UID, err)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)

	ct, err := querier.Exec(ctx, ensureSQL, p.UID, p.Email, p.DisplayName, p.Score, vocab, now)
	if err != nil {
		return false, postgres.MapError(err, "account", p.UID)
	}

	return ct.RowsAffected() == 1, nil
}

// UpdateScore sets the profile's proficiency score.
// Returns domain.ErrNotFound if no profile exists.
func (r *Repo) UpdateScore(ctx context.Context, uid string, score float64) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, updateScoreSQL, uid, score)
	if err != nil {
		return postgres.MapError(err, "account", uid)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("account %s: %w", uid, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var (
		p         domain.Profile
		vocabJSON []byte
	)

	if err := row.Scan(&p.UID, &p.Email, &p.DisplayName, &p.Score, &vocabJSON, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}

	vocab, err := unmarshalVocabulary(vocabJSON)
	if err != nil {
		return nil, fmt.Errorf("account %s: %w", p.UID, err)
	}
	p.Vocabulary = vocab

	return &p, nil
}

// ---------------------------------------------------------------------------
// JSONB serialization helpers for the vocabulary list
// ---------------------------------------------------------------------------

// vocabularyItemJSON is the stored shape of a domain.VocabularyItem.
type vocabularyItemJSON struct {
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
}

func marshalVocabulary(items []domain.VocabularyItem) ([]byte, error) {
	out := make([]vocabularyItemJSON, 0, len(items))
	for _, it := range items {
		out = append(out, vocabularyItemJSON{Word: it.Word, Meaning: it.Meaning})
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("marshal vocabulary: %w", err)
	}
	return b, nil
}

func unmarshalVocabulary(data []byte) ([]domain.VocabularyItem, error) {
	items := []domain.VocabularyItem{}
	if len(data) == 0 {
		return items, nil
	}

	var raw []vocabularyItemJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal vocabulary: %w", err)
	}
	for _, r := range raw {
		items = append(items, domain.VocabularyItem{Word: r.Word, Meaning: r.Meaning})
	}
	return items, nil
}
