// Package attempt implements the Attempt repository using PostgreSQL.
// Fixed queries are raw SQL constants; the history listing is built with squirrel
// because its filters are optional.
package attempt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/bipbipboopboop/ielts-progressor/internal/adapter/postgres"
	"github.com/bipbipboopboop/ielts-progressor/internal/domain"
)

// Repo provides attempt persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new attempt repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const attemptColumns = `id, uid, text, score, completed, unknown_words, suggested_words, created_at, completed_at`

const createSQL = `
INSERT INTO generated_texts (id, uid, text, score, completed, unknown_words, suggested_words, created_at)
VALUES ($1, $2, $3, $4, false, $5, $6, $7)
RETURNING ` + attemptColumns

const getByIDSQL = `
SELECT ` + attemptColumns + `
FROM generated_texts
WHERE id = $1 AND uid = $2`

const getByIDForUpdateSQL = getByIDSQL + `
FOR UPDATE`

const getInProgressSQL = `
SELECT ` + attemptColumns + `
FROM generated_texts
WHERE uid = $1 AND NOT completed`

const completeSQL = `
UPDATE generated_texts
SET completed = true, score = $3, unknown_words = $4, completed_at = now()
WHERE id = $1 AND uid = $2 AND NOT completed
RETURNING ` + attemptColumns

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an attempt by primary key filtered by uid.
// Returns domain.ErrNotFound if the attempt does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, uid string, id uuid.UUID) (*domain.Attempt, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanAttempt(querier.QueryRow(ctx, getByIDSQL, id, uid))
	if err != nil {
		return nil, postgres.MapError(err, "attempt", id.String())
	}

	return a, nil
}

// GetByIDForUpdate is GetByID with a row lock held until the surrounding
// transaction ends. It must run inside TxManager.RunInTx.
func (r *Repo) GetByIDForUpdate(ctx context.Context, uid string, id uuid.UUID) (*domain.Attempt, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanAttempt(querier.QueryRow(ctx, getByIDForUpdateSQL, id, uid))
	if err != nil {
		return nil, postgres.MapError(err, "attempt", id.String())
	}

	return a, nil
}

// GetInProgress returns the user's in-progress attempt.
// Returns domain.ErrNotFound if none exists.
func (r *Repo) GetInProgress(ctx context.Context, uid string) (*domain.Attempt, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanAttempt(querier.QueryRow(ctx, getInProgressSQL, uid))
	if err != nil {
		return nil, postgres.MapError(err, "attempt", "in-progress:"+uid)
	}

	return a, nil
}

// List returns the user's attempts, newest first.
func (r *Repo) List(ctx context.Context, filter domain.AttemptFilter) ([]*domain.Attempt, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	filter.Normalize()

	q := psql.Select(attemptColumns).
		From("generated_texts").
		Where(squirrel.Eq{"uid": filter.UID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(filter.Limit))
	if filter.Completed != nil {
		q = q.Where(squirrel.Eq{"completed": *filter.Completed})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list attempts query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	defer rows.Close()

	attempts, err := scanAttempts(rows)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}

	return attempts, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new in-progress attempt.
// A partial unique index allows one in-progress attempt per user; a second
// one results in domain.ErrAlreadyExists. A missing account results in
// domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, a *domain.Attempt) (*domain.Attempt, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	suggested, err := marshalSuggested(a.SuggestedWords)
	if err != nil {
		return nil, fmt.Errorf("attempt %s: %w", a.ID, err)
	}

	unknown := a.UnknownWords
	if unknown == nil {
		unknown = []string{}
	}

	createdAt := a.CreatedAt.UTC().Truncate(time.Microsecond)

	created, err := scanAttempt(querier.QueryRow(ctx, createSQL,
		a.ID, a.UID, a.Text, a.Score, unknown, suggested, createdAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "attempt", a.ID.String())
	}

	return created, nil
}

// Complete marks an in-progress attempt completed with the estimated score and
// the words the user flagged. Returns domain.ErrNotFound if the attempt does not
// exist, belongs to another user, or is already completed.
func (r *Repo) Complete(ctx context.Context, uid string, id uuid.UUID, score float64, unknownWords []string) (*domain.Attempt, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if unknownWords == nil {
		unknownWords = []string{}
	}

	a, err := scanAttempt(querier.QueryRow(ctx, completeSQL, id, uid, score, unknownWords))
	if err != nil {
		return nil, postgres.MapError(err, "attempt", id.String())
	}

	return a, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanAttempt scans a single attempt row from pgx.Row.
func scanAttempt(row pgx.Row) (*domain.Attempt, error) {
	var (
		a             domain.Attempt
		suggestedJSON []byte
	)

	if err := row.Scan(&a.ID, &a.UID, &a.Text, &a.Score, &a.Completed,
		&a.UnknownWords, &suggestedJSON, &a.CreatedAt, &a.CompletedAt); err != nil {
		return nil, err
	}

	return finishAttempt(&a, suggestedJSON)
}

// scanAttempts scans multiple attempt rows into a []*domain.Attempt slice.
func scanAttempts(rows pgx.Rows) ([]*domain.Attempt, error) {
	attempts := []*domain.Attempt{}
	for rows.Next() {
		var (
			a             domain.Attempt
			suggestedJSON []byte
		)

		if err := rows.Scan(&a.ID, &a.UID, &a.Text, &a.Score, &a.Completed,
			&a.UnknownWords, &suggestedJSON, &a.CreatedAt, &a.CompletedAt); err != nil {
			return nil, err
		}

		attempt, err := finishAttempt(&a, suggestedJSON)
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, attempt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return attempts, nil
}

func finishAttempt(a *domain.Attempt, suggestedJSON []byte) (*domain.Attempt, error) {
	suggested, err := unmarshalSuggested(suggestedJSON)
	if err != nil {
		return nil, fmt.Errorf("attempt %s: %w", a.ID, err)
	}
	a.SuggestedWords = suggested
	if a.UnknownWords == nil {
		a.UnknownWords = []string{}
	}
	return a, nil
}

// ---------------------------------------------------------------------------
// JSONB serialization helpers for suggested words
// ---------------------------------------------------------------------------

type suggestedWordJSON struct {
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
}

func marshalSuggested(items []domain.VocabularyItem) ([]byte, error) {
	out := make([]suggestedWordJSON, 0, len(items))
	for _, it := range items {
		out = append(out, suggestedWordJSON{Word: it.Word, Meaning: it.Meaning})
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("marshal suggested words: %w", err)
	}
	return b, nil
}

func unmarshalSuggested(data []byte) ([]domain.VocabularyItem, error) {
	items := []domain.VocabularyItem{}
	if len(data) == 0 {
		return items, nil
	}

	var raw []suggestedWordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal suggested words: %w", err)
	}
	for _, r := range raw {
		items = append(items, domain.VocabularyItem{Word: r.Word, Meaning: r.Meaning})
	}
	return items, nil
}
