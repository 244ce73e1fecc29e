// Package identity implements the Identity repository using PostgreSQL.
package identity

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/bipbipboopboop/ielts-progressor/internal/adapter/postgres"
	"github.com/bipbipboopboop/ielts-progressor/internal/domain"
)

// Repo provides identity persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new identity repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const identityColumns = `id, email, display_name, password_hash, created_at`

const createSQL = `
INSERT INTO identities (id, email, display_name, password_hash, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + identityColumns

const getByEmailSQL = `
SELECT ` + identityColumns + `
FROM identities
WHERE lower(email) = lower($1)`

const getByIDSQL = `
SELECT ` + identityColumns + `
FROM identities
WHERE id = $1`

const listWithoutAccountSQL = `
SELECT i.id, i.email, i.display_name, i.password_hash, i.created_at
FROM identities i
LEFT JOIN accounts a ON a.uid = i.id
WHERE a.uid IS NULL
ORDER BY i.created_at, i.id
LIMIT $1`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Create inserts a new identity.
// Returns domain.ErrAlreadyExists if the email is taken (case-insensitive).
func (r *Repo) Create(ctx context.Context, i *domain.Identity) (*domain.Identity, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	createdAt := i.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	createdAt = createdAt.UTC().Truncate(time.Microsecond)

	created, err := scanIdentity(querier.QueryRow(ctx, createSQL,
		i.ID, i.Email, i.DisplayName, i.PasswordHash, createdAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "identity", i.Email)
	}

	return created, nil
}

// GetByEmail returns the identity registered with email (case-insensitive).
// Returns domain.ErrNotFound if none exists.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	i, err := scanIdentity(querier.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "identity", email)
	}

	return i, nil
}

// GetByID returns an identity by primary key.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Identity, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	i, err := scanIdentity(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "identity", id)
	}

	return i, nil
}

// ListWithoutAccount returns up to limit identities that have no profile yet,
// oldest first.
func (r *Repo) ListWithoutAccount(ctx context.Context, limit int) ([]*domain.Identity, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listWithoutAccountSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("list identities without account: %w", err)
	}
	defer rows.Close()

	identities := []*domain.Identity{}
	for rows.Next() {
		i, err := scanIdentity(rows)
		if err != nil {
			return nil, fmt.Errorf("list identities without account: %w", err)
		}
		identities = append(identities, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list identities without account: %w", err)
	}

	return identities, nil
}

// scanIdentity scans a single identity row. pgx.Rows satisfies pgx.Row.
func scanIdentity(row pgx.Row) (*domain.Identity, error) {
	var i domain.Identity
	if err := row.Scan(&i.ID, &i.Email, &i.DisplayName, &i.PasswordHash, &i.CreatedAt); err != nil {
		return nil, err
	}
	return &i, nil
}
