package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/recipehub/recipehub/internal/logger"
	"github.com/recipehub/recipehub/internal/models"
	"github.com/recipehub/recipehub/internal/services"
)

// ProfileReadRepository handles profile read operations.
type ProfileReadRepository struct {
	db *sqlx.DB
}

func NewProfileReadRepository(db *sqlx.DB) *ProfileReadRepository {
	return &ProfileReadRepository{db: db}
}

// GetByID returns the profile with the given identity key,
// or (nil, nil) when no row matches.
func (r *ProfileReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ProfileDB, error) {
	const query = `
		SELECT id, username, full_name, created_at, updated_at
		FROM profiles
		WHERE id = $1
		LIMIT 1
	`

	var profile models.ProfileDB
	err := r.db.GetContext(ctx, &profile, query, id)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &profile, nil
}

// GetByUsername returns the profile with the given exact username,
// or (nil, nil) when no row matches.
func (r *ProfileReadRepository) GetByUsername(ctx context.Context, username string) (*models.ProfileDB, error) {
	const query = `
		SELECT id, username, full_name, created_at, updated_at
		FROM profiles
		WHERE username = $1
		LIMIT 1
	`

	var profile models.ProfileDB
	err := r.db.GetContext(ctx, &profile, query, username)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &profile, nil
}

// ProfileWriteRepository handles profile write operations.
type ProfileWriteRepository struct {
	db *sqlx.DB
}

func NewProfileWriteRepository(db *sqlx.DB) *ProfileWriteRepository {
	return &ProfileWriteRepository{db: db}
}

// Update sets the display fields of the profile with the given identity key
// and returns the updated row. The id itself is never changed.
func (r *ProfileWriteRepository) Update(ctx context.Context, id uuid.UUID, username, fullName string) (*models.ProfileDB, error) {
	const query = `
		UPDATE profiles
		SET username = $2, full_name = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, username, full_name, created_at, updated_at
	`

	var profile models.ProfileDB
	err := r.db.GetContext(ctx, &profile, query, id, username, fullName)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, username, fullName},
		"error", err,
	)

	if err != nil {
		// 23505 is the unique_violation class; the only unique constraint
		// on profiles is the username handle.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, services.ErrUsernameTaken
		}
		return nil, err
	}

	return &profile, nil
}
