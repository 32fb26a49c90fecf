package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type profileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository stores avatar URLs per user in the profiles table.
func NewProfileRepository(db *sqlx.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetAvatar(ctx context.Context, userID string) (string, error) {
	var avatarURL string

	query := `SELECT avatar_url FROM profiles WHERE user_id = $1`

	err := r.db.GetContext(ctx, &avatarURL, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrProfileNotFound
		}
		return "", fmt.Errorf("error getting avatar for user %s: %w", userID, err)
	}

	return avatarURL, nil
}

func (r *profileRepository) SetAvatar(ctx context.Context, userID, avatarURL string) (string, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	var previous string
	err = tx.GetContext(ctx, &previous, `SELECT avatar_url FROM profiles WHERE user_id = $1 FOR UPDATE`, userID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("error reading current avatar: %w", err)
	}

	query := `
		INSERT INTO profiles (user_id, avatar_url, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET avatar_url = EXCLUDED.avatar_url, updated_at = EXCLUDED.updated_at
	`

	if _, err = tx.ExecContext(ctx, query, userID, avatarURL, time.Now()); err != nil {
		return "", fmt.Errorf("error saving avatar: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("error committing avatar: %w", err)
	}

	return previous, nil
}
