package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TokenRepository persists refresh tokens
type TokenRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(db *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Save stores a refresh token for a user, replacing any previous one.
func (r *TokenRepository) Save(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO refresh_tokens (user_id, token, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET token = $2, expires_at = $3`,
		userID, token, expiresAt)
	if err != nil {
		return fmt.Errorf("error saving refresh token: %w", err)
	}
	return nil
}

// LookupUserID resolves an unexpired refresh token to its user.
func (r *TokenRepository) LookupUserID(ctx context.Context, token string) (int64, error) {
	sql, args, err := r.sb.Select("user_id").
		From("refresh_tokens").
		Where(squirrel.Eq{"token": token}).
		Where(squirrel.Gt{"expires_at": time.Now()}).
		Limit(1).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build token lookup query: %w", err)
	}

	var userID int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("error looking up refresh token: %w", err)
	}

	return userID, nil
}

// Revoke deletes a refresh token.
func (r *TokenRepository) Revoke(ctx context.Context, token string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("error revoking refresh token: %w", err)
	}
	return nil
}
