package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/edunexus/schoolrecords/internal/app/models"
	"github.com/edunexus/schoolrecords/internal/pkg/apperrors"
	"github.com/edunexus/schoolrecords/internal/pkg/dberrors"
	"github.com/edunexus/schoolrecords/internal/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TokenRepository handles refresh token database operations
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

// Create records an issued refresh token
func (r *TokenRepository) Create(ctx context.Context, token *models.RefreshToken) error {
	sql, args, err := r.sb.Insert("refresh_tokens").
		Columns("jti", "user_id", "expires_at", "is_revoked").
		Values(token.JTI, token.UserID, token.ExpiresAt, false).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create token SQL")
		return fmt.Errorf("failed to build create token query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&token.ID, &token.CreatedAt); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "refresh_tokens_jti_key") {
			logger.Warn().Str("jti", token.JTI).Msg("Attempted to create duplicate token")
			return apperrors.ErrTokenInvalid
		}
		logger.Error().Err(err).Int64("userID", token.UserID).Msg("Error executing create token query")
		return fmt.Errorf("error creating token: %w", err)
	}
	return nil
}

// Revoke flips a live token to revoked in a single conditional UPDATE, so two
// concurrent refreshes with the same token cannot both succeed.
func (r *TokenRepository) Revoke(ctx context.Context, jti string, now time.Time) (int64, error) {
	sql, args, err := r.sb.Update("refresh_tokens").
		Set("is_revoked", true).
		Set("revoked_at", now).
		Where(squirrel.Eq{"jti": jti, "is_revoked": false}).
		Where(squirrel.Gt{"expires_at": now}).
		Suffix("RETURNING user_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build revoke token query: %w", err)
	}

	var userID int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&userID); err != nil {
		if dberrors.IsNoRows(err) {
			return 0, apperrors.ErrTokenRevoked
		}
		logger.Error().Err(err).Str("jti", jti).Msg("Error executing revoke token query")
		return 0, fmt.Errorf("error revoking token: %w", err)
	}
	return userID, nil
}

// DeleteExpired purges tokens that can no longer be used
func (r *TokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	sql, args, err := r.sb.Delete("refresh_tokens").
		Where(squirrel.LtOrEq{"expires_at": now}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build cleanup query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("error deleting expired tokens: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
