package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/edunexus/schoolrecords/internal/app/models"
	"github.com/edunexus/schoolrecords/internal/pkg/dberrors"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProfileRepository handles database operations for profiles
type ProfileRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetByUserID retrieves the profile of a user
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	sql, args, err := r.sb.Select("id", "user_id", "avatar").
		From("profiles").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get profile query: %w", err)
	}

	var p models.Profile
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&p.ID, &p.UserID, &p.Avatar); err != nil {
		if dberrors.IsNoRows(err) {
			return nil, notFound("Profile")
		}
		return nil, fmt.Errorf("error retrieving profile: %w", err)
	}
	return &p, nil
}

// UpdateAvatar sets or clears the avatar reference
func (r *ProfileRepository) UpdateAvatar(ctx context.Context, userID int64, avatar *string) error {
	sql, args, err := r.sb.Update("profiles").
		Set("avatar", avatar).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update avatar query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating avatar: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return notFound("Profile")
	}
	return nil
}
