package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/edunexus/schoolrecords/internal/app/models"
	"github.com/edunexus/schoolrecords/internal/db"
	"github.com/edunexus/schoolrecords/internal/pkg/dberrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var userColumns = []string{
	"u.id", "u.username", "u.email", "u.password", "u.first_name", "u.last_name",
	"u.is_active", "u.date_joined", "u.last_login", "p.id", "p.avatar",
}

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanUser(row rowScanner) (*models.User, error) {
	var u models.User
	var profileID *int64
	var avatar *string
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.FirstName, &u.LastName,
		&u.IsActive, &u.DateJoined, &u.LastLogin, &profileID, &avatar); err != nil {
		return nil, err
	}
	if profileID != nil {
		u.Profile = &models.Profile{ID: *profileID, UserID: u.ID, Avatar: avatar}
	}
	return &u, nil
}

// CreateWithProfile inserts the user and its empty profile in one transaction
func (r *UserRepository) CreateWithProfile(ctx context.Context, user *models.User) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Insert("users").
			Columns("username", "email", "password", "first_name", "last_name", "is_active").
			Values(user.Username, user.Email, user.Password, user.FirstName, user.LastName, user.IsActive).
			Suffix("RETURNING id, date_joined").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create user query: %w", err)
		}
		if err := tx.QueryRow(ctx, sql, args...).Scan(&user.ID, &user.DateJoined); err != nil {
			return translateWriteError(err, "creating user")
		}

		profile := &models.Profile{UserID: user.ID}
		sql, args, err = r.sb.Insert("profiles").
			Columns("user_id").
			Values(user.ID).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create profile query: %w", err)
		}
		if err := tx.QueryRow(ctx, sql, args...).Scan(&profile.ID); err != nil {
			return translateWriteError(err, "creating profile")
		}

		user.Profile = profile
		return nil
	})
}

func (r *UserRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users u").
		LeftJoin("profiles p ON p.user_id = u.id").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, notFound("User")
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// GetByID retrieves a user and its profile
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"u.id": id})
}

// GetByUsername retrieves a user and its profile by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"u.username": username})
}

// UpdateProfileFields writes the supplied user columns. Username is never touched.
func (r *UserRepository) UpdateProfileFields(ctx context.Context, id int64, update models.UserProfileUpdate) error {
	query := r.sb.Update("users").Where(squirrel.Eq{"id": id})
	changed := false
	if update.Email != nil {
		query, changed = query.Set("email", *update.Email), true
	}
	if update.FirstName != nil {
		query, changed = query.Set("first_name", *update.FirstName), true
	}
	if update.LastName != nil {
		query, changed = query.Set("last_name", *update.LastName), true
	}
	if !changed {
		found, err := exists(ctx, r.db, r.sb, "users", id)
		if err != nil {
			return err
		}
		if !found {
			return notFound("User")
		}
		return nil
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update user query: %w", err)
	}
	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return translateWriteError(err, "updating user")
	}
	if cmdTag.RowsAffected() == 0 {
		return notFound("User")
	}
	return nil
}

// UpdateLastLogin records a successful login
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	sql, args, err := r.sb.Update("users").
		Set("last_login", at).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update last login query: %w", err)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error updating last login: %w", err)
	}
	return nil
}
