package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID         int64      `json:"id" db:"id"`
	Username   string     `json:"username" db:"username"`
	Email      string     `json:"email" db:"email"`
	Password   string     `json:"-" db:"password"` // bcrypt hash, never rendered
	FirstName  string     `json:"first_name" db:"first_name"`
	LastName   string     `json:"last_name" db:"last_name"`
	IsActive   bool       `json:"is_active" db:"is_active"`
	DateJoined time.Time  `json:"date_joined" db:"date_joined"`
	LastLogin  *time.Time `json:"last_login,omitempty" db:"last_login"`
	Profile    *Profile   `json:"profile,omitempty"` // Relation, no db tag
}

// Profile is the 1:1 companion of a User, created together with it
type Profile struct {
	ID     int64   `json:"id" db:"id"`
	UserID int64   `json:"user_id" db:"user_id"`
	Avatar *string `json:"avatar" db:"avatar"`
}

// UserProfileUpdate carries the user columns a profile update may change. Nil means unchanged.
type UserProfileUpdate struct {
	Email     *string
	FirstName *string
	LastName  *string
}

// RefreshToken tracks an issued refresh token so it can be rotated exactly once
type RefreshToken struct {
	ID        int64      `db:"id"`
	JTI       string     `db:"jti"`
	UserID    int64      `db:"user_id"`
	ExpiresAt time.Time  `db:"expires_at"`
	IsRevoked bool       `db:"is_revoked"`
	RevokedAt *time.Time `db:"revoked_at"`
	CreatedAt time.Time  `db:"created_at"`
}
