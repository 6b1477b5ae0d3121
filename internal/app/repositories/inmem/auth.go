package inmem

import (
	"context"
	"time"

	"github.com/edunexus/schoolrecords/internal/app/models"
	"github.com/edunexus/schoolrecords/internal/pkg/apperrors"
)

// UserRepository is the in-memory user table
type UserRepository struct{ s *Store }

func (s *Store) userWithProfileLocked(u models.User) *models.User {
	if p, ok := s.profiles[u.ID]; ok {
		if p.Avatar != nil {
			a := *p.Avatar
			p.Avatar = &a
		}
		u.Profile = &p
	}
	if u.LastLogin != nil {
		t := *u.LastLogin
		u.LastLogin = &t
	}
	return &u
}

func (r *UserRepository) CreateWithProfile(ctx context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.users {
		if other.Username == user.Username {
			return &apperrors.CustomError{
				Err:     apperrors.ErrUsernameAlreadyExists,
				Message: "A user with that username already exists.",
				Field:   "username",
			}
		}
		if other.Email == user.Email {
			return emailConflict("user")
		}
	}

	user.ID = r.s.next("users")
	user.DateJoined = time.Now().UTC()
	stored := *user
	stored.Profile = nil
	r.s.users[user.ID] = stored

	profile := models.Profile{ID: r.s.next("profiles"), UserID: user.ID}
	r.s.profiles[user.ID] = profile
	user.Profile = &profile
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, notFound("User")
	}
	return r.s.userWithProfileLocked(u), nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Username == username {
			return r.s.userWithProfileLocked(u), nil
		}
	}
	return nil, notFound("User")
}

func (r *UserRepository) UpdateProfileFields(ctx context.Context, id int64, update models.UserProfileUpdate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return notFound("User")
	}
	if update.Email != nil {
		for otherID, other := range r.s.users {
			if otherID != id && other.Email == *update.Email {
				return emailConflict("user")
			}
		}
		u.Email = *update.Email
	}
	if update.FirstName != nil {
		u.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		u.LastName = *update.LastName
	}
	r.s.users[id] = u
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id]; ok {
		u.LastLogin = &at
		r.s.users[id] = u
	}
	return nil
}

// ProfileRepository is the in-memory profile table
type ProfileRepository struct{ s *Store }

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.profiles[userID]
	if !ok {
		return nil, notFound("Profile")
	}
	if p.Avatar != nil {
		a := *p.Avatar
		p.Avatar = &a
	}
	return &p, nil
}

func (r *ProfileRepository) UpdateAvatar(ctx context.Context, userID int64, avatar *string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.profiles[userID]
	if !ok {
		return notFound("Profile")
	}
	if avatar != nil {
		a := *avatar
		avatar = &a
	}
	p.Avatar = avatar
	r.s.profiles[userID] = p
	return nil
}

// TokenRepository is the in-memory refresh token table
type TokenRepository struct{ s *Store }

func (r *TokenRepository) Create(ctx context.Context, token *models.RefreshToken) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, dup := r.s.tokens[token.JTI]; dup {
		return apperrors.ErrTokenInvalid
	}
	token.ID = r.s.next("refresh_tokens")
	token.CreatedAt = time.Now().UTC()
	r.s.tokens[token.JTI] = *token
	return nil
}

func (r *TokenRepository) Revoke(ctx context.Context, jti string, now time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.tokens[jti]
	if !ok || t.IsRevoked || !t.ExpiresAt.After(now) {
		return 0, apperrors.ErrTokenRevoked
	}
	t.IsRevoked = true
	t.RevokedAt = &now
	r.s.tokens[jti] = t
	return t.UserID, nil
}

func (r *TokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for jti, t := range r.s.tokens {
		if !t.ExpiresAt.After(now) {
			delete(r.s.tokens, jti)
			n++
		}
	}
	return n, nil
}
