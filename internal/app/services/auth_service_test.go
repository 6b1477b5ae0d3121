package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edunexus/schoolrecords/internal/pkg/apperrors"
)

func TestRegister_CreatesUserWithProfile(t *testing.T) {
	env := newTestEnv(t, nil)

	user, err := env.svc.AuthService.Register(context.Background(), "juan", "juan@x.ph", "pw123")
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "pw123", user.Password)
	require.NotNil(t, user.Profile)
	assert.Nil(t, user.Profile.Avatar)

	counts := env.store.Counts()
	assert.Equal(t, 1, counts["users"])
	assert.Equal(t, 1, counts["profiles"])
}

func TestRegister_Rejections(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	_, err := env.svc.AuthService.Register(ctx, "juan", "juan@x.ph", "pw123")
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		email    string
		password string
		want     error
	}{
		{"duplicate username", "juan", "other@x.ph", "pw", apperrors.ErrUsernameAlreadyExists},
		{"duplicate email", "pedro", "juan@x.ph", "pw", apperrors.ErrEmailAlreadyExists},
		{"bad username", "juan dela cruz", "jdc@x.ph", "pw", apperrors.ErrValidationFailed},
		{"blank password", "maria", "maria@x.ph", "", apperrors.ErrValidationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.svc.AuthService.Register(ctx, tt.username, tt.email, tt.password)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}

	assert.Equal(t, 1, env.store.Counts()["profiles"])
}

func TestObtainTokenPair(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	_, err := env.svc.AuthService.Register(ctx, "juan", "juan@x.ph", "pw123")
	require.NoError(t, err)

	_, err = env.svc.AuthService.ObtainTokenPair(ctx, "juan", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	_, err = env.svc.AuthService.ObtainTokenPair(ctx, "nobody", "pw123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	pair, err := env.svc.AuthService.ObtainTokenPair(ctx, "juan", "pw123")
	require.NoError(t, err)

	claims, err := env.jwt.ValidateAccessToken(pair.Access)
	require.NoError(t, err)
	assert.Equal(t, "juan", claims.Username)

	_, err = env.jwt.ValidateAccessToken(pair.Refresh)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)

	user, err := env.svc.ProfileService.GetProfile(ctx, claims.UserID)
	require.NoError(t, err)
	require.NotNil(t, user.LastLogin)
	assert.Equal(t, env.clock.Now(), *user.LastLogin)
}

func TestAccessToken_ExpiresAfterSixtyMinutes(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	_, err := env.svc.AuthService.Register(ctx, "juan", "juan@x.ph", "pw123")
	require.NoError(t, err)
	pair, err := env.svc.AuthService.ObtainTokenPair(ctx, "juan", "pw123")
	require.NoError(t, err)

	env.clock.Advance(59 * time.Minute)
	_, err = env.jwt.ValidateAccessToken(pair.Access)
	assert.NoError(t, err)

	env.clock.Advance(2 * time.Minute)
	_, err = env.jwt.ValidateAccessToken(pair.Access)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestRefreshTokenPair_SingleUse(t *testing.T) {
	tests := []struct {
		name      string
		blacklist TokenBlacklist
	}{
		{"database only", nil},
		{"with blacklist", &fakeBlacklist{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, tt.blacklist)
			ctx := context.Background()
			_, err := env.svc.AuthService.Register(ctx, "juan", "juan@x.ph", "pw123")
			require.NoError(t, err)
			pair, err := env.svc.AuthService.ObtainTokenPair(ctx, "juan", "pw123")
			require.NoError(t, err)

			rotated, err := env.svc.AuthService.RefreshTokenPair(ctx, pair.Refresh)
			require.NoError(t, err)
			assert.NotEqual(t, pair.Refresh, rotated.Refresh)

			_, err = env.svc.AuthService.RefreshTokenPair(ctx, pair.Refresh)
			assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)

			_, err = env.svc.AuthService.RefreshTokenPair(ctx, rotated.Refresh)
			assert.NoError(t, err)
		})
	}
}

func TestRefreshTokenPair_ConcurrentRotationHasOneWinner(t *testing.T) {
	tests := []struct {
		name      string
		blacklist TokenBlacklist
	}{
		{"database only", nil},
		{"with blacklist", &fakeBlacklist{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, tt.blacklist)
			ctx := context.Background()
			_, err := env.svc.AuthService.Register(ctx, "juan", "juan@x.ph", "pw123")
			require.NoError(t, err)
			pair, err := env.svc.AuthService.ObtainTokenPair(ctx, "juan", "pw123")
			require.NoError(t, err)

			const workers = 32
			var (
				wg        sync.WaitGroup
				succeeded atomic.Int32
				revoked   atomic.Int32
			)
			start := make(chan struct{})
			for i := 0; i < workers; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					<-start
					_, err := env.svc.AuthService.RefreshTokenPair(ctx, pair.Refresh)
					switch {
					case err == nil:
						succeeded.Add(1)
					case errors.Is(err, apperrors.ErrTokenRevoked):
						revoked.Add(1)
					}
				}()
			}
			close(start)
			wg.Wait()

			assert.Equal(t, int32(1), succeeded.Load())
			assert.Equal(t, int32(workers-1), revoked.Load())
		})
	}
}

func TestRefreshTokenPair_Rejections(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	_, err := env.svc.AuthService.Register(ctx, "juan", "juan@x.ph", "pw123")
	require.NoError(t, err)
	pair, err := env.svc.AuthService.ObtainTokenPair(ctx, "juan", "pw123")
	require.NoError(t, err)

	_, err = env.svc.AuthService.RefreshTokenPair(ctx, pair.Access)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)

	_, err = env.svc.AuthService.RefreshTokenPair(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)

	env.clock.Advance(25 * time.Hour)
	_, err = env.svc.AuthService.RefreshTokenPair(ctx, pair.Refresh)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestCleanupExpiredTokens(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	_, err := env.svc.AuthService.Register(ctx, "juan", "juan@x.ph", "pw123")
	require.NoError(t, err)
	_, err = env.svc.AuthService.ObtainTokenPair(ctx, "juan", "pw123")
	require.NoError(t, err)

	n, err := env.svc.AuthService.CleanupExpiredTokens(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	env.clock.Advance(48 * time.Hour)
	n, err = env.svc.AuthService.CleanupExpiredTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Zero(t, env.store.Counts()["tokens"])
}
