package auth

import (
	"testing"
	"time"

	"github.com/edunexus/schoolrecords/internal/pkg/apperrors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func newTestService(clock *fakeClock) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  60 * time.Minute,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "schoolrecords-test",
		Now:             clock.Now,
	})
}

func TestGenerateTokenPair(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)}
	svc := newTestService(clock)

	pair, err := svc.GenerateTokenPair(7, "juan")
	require.NoError(t, err)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.Equal(t, clock.now.Add(24*time.Hour), pair.RefreshExpiresAt)

	access, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(7), access.UserID)
	assert.Equal(t, "juan", access.Username)
	assert.Equal(t, "7", access.Subject)

	refresh, err := svc.ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, pair.RefreshJTI, refresh.ID)
}

func TestTokenTypesAreNotInterchangeable(t *testing.T) {
	svc := newTestService(&fakeClock{now: time.Now()})
	pair, err := svc.GenerateTokenPair(1, "maria")
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(pair.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)

	_, err = svc.ValidateAccessToken(pair.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestAccessTokenExpiresAfterSixtyMinutes(t *testing.T) {
	issued := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	clock := &fakeClock{now: issued}
	svc := newTestService(clock)

	pair, err := svc.GenerateTokenPair(3, "jose")
	require.NoError(t, err)

	clock.now = issued.Add(59*time.Minute + 59*time.Second)
	_, err = svc.ValidateAccessToken(pair.AccessToken)
	assert.NoError(t, err)

	clock.now = issued.Add(60 * time.Minute)
	_, err = svc.ValidateAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)

	clock.now = issued.Add(2 * time.Hour)
	_, err = svc.ValidateRefreshToken(pair.RefreshToken)
	assert.NoError(t, err)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	svc := newTestService(&fakeClock{now: time.Now()})
	other := NewJWTService(JWTConfig{SecretKey: "other", AccessTokenExp: time.Hour, RefreshTokenExp: time.Hour})

	pair, err := other.GenerateTokenPair(1, "tala")
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)

	_, err = svc.ValidateToken("not-a-jwt")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)

	_, err = svc.ValidateToken("")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"user_id": 1, "token_type": "access"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = svc.ValidateToken(unsigned)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	token, err = ExtractBearerToken("bearer xyz")
	require.NoError(t, err)
	assert.Equal(t, "xyz", token)

	for _, header := range []string{"", "Bearer", "Token abc", "Bearer a b"} {
		_, err := ExtractBearerToken(header)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized, header)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPasswordWithCost("pw123", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, "pw123", hash)
	assert.True(t, CheckPassword(hash, "pw123"))
	assert.False(t, CheckPassword(hash, "pw124"))
}
