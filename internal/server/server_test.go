package server

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edunexus/schoolrecords/internal/app/models"
	"github.com/edunexus/schoolrecords/internal/app/repositories/inmem"
	"github.com/edunexus/schoolrecords/internal/app/services"
	"github.com/edunexus/schoolrecords/internal/pkg/auth"
)

func TestPurgeExpiredTokens(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	repos := inmem.NewStore().Repositories()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "schoolrecords-test",
	})

	require.NoError(t, repos.TokenRepository.Create(ctx, &models.RefreshToken{JTI: "old", UserID: 1, ExpiresAt: now.Add(-time.Hour), CreatedAt: now.Add(-25 * time.Hour)}))
	require.NoError(t, repos.TokenRepository.Create(ctx, &models.RefreshToken{JTI: "live", UserID: 1, ExpiresAt: now.Add(time.Hour), CreatedAt: now}))

	s := &Server{
		auth:   services.NewAuthService(repos.UserRepository, repos.TokenRepository, jwtService, nil, zerolog.Nop()),
		logger: zerolog.Nop(),
	}
	s.purgeExpiredTokens()

	remaining, err := repos.TokenRepository.DeleteExpired(ctx, now.Add(48*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), remaining)
}

func TestStartTokenCleanup(t *testing.T) {
	s := &Server{logger: zerolog.Nop()}

	jobs, err := s.startTokenCleanup(TokenCleanupSchedule)
	require.NoError(t, err)
	assert.Len(t, jobs.Entries(), 1)
	<-jobs.Stop().Done()

	_, err = s.startTokenCleanup("not a schedule")
	assert.Error(t, err)
}
