package services

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edunexus/schoolrecords/internal/pkg/apperrors"
)

func TestUpdateProfile_AvatarKeepsUsername(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	user, err := env.svc.AuthService.Register(ctx, "juan", "juan@x.ph", "pw123")
	require.NoError(t, err)

	updated, err := env.svc.ProfileService.UpdateProfile(ctx, user.ID, ProfileUpdate{
		FirstName: ptr("Juan"),
		Avatar:    bytes.NewReader(pngBytes(t, 40, 40)),
	})
	require.NoError(t, err)

	assert.Equal(t, "juan", updated.Username)
	assert.Equal(t, "Juan", updated.FirstName)
	assert.Equal(t, "juan@x.ph", updated.Email)
	require.NotNil(t, updated.Profile)
	require.NotNil(t, updated.Profile.Avatar)

	avatarURL := *updated.Profile.Avatar
	assert.True(t, strings.HasPrefix(avatarURL, "http://localhost:8000/media/avatars/"))
	assert.True(t, strings.HasSuffix(avatarURL, ".png"))

	rel := strings.TrimPrefix(avatarURL, "http://localhost:8000/media/")
	_, err = os.Stat(filepath.Join(env.media, filepath.FromSlash(rel)))
	assert.NoError(t, err)
}

func TestUpdateProfile_ReplacesPreviousAvatar(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	user, err := env.svc.AuthService.Register(ctx, "juan", "juan@x.ph", "pw123")
	require.NoError(t, err)

	first, err := env.svc.ProfileService.UpdateProfile(ctx, user.ID, ProfileUpdate{Avatar: bytes.NewReader(pngBytes(t, 30, 30))})
	require.NoError(t, err)
	second, err := env.svc.ProfileService.UpdateProfile(ctx, user.ID, ProfileUpdate{Avatar: bytes.NewReader(pngBytes(t, 20, 20))})
	require.NoError(t, err)

	assert.NotEqual(t, *first.Profile.Avatar, *second.Profile.Avatar)
	firstRel := strings.TrimPrefix(*first.Profile.Avatar, "http://localhost:8000/media/")
	_, err = os.Stat(filepath.Join(env.media, filepath.FromSlash(firstRel)))
	assert.True(t, os.IsNotExist(err))
}

func TestUpdateProfile_Username(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	user, err := env.svc.AuthService.Register(ctx, "juan", "juan@x.ph", "pw123")
	require.NoError(t, err)

	_, err = env.svc.ProfileService.UpdateProfile(ctx, user.ID, ProfileUpdate{Username: ptr("juan")})
	assert.NoError(t, err)

	_, err = env.svc.ProfileService.UpdateProfile(ctx, user.ID, ProfileUpdate{Username: ptr("pedro")})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	ce, ok := apperrors.AsCustomError(err)
	require.True(t, ok)
	assert.Equal(t, "username", ce.Field)
}

func TestUpdateProfile_BlankEmail(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	user, err := env.svc.AuthService.Register(ctx, "juan", "juan@x.ph", "pw123")
	require.NoError(t, err)

	for _, email := range []string{"", "   "} {
		_, err = env.svc.ProfileService.UpdateProfile(ctx, user.ID, ProfileUpdate{Email: ptr(email)})
		require.ErrorIs(t, err, apperrors.ErrValidationFailed)
		ce, ok := apperrors.AsCustomError(err)
		require.True(t, ok)
		assert.Equal(t, "email", ce.Field)
	}

	current, err := env.svc.ProfileService.UpdateProfile(ctx, user.ID, ProfileUpdate{})
	require.NoError(t, err)
	assert.Equal(t, "juan@x.ph", current.Email)
}

func TestUpdateProfile_InvalidAvatar(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	user, err := env.svc.AuthService.Register(ctx, "juan", "juan@x.ph", "pw123")
	require.NoError(t, err)

	_, err = env.svc.ProfileService.UpdateProfile(ctx, user.ID, ProfileUpdate{
		FirstName: ptr("Juan"),
		Avatar:    strings.NewReader("definitely not an image"),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	got, err := env.svc.ProfileService.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, got.FirstName)
	assert.Nil(t, got.Profile.Avatar)
}
