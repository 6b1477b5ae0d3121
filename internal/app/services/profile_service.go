package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/edunexus/schoolrecords/internal/app/models"
	"github.com/edunexus/schoolrecords/internal/app/repositories"
	"github.com/edunexus/schoolrecords/internal/pkg/apperrors"
	"github.com/edunexus/schoolrecords/internal/pkg/avatar"
	"github.com/edunexus/schoolrecords/internal/pkg/filestorage"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ProfileUpdate is a partial change to the current user's profile. Nil fields are left alone.
type ProfileUpdate struct {
	Username  *string
	Email     *string
	FirstName *string
	LastName  *string
	// Avatar is the uploaded image, nil when no file was sent
	Avatar io.Reader
}

// ProfileService reads and updates the composed user + profile view
type ProfileService struct {
	userRepo    repositories.IUserRepository
	profileRepo repositories.IProfileRepository
	storage     filestorage.FileStorage
	processor   *avatar.Processor
	logger      zerolog.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(
	userRepo repositories.IUserRepository,
	profileRepo repositories.IProfileRepository,
	storage filestorage.FileStorage,
	processor *avatar.Processor,
	logger zerolog.Logger,
) *ProfileService {
	return &ProfileService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		storage:     storage,
		processor:   processor,
		logger:      logger,
	}
}

// GetProfile returns the user with its profile
func (s *ProfileService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile applies the user fields and the avatar, each through its own repository.
// The username is read-only; sending a different one is a validation error.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID int64, update ProfileUpdate) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Username != nil && *update.Username != user.Username {
		return nil, apperrors.NewValidationError("username", "Username cannot be changed.")
	}
	if update.Email != nil && strings.TrimSpace(*update.Email) == "" {
		return nil, apperrors.NewValidationError("email", "This field may not be blank.")
	}

	var processed *avatar.Image
	if update.Avatar != nil {
		if processed, err = s.processor.Process(update.Avatar); err != nil {
			return nil, err
		}
	}

	fields := models.UserProfileUpdate{
		Email:     update.Email,
		FirstName: update.FirstName,
		LastName:  update.LastName,
	}
	if err := s.userRepo.UpdateProfileFields(ctx, userID, fields); err != nil {
		return nil, err
	}

	if processed != nil {
		if err := s.replaceAvatar(ctx, user, processed); err != nil {
			return nil, err
		}
	}

	return s.userRepo.GetByID(ctx, userID)
}

func (s *ProfileService) replaceAvatar(ctx context.Context, user *models.User, img *avatar.Image) error {
	objectPath := fmt.Sprintf("avatars/%d/%s%s", user.ID, uuid.New().String(), img.Extension)
	url, err := s.storage.Save(ctx, objectPath, newBytesReader(img.Data), img.ContentType)
	if err != nil {
		return fmt.Errorf("failed to store avatar: %w", err)
	}

	if err := s.profileRepo.UpdateAvatar(ctx, user.ID, &url); err != nil {
		if delErr := s.storage.Delete(ctx, url); delErr != nil {
			s.logger.Warn().Err(delErr).Str("url", url).Msg("Failed to remove orphaned avatar")
		}
		return err
	}

	if user.Profile != nil && user.Profile.Avatar != nil && *user.Profile.Avatar != "" {
		if err := s.storage.Delete(ctx, *user.Profile.Avatar); err != nil {
			s.logger.Warn().Err(err).Str("url", *user.Profile.Avatar).Msg("Failed to remove previous avatar")
		}
	}

	s.logger.Info().Int64("userID", user.ID).Str("avatar", url).Msg("Avatar updated")
	return nil
}
