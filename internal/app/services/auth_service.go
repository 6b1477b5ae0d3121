package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/edunexus/schoolrecords/internal/app/models"
	"github.com/edunexus/schoolrecords/internal/app/models/dto"
	"github.com/edunexus/schoolrecords/internal/app/repositories"
	"github.com/edunexus/schoolrecords/internal/pkg/apperrors"
	"github.com/edunexus/schoolrecords/internal/pkg/auth"
	"github.com/edunexus/schoolrecords/internal/pkg/validation"
	"github.com/rs/zerolog"
)

// TokenBlacklist is a shared record of spent refresh tokens
type TokenBlacklist interface {
	// Blacklist returns false when jti was already blacklisted
	Blacklist(ctx context.Context, jti string, ttl time.Duration) (bool, error)
}

// AuthService handles registration and the token lifecycle
type AuthService struct {
	userRepo     repositories.IUserRepository
	tokenRepo    repositories.ITokenRepository
	jwtService   *auth.JWTService
	blacklist    TokenBlacklist
	passwordCost int
	logger       zerolog.Logger
}

// NewAuthService creates a new AuthService. blacklist may be nil.
func NewAuthService(
	userRepo repositories.IUserRepository,
	tokenRepo repositories.ITokenRepository,
	jwtService *auth.JWTService,
	blacklist TokenBlacklist,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		tokenRepo:    tokenRepo,
		jwtService:   jwtService,
		blacklist:    blacklist,
		passwordCost: auth.BcryptCost,
		logger:       logger,
	}
}

// WithPasswordCost changes the bcrypt cost, tests use bcrypt.MinCost
func (s *AuthService) WithPasswordCost(cost int) *AuthService {
	s.passwordCost = cost
	return s
}

// Register creates an active user with a hashed password and an empty profile
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if !validation.IsValidUsername(username) {
		return nil, apperrors.NewValidationError("username",
			"Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters.")
	}
	if password == "" {
		return nil, apperrors.NewValidationError("password", "This field may not be blank.")
	}

	hash, err := auth.HashPasswordWithCost(password, s.passwordCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: username,
		Email:    strings.TrimSpace(email),
		Password: hash,
		IsActive: true,
	}
	if err := s.userRepo.CreateWithProfile(ctx, user); err != nil {
		return nil, registrationError(err)
	}

	s.logger.Info().Int64("userID", user.ID).Str("username", user.Username).Msg("User registered")
	return user, nil
}

// registrationError reports a taken username or email as a field validation error.
// The conflict sentinel stays in the chain.
func registrationError(err error) error {
	if !errors.Is(err, apperrors.ErrConflict) {
		return err
	}
	field, message := "", "A record with these values already exists."
	if ce, ok := apperrors.AsCustomError(err); ok {
		field, message = ce.Field, ce.Message
	}
	return &apperrors.CustomError{
		Err:     fmt.Errorf("%w: %w", apperrors.ErrValidationFailed, err),
		Message: message,
		Field:   field,
	}
}

// ObtainTokenPair checks the credentials and issues an access/refresh pair
func (s *AuthService) ObtainTokenPair(ctx context.Context, username, password string) (*dto.TokenPairResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	pair, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, s.jwtService.Now().UTC()); err != nil {
		s.logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to record last login")
	}
	return pair, nil
}

// RefreshTokenPair spends a refresh token and issues a new pair. A refresh token
// can be spent once; replays fail with ErrTokenRevoked.
func (s *AuthService) RefreshTokenPair(ctx context.Context, refreshToken string) (*dto.TokenPairResponse, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	now := s.jwtService.Now()
	if s.blacklist != nil {
		ttl := claims.ExpiresAt.Time.Sub(now)
		fresh, err := s.blacklist.Blacklist(ctx, claims.ID, ttl)
		if err != nil {
			s.logger.Warn().Err(err).Str("jti", claims.ID).Msg("Token blacklist unavailable, relying on database revocation")
		} else if !fresh {
			s.logger.Warn().Str("jti", claims.ID).Int64("userID", claims.UserID).Msg("Refresh token replay rejected")
			return nil, apperrors.ErrTokenRevoked
		}
	}

	userID, err := s.tokenRepo.Revoke(ctx, claims.ID, now)
	if err != nil {
		if errors.Is(err, apperrors.ErrTokenRevoked) {
			s.logger.Warn().Str("jti", claims.ID).Int64("userID", claims.UserID).Msg("Refresh token replay rejected")
		}
		return nil, err
	}
	if userID != claims.UserID {
		return nil, apperrors.ErrTokenInvalid
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	return s.issueTokenPair(ctx, user)
}

// CleanupExpiredTokens removes refresh tokens that expired
func (s *AuthService) CleanupExpiredTokens(ctx context.Context) (int64, error) {
	n, err := s.tokenRepo.DeleteExpired(ctx, s.jwtService.Now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logger.Info().Int64("deleted", n).Msg("Expired refresh tokens removed")
	}
	return n, nil
}

func (s *AuthService) issueTokenPair(ctx context.Context, user *models.User) (*dto.TokenPairResponse, error) {
	pair, err := s.jwtService.GenerateTokenPair(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	record := &models.RefreshToken{
		JTI:       pair.RefreshJTI,
		UserID:    user.ID,
		ExpiresAt: pair.RefreshExpiresAt,
	}
	if err := s.tokenRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("token saving error: %w", err)
	}

	return &dto.TokenPairResponse{
		Access:  pair.AccessToken,
		Refresh: pair.RefreshToken,
	}, nil
}
