package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/edunexus/schoolrecords/internal/app/models/dto"
	"github.com/edunexus/schoolrecords/internal/app/services"
	"github.com/edunexus/schoolrecords/internal/middleware"
	"github.com/edunexus/schoolrecords/internal/pkg/apperrors"
	"github.com/gin-gonic/gin"
)

// ProfileController serves the current user's profile
type ProfileController struct {
	profileService *services.ProfileService
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService *services.ProfileService) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// GetProfile returns the authenticated user's profile
// @Summary Get current user profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserProfileResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /profile/ [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	userID, err := middleware.CurrentUserID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	user, err := c.profileService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUserProfileResponse(user))
}

// UpdateProfile changes user fields and the avatar. Used for both PUT and PATCH.
// @Summary Update current user profile
// @Description Accepts JSON or multipart/form-data. The avatar is a file part named avatar. Username is read-only.
// @Tags profile
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param email formData string false "Email"
// @Param first_name formData string false "First name"
// @Param last_name formData string false "Last name"
// @Param avatar formData file false "Avatar image (JPEG, PNG or GIF)"
// @Success 200 {object} dto.UserProfileResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid data, image or username change"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /profile/ [put]
// @Router /profile/ [patch]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	userID, err := middleware.CurrentUserID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateProfileRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBind(&req); err != nil {
			middleware.HandleBindingError(ctx, err)
			return
		}
	}

	update := services.ProfileUpdate{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	if strings.HasPrefix(ctx.ContentType(), "multipart/") {
		fileHeader, err := ctx.FormFile("avatar")
		switch {
		case errors.Is(err, http.ErrMissingFile):
		case err != nil:
			middleware.HandleAPIError(ctx, apperrors.NewValidationError("avatar", "The submitted data was not a file."))
			return
		default:
			file, err := fileHeader.Open()
			if err != nil {
				middleware.HandleAPIError(ctx, err)
				return
			}
			defer file.Close()
			update.Avatar = file
		}
	}

	user, err := c.profileService.UpdateProfile(ctx.Request.Context(), userID, update)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUserProfileResponse(user))
}
