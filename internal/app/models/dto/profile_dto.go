package dto

import "github.com/edunexus/schoolrecords/internal/app/models"

// UserProfileResponse is the current user's composed user + profile view
type UserProfileResponse struct {
	ID        int64   `json:"id" example:"1"`
	Username  string  `json:"username" example:"juan"`
	Email     string  `json:"email" example:"juan@x.ph"`
	FirstName string  `json:"first_name" example:"Juan"`
	LastName  string  `json:"last_name" example:"Dela Cruz"`
	Avatar    *string `json:"avatar" example:"http://localhost:8000/media/avatars/1/3f1c.png"`
}

// UpdateProfileRequest is accepted as JSON or multipart/form-data. The avatar travels as a file part.
type UpdateProfileRequest struct {
	Username  *string `json:"username" form:"username"`
	Email     *string `json:"email" form:"email" binding:"omitempty,email,max=254"`
	FirstName *string `json:"first_name" form:"first_name" binding:"omitempty,max=150"`
	LastName  *string `json:"last_name" form:"last_name" binding:"omitempty,max=150"`
}

// NewUserProfileResponse maps a user and its profile
func NewUserProfileResponse(u *models.User) UserProfileResponse {
	resp := UserProfileResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
	if u.Profile != nil && u.Profile.Avatar != nil && *u.Profile.Avatar != "" {
		avatar := *u.Profile.Avatar
		resp.Avatar = &avatar
	}
	return resp
}
