package dto

import "github.com/edunexus/schoolrecords/internal/app/models"

// RegisterRequest represents user registration data. Password is write-only.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=150,username" example:"juan"`
	Email    string `json:"email" binding:"required,email,max=254" example:"juan@x.ph"`
	Password string `json:"password" binding:"required" example:"pw123"`
}

// RegisterResponse is returned after a successful registration
type RegisterResponse struct {
	ID       int64  `json:"id" example:"1"`
	Username string `json:"username" example:"juan"`
	Email    string `json:"email" example:"juan@x.ph"`
}

// TokenObtainRequest represents login credentials
type TokenObtainRequest struct {
	Username string `json:"username" binding:"required" example:"juan"`
	Password string `json:"password" binding:"required" example:"pw123"`
}

// TokenRefreshRequest carries the refresh token to rotate
type TokenRefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// TokenPairResponse holds an access token and a refresh token
type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// NewRegisterResponse maps a freshly created user
func NewRegisterResponse(u *models.User) RegisterResponse {
	return RegisterResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}
