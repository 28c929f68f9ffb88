package auth

import (
	"time"

	"github.com/BluezConcepts/API-backend/internal/users"
)

// represents the authentication response
type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int64        `json:"expires_in"`
}

// user data without the password hash
type UserResponse struct {
	UserID         string    `json:"user_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	IsOwner        bool      `json:"is_owner"`
	Role           string    `json:"role"`
	PhoneNumber    string    `json:"phone_number"`
	ProfilePicture string    `json:"profile_picture"`
	CreatedAt      time.Time `json:"created_at"`
}

func toUserResponse(u *users.User) UserResponse {
	return UserResponse{
		UserID:         u.ID.String(),
		Name:           u.Name,
		Email:          u.Email,
		IsOwner:        u.IsOwner,
		Role:           string(u.Role()),
		PhoneNumber:    u.PhoneNumber,
		ProfilePicture: u.ProfilePicture,
		CreatedAt:      u.CreatedAt,
	}
}
