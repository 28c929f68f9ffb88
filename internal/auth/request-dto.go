package auth

// login request payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// registration request payload, is_owner decides between OWNER and GUEST
type RegisterRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=100"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	IsOwner        bool   `json:"is_owner"`
	PhoneNumber    string `json:"phone_number,omitempty" validate:"omitempty,max=20"`
	ProfilePicture string `json:"profile_picture,omitempty" validate:"omitempty,max=500"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token,omitempty"`
}
