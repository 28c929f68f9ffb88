package users

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleOwner Role = "OWNER"
	RoleGuest Role = "GUEST"
)

const (
	DefaultPhoneNumber    = "0000000000"
	DefaultProfilePicture = "default.jpg"
)

type User struct {
	ID             uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	Name           string    `json:"name" gorm:"not null"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null"`
	Password       string    `json:"-" gorm:"not null"` // bcrypt hash, never serialised
	PhoneNumber    string    `json:"phone_number" gorm:"not null;default:'0000000000'"`
	IsOwner        bool      `json:"is_owner" gorm:"not null;default:false"`
	ProfilePicture string    `json:"profile_picture" gorm:"not null;default:'default.jpg'"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Role is derived from the owner flag
func (u *User) Role() Role {
	if u.IsOwner {
		return RoleOwner
	}
	return RoleGuest
}

func IsValidRole(role string) bool {
	switch Role(role) {
	case RoleOwner, RoleGuest:
		return true
	default:
		return false
	}
}
