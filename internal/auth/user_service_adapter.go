package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// UserServiceAdapter lets other packages look up contact details without importing the auth service
type UserServiceAdapter struct {
	repo Repository
}

func NewUserServiceAdapter(repo Repository) *UserServiceAdapter {
	return &UserServiceAdapter{
		repo: repo,
	}
}

// GetContact returns the user's email and display name
func (usa *UserServiceAdapter) GetContact(ctx context.Context, userID uuid.UUID) (email, name string, err error) {
	user, err := usa.repo.GetUserByID(ctx, userID)
	if err != nil {
		return "", "", fmt.Errorf("failed to fetch user %s: %w", userID, err)
	}
	return user.Email, user.Name, nil
}
