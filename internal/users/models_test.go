package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserRole(t *testing.T) {
	assert.Equal(t, RoleOwner, (&User{IsOwner: true}).Role())
	assert.Equal(t, RoleGuest, (&User{}).Role())
}

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole("OWNER"))
	assert.True(t, IsValidRole("GUEST"))
	assert.False(t, IsValidRole("ADMIN"))
	assert.False(t, IsValidRole("owner"))
}
