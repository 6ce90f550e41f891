package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokobuku_backend/internals/constants"
)

func TestValidateRegisterInput_Role(t *testing.T) {
	for _, role := range constants.AllRoles {
		assert.NoError(t, ValidateRegisterInput("budi@example.com", "rahasia-banget", "Budi", role), role)
	}
	// role kosong ikut default di service
	assert.NoError(t, ValidateRegisterInput("budi@example.com", "rahasia-banget", "Budi", ""))

	err := ValidateRegisterInput("budi@example.com", "rahasia-banget", "Budi", "superuser")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user, author, admin")
}

func TestValidateRegisterInput_EmailDanPassword(t *testing.T) {
	assert.Error(t, ValidateRegisterInput("", "rahasia-banget", "Budi", "user"))
	assert.Error(t, ValidateRegisterInput("bukan-email", "rahasia-banget", "Budi", "user"))
	assert.Error(t, ValidateRegisterInput("budi@example.com", "pendek", "Budi", "user"))
}

func TestIsValidRole(t *testing.T) {
	assert.True(t, constants.IsValidRole(constants.RoleAuthor))
	assert.False(t, constants.IsValidRole("superuser"))
}
