package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authModel "tokobuku_backend/internals/features/users/auth/model"
	adminModel "tokobuku_backend/internals/features/users/admin/model"
	authorModel "tokobuku_backend/internals/features/users/author/model"
	userModel "tokobuku_backend/internals/features/users/user/model"
)

func TestAccountProfile_VariantUser(t *testing.T) {
	authID := uuid.New()
	userID := uuid.New()
	p := &AccountProfile{
		Auth: authModel.AuthenticationModel{
			AuthID:           authID,
			AuthEmail:        "budi@example.com",
			AuthPasswordHash: "$2a$12$rahasia",
			AuthRole:         authModel.RoleUser,
		},
		User: &userModel.UserModel{UserID: userID, UserAuthID: authID, UserName: "Budi"},
	}

	assert.Equal(t, authModel.RoleUser, p.Role())
	assert.Equal(t, userID, p.ProfileID())
	assert.Equal(t, "Budi", p.DisplayName())
}

func TestAccountProfile_VariantAuthor(t *testing.T) {
	authorID := uuid.New()
	p := &AccountProfile{
		Auth:   authModel.AuthenticationModel{AuthRole: authModel.RoleAuthor},
		Author: &authorModel.AuthorModel{AuthorID: authorID, AuthorName: "Pramoedya"},
	}
	assert.Equal(t, authorID, p.ProfileID())
	assert.Equal(t, "Pramoedya", p.DisplayName())
}

func TestAccountProfile_VariantAdmin(t *testing.T) {
	adminID := uuid.New()
	p := &AccountProfile{
		Auth:  authModel.AuthenticationModel{AuthRole: authModel.RoleAdmin},
		Admin: &adminModel.AdminModel{AdminID: adminID, AdminName: "Siti"},
	}
	assert.Equal(t, adminID, p.ProfileID())
	assert.Equal(t, "Siti", p.DisplayName())
}

func TestAccountProfile_SanitizedTanpaHash(t *testing.T) {
	p := &AccountProfile{
		Auth: authModel.AuthenticationModel{
			AuthID:           uuid.New(),
			AuthEmail:        "budi@example.com",
			AuthPasswordHash: "$2a$12$rahasia",
			AuthRole:         authModel.RoleUser,
		},
		User: &userModel.UserModel{UserID: uuid.New(), UserName: "Budi"},
	}

	out := p.Sanitized()
	require.IsType(t, fiber.Map{}, out)
	for k, v := range out {
		assert.NotEqual(t, "$2a$12$rahasia", v, "hash bocor lewat key %s", k)
	}
}
