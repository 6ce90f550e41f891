package service

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "tokobuku_backend/internals/features/users/auth/model"
	adminModel "tokobuku_backend/internals/features/users/admin/model"
	authorModel "tokobuku_backend/internals/features/users/author/model"
	userModel "tokobuku_backend/internals/features/users/user/model"
	helper "tokobuku_backend/internals/helpers"
)

/* ==========================
   Account profile (union)
========================== */

// AccountProfile: satu credential + tepat satu varian profil sesuai auth_role.
// Varian diresolve SEKALI di sini; downstream tidak perlu cek role berulang.
type AccountProfile struct {
	Auth   authModel.AuthenticationModel
	User   *userModel.UserModel
	Author *authorModel.AuthorModel
	Admin  *adminModel.AdminModel
}

func (p *AccountProfile) Role() string { return p.Auth.AuthRole }

// ProfileID: id profil varian aktif (dipakai untuk cek kepemilikan resource).
func (p *AccountProfile) ProfileID() uuid.UUID {
	switch {
	case p.User != nil:
		return p.User.UserID
	case p.Author != nil:
		return p.Author.AuthorID
	case p.Admin != nil:
		return p.Admin.AdminID
	}
	return uuid.Nil
}

func (p *AccountProfile) DisplayName() string {
	switch {
	case p.User != nil:
		return p.User.UserName
	case p.Author != nil:
		return p.Author.AuthorName
	case p.Admin != nil:
		return p.Admin.AdminName
	}
	return ""
}

// Sanitized: bentuk response profil tanpa password hash.
func (p *AccountProfile) Sanitized() fiber.Map {
	out := fiber.Map{
		"auth_id": p.Auth.AuthID,
		"email":   p.Auth.AuthEmail,
		"role":    p.Auth.AuthRole,
	}
	switch {
	case p.User != nil:
		out["user"] = p.User
	case p.Author != nil:
		out["author"] = p.Author
	case p.Admin != nil:
		out["admin"] = p.Admin
	}
	return out
}

/* ==========================
   Loader
========================== */

// LoadProfileByAuthID resolve credential + varian profil dalam satu tempat.
func LoadProfileByAuthID(db *gorm.DB, authID uuid.UUID) (*AccountProfile, error) {
	var auth authModel.AuthenticationModel
	if err := db.First(&auth, "auth_id = ?", authID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Akun tidak ditemukan")
	}
	return loadVariant(db, auth)
}

func loadVariant(db *gorm.DB, auth authModel.AuthenticationModel) (*AccountProfile, error) {
	p := &AccountProfile{Auth: auth}
	switch auth.AuthRole {
	case authModel.RoleUser:
		var u userModel.UserModel
		if err := db.First(&u, "user_auth_id = ?", auth.AuthID).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Profil user tidak ditemukan")
		}
		p.User = &u
	case authModel.RoleAuthor:
		var a authorModel.AuthorModel
		if err := db.First(&a, "author_auth_id = ?", auth.AuthID).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Profil author tidak ditemukan")
		}
		p.Author = &a
	case authModel.RoleAdmin:
		var a adminModel.AdminModel
		if err := db.First(&a, "admin_auth_id = ?", auth.AuthID).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Profil admin tidak ditemukan")
		}
		p.Admin = &a
	default:
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Role tidak dikenal: "+auth.AuthRole)
	}
	return p, nil
}

// Me balikin profil role aktif untuk token yang sedang dipakai.
func Me(db *gorm.DB, c *fiber.Ctx) error {
	v, _ := c.Locals("auth_id").(string)
	authID, err := uuid.Parse(v)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	profile, err := LoadProfileByAuthID(db, authID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", profile.Sanitized())
}
