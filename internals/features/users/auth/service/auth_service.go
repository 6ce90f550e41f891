package service

import (
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tokobuku_backend/internals/configs"
	authHelper "tokobuku_backend/internals/features/users/auth/helper"
	authModel "tokobuku_backend/internals/features/users/auth/model"
	adminModel "tokobuku_backend/internals/features/users/admin/model"
	authorModel "tokobuku_backend/internals/features/users/author/model"
	userModel "tokobuku_backend/internals/features/users/user/model"
	cartModel "tokobuku_backend/internals/features/shop/carts/model"
	helper "tokobuku_backend/internals/helpers"
)

/* ==========================
   Helpers
========================== */

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		return getJWTSecret()
	}
	return secret, nil
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

/* ==========================
   REGISTER
========================== */

type registerInput struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	Phone     *string `json:"phone"`
	Gender    *string `json:"gender"`
	BirthDate *string `json:"birth_date"` // YYYY-MM-DD
}

// Register buat credential + tepat satu profil sesuai role dalam SATU transaksi.
// User baru sekalian dapat cart kosong.
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input registerInput
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Name = strings.TrimSpace(input.Name)
	if input.Role == "" {
		input.Role = authModel.RoleUser
	}

	if err := authHelper.ValidateRegisterInput(input.Email, input.Password, input.Name, input.Role); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Cek email duplikat duluan biar pesannya jelas (constraint tetap jaga race).
	var count int64
	if err := db.Model(&authModel.AuthenticationModel{}).
		Where("auth_email = ?", input.Email).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
	}

	passwordHash, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	var birthDate *time.Time
	if input.BirthDate != nil && strings.TrimSpace(*input.BirthDate) != "" {
		parsed, err := time.Parse("2006-01-02", strings.TrimSpace(*input.BirthDate))
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "birth_date harus format YYYY-MM-DD")
		}
		birthDate = &parsed
	}

	auth := authModel.AuthenticationModel{
		AuthEmail:        input.Email,
		AuthPasswordHash: passwordHash,
		AuthRole:         input.Role,
	}

	// Semua row dibuat atau tidak sama sekali.
	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&auth).Error; err != nil {
			return helper.TranslateDBError(err, "Email sudah terdaftar", "Referensi tidak valid", "Gagal membuat akun")
		}

		switch input.Role {
		case authModel.RoleUser:
			u := userModel.UserModel{
				UserAuthID:    auth.AuthID,
				UserName:      input.Name,
				UserPhone:     input.Phone,
				UserGender:    input.Gender,
				UserBirthDate: birthDate,
			}
			if err := tx.Create(&u).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat profil user")
			}
			// cart kosong ikut dibuat di transaksi yang sama
			if err := tx.Create(&cartModel.CartModel{CartUserID: u.UserID}).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat cart")
			}
		case authModel.RoleAuthor:
			a := authorModel.AuthorModel{
				AuthorAuthID: &auth.AuthID,
				AuthorName:   input.Name,
			}
			if err := tx.Create(&a).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat profil author")
			}
		case authModel.RoleAdmin:
			a := adminModel.AdminModel{
				AdminAuthID: auth.AuthID,
				AdminName:   input.Name,
			}
			if err := tx.Create(&a).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat profil admin")
			}
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	profile, err := loadVariant(db, auth)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return issueTokens(c, db, profile, fiber.StatusCreated, "Registrasi berhasil")
}

/* ==========================
   LOGIN (email + password)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := authHelper.ValidateLoginInput(input.Email, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Pesan sengaja generik: jangan bocorin field mana yang salah.
	var auth authModel.AuthenticationModel
	if err := db.First(&auth, "auth_email = ?", input.Email).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if err := authHelper.CheckPasswordHash(auth.AuthPasswordHash, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	profile, err := loadVariant(db, auth)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return issueTokens(c, db, profile, fiber.StatusOK, "Login berhasil")
}

/* ==========================
   LOGIN GOOGLE
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}
	email, name, googleID := strings.ToLower(claimSet.Email), claimSet.Name, claimSet.Sub

	var auth authModel.AuthenticationModel
	err = db.First(&auth, "auth_google_id = ?", googleID).Error
	if err != nil {
		// Belum ada -> provision user baru (credential + profil + cart) satu transaksi.
		dummyHash, herr := authHelper.HashPassword(uuid.NewString() + "Aa1!")
		if herr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
		}
		auth = authModel.AuthenticationModel{
			AuthEmail:        email,
			AuthPasswordHash: dummyHash,
			AuthRole:         authModel.RoleUser,
			AuthGoogleID:     &googleID,
		}
		if err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&auth).Error; err != nil {
				return helper.TranslateDBError(err, "Email sudah terdaftar", "Referensi tidak valid", "Gagal membuat akun Google")
			}
			u := userModel.UserModel{UserAuthID: auth.AuthID, UserName: name}
			if err := tx.Create(&u).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat profil user")
			}
			return tx.Create(&cartModel.CartModel{CartUserID: u.UserID}).Error
		}); err != nil {
			return helper.FromFiberError(c, err)
		}
	}

	profile, err := loadVariant(db, auth)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return issueTokens(c, db, profile, fiber.StatusOK, "Login berhasil")
}

/* ==========================
   ISSUE TOKENS + cookies
========================== */

func issueTokens(c *fiber.Ctx, db *gorm.DB, profile *AccountProfile, status int, message string) error {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	now := nowUTC()
	tc := TokenClaims{
		AuthID:    profile.Auth.AuthID,
		Email:     profile.Auth.AuthEmail,
		Role:      profile.Role(),
		ProfileID: profile.ProfileID(),
		Name:      profile.DisplayName(),
	}

	accessToken, err := SignAccessToken(jwtSecret, tc, accessTTLDefault)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat access token")
	}
	refreshToken, err := SignRefreshToken(refreshSecret, profile.Auth.AuthID, refreshTTLDefault)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	// Simpan refresh token (hashed)
	ua, ip := c.Get("User-Agent"), c.IP()
	rt := authModel.RefreshToken{
		AuthID:    profile.Auth.AuthID,
		TokenHash: ComputeRefreshHash(refreshToken, refreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: strptr(ua),
		IP:        strptr(ip),
	}
	if err := db.Create(&rt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan refresh token")
	}

	setAuthCookies(c, accessToken, refreshToken, now)

	resp := helper.SuccessResponse{
		Success: true,
		Message: message,
		Data: fiber.Map{
			"profile":      profile.Sanitized(),
			"access_token": accessToken,
		},
	}
	return c.Status(status).JSON(resp)
}

func setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(accessTTLDefault),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(refreshTTLDefault),
	})
}

/* ==========================
   REFRESH TOKEN
========================== */

// POST /api/auth/refresh-token
func RefreshTokens(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := helper.GetRefreshTokenFromCookie(c)
	if refreshCookie == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	authID, err := uuid.Parse(sub)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	// Pastikan hash refresh masih terdaftar
	h := ComputeRefreshHash(refreshCookie, refreshSecret)
	var exists bool
	if err := db.Raw(`SELECT EXISTS(SELECT 1 FROM refresh_tokens WHERE token_hash = ? AND revoked_at IS NULL AND expires_at > now())`, h).
		Scan(&exists).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !exists {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal")
	}

	// ROTATE: hapus token lama sebelum issue yang baru
	if err := db.Where("token_hash = ?", h).Delete(&authModel.RefreshToken{}).Error; err != nil {
		log.Printf("[refresh] delete old hash failed: %v", err)
	}

	profile, err := LoadProfileByAuthID(db, authID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return issueTokens(c, db, profile, fiber.StatusOK, "Token diperbarui")
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	accessToken := helper.GetRawAccessToken(c)

	// Blacklist access token (idempotent)
	if accessToken != "" {
		ttl := resolveBlacklistTTL(accessToken)
		bl := authModel.TokenBlacklist{
			Token:     accessToken,
			ExpiredAt: nowUTC().Add(ttl),
		}
		if err := db.Create(&bl).Error; err != nil && !helper.IsUniqueViolation(err) {
			log.Printf("[WARN] Failed to blacklist token: %v", err)
		}
	}

	// Hapus refresh token dari DB jika ada di cookie
	if rt := helper.GetRefreshTokenFromCookie(c); rt != "" {
		if secret, err := getRefreshSecret(); err == nil {
			h := ComputeRefreshHash(rt, secret)
			_ = db.Where("token_hash = ?", h).Delete(&authModel.RefreshToken{}).Error
		}
	}

	// Hapus cookies
	expired := nowUTC().Add(-time.Hour)
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			HTTPOnly: true,
			Secure:   true,
			SameSite: "None",
			Path:     "/",
			Expires:  expired,
			MaxAge:   -1,
		})
	}

	return helper.JsonOK(c, "Logout successful", nil)
}

func resolveBlacklistTTL(accessToken string) time.Duration {
	ttl := 2 * time.Minute
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" || accessToken == "" {
		return ttl
	}
	if tok, err := jwt.Parse(accessToken, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}); err == nil {
		if claims, ok := tok.Claims.(jwt.MapClaims); ok && tok.Valid {
			if exp, ok := claims["exp"].(float64); ok {
				until := time.Until(time.Unix(int64(exp), 0))
				if until > 0 {
					return until + 60*time.Second
				}
				return time.Minute
			}
		}
	}
	return ttl
}

/* ==========================
   CHANGE PASSWORD
========================== */

func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}

	v, _ := c.Locals("auth_id").(string)
	authID, err := uuid.Parse(v)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var auth authModel.AuthenticationModel
	if err := db.First(&auth, "auth_id = ?", authID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Akun tidak ditemukan")
	}

	// Cek password lama
	if err := authHelper.CheckPasswordHash(auth.AuthPasswordHash, input.CurrentPassword); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Password saat ini salah")
	}

	newHash, err := authHelper.HashPassword(input.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Token aktif tidak di-revoke (tidak ada revocation list untuk access token).
	if err := db.Model(&authModel.AuthenticationModel{}).
		Where("auth_id = ?", authID).
		Update("auth_password_hash", newHash).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helper.JsonUpdated(c, "Password changed successfully", nil)
}
