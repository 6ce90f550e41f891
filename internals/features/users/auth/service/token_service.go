// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

// TokenClaims: identitas hasil verifikasi token.
type TokenClaims struct {
	AuthID    uuid.UUID
	Email     string
	Role      string
	ProfileID uuid.UUID
	Name      string
}

/* ==========================
   Sign
========================== */

func SignAccessToken(secret string, tc TokenClaims, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = accessTTLDefault
	}
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"typ":        "access",
		"sub":        tc.AuthID.String(),
		"email":      tc.Email,
		"role":       tc.Role,
		"profile_id": tc.ProfileID.String(),
		"name":       tc.Name,
		"iat":        now.Unix(),
		"exp":        now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func SignRefreshToken(secret string, authID uuid.UUID, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = refreshTTLDefault
	}
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"typ": "refresh",
		"sub": authID.String(),
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

/* ==========================
   Verify
========================== */

// ParseAccessToken verifikasi signature + expiry dan kembalikan claims.
// Error selalu 401 supaya pesan tidak bocorin detail.
func ParseAccessToken(secret, tokenString string) (TokenClaims, error) {
	var out TokenClaims

	tok, err := jwt.Parse(strings.TrimSpace(tokenString), func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return out, fiber.NewError(fiber.StatusUnauthorized, "Token tidak valid atau sudah kadaluarsa")
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return out, fiber.NewError(fiber.StatusUnauthorized, "Token tidak valid atau sudah kadaluarsa")
	}

	sub, _ := claims["sub"].(string)
	authID, err := uuid.Parse(sub)
	if err != nil {
		return out, fiber.NewError(fiber.StatusUnauthorized, "Token tidak valid atau sudah kadaluarsa")
	}

	out.AuthID = authID
	out.Email, _ = claims["email"].(string)
	out.Role, _ = claims["role"].(string)
	out.Name, _ = claims["name"].(string)
	if pid, ok := claims["profile_id"].(string); ok {
		if parsed, err := uuid.Parse(pid); err == nil {
			out.ProfileID = parsed
		}
	}
	return out, nil
}

/* ==========================
   Refresh token hash
========================== */

// ComputeRefreshHash: refresh token disimpan sebagai HMAC, bukan plaintext.
func ComputeRefreshHash(token, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}
