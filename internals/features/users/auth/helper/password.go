package helper

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Cost 12: adaptive hash, sengaja lebih tinggi dari bcrypt.DefaultCost.
const bcryptCost = 12

func HashPassword(password string) (string, error) {
	if len(password) < 8 {
		return "", errors.New("password minimal 8 karakter")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
