package helper

import (
	"errors"
	"regexp"
	"strings"

	"tokobuku_backend/internals/constants"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func isValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

func ValidateRegisterInput(email, password, name, role string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" || strings.TrimSpace(name) == "" {
		return errors.New("email, password, dan nama wajib diisi")
	}
	if !isValidEmail(email) {
		return errors.New("format email tidak valid")
	}
	if len(password) < 8 {
		return errors.New("password minimal 8 karakter")
	}
	if role != "" && !constants.IsValidRole(role) {
		return errors.New("role harus salah satu dari: " + strings.Join(constants.AllRoles, ", "))
	}
	return nil
}

func ValidateLoginInput(email, password string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return errors.New("email dan password wajib diisi")
	}
	return nil
}
