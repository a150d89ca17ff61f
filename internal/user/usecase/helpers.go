package usecase

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"taskflow/internal/user"
)

// normalizeEmail lowercases and trims so lookups are case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (uc *implUseCase) hashPassword(password string) (string, error) {
	if len(password) < minPasswordLength {
		return "", user.ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), uc.hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// coalesce returns newVal when it is non-blank, otherwise existing.
func coalesce(newVal, existing string) string {
	if strings.TrimSpace(newVal) != "" {
		return strings.TrimSpace(newVal)
	}
	return existing
}
