package auth

import (
	"fmt"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/bookflow-backend/internal/domain"
)

// MinPasswordLength is the shortest password the policy accepts.
const MinPasswordLength = 8

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordPolicy requires MinPasswordLength characters with at least
// one lowercase letter, one uppercase letter, one digit and one symbol.
// The returned error is a *domain.ValidationError on field.
func ValidatePasswordPolicy(field, password string) error {
	var lower, upper, digit, symbol bool
	n := 0
	for _, r := range password {
		n++
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}

	if n >= MinPasswordLength && lower && upper && digit && symbol {
		return nil
	}
	return domain.NewValidationError(field,
		fmt.Sprintf("must be at least %d characters and include lowercase, uppercase, digit and symbol", MinPasswordLength))
}
