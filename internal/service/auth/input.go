package auth

import (
	"errors"
	"strings"

	"github.com/heartmarshall/bookflow-backend/internal/auth"
	"github.com/heartmarshall/bookflow-backend/internal/domain"
)

// LoginInput holds parameters for the password login operation.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if len(i.Email) > 254 {
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > 72 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ChangePasswordInput holds parameters for the change password operation.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// Validate validates the change password input.
func (i ChangePasswordInput) Validate() error {
	var errs []domain.FieldError

	if i.CurrentPassword == "" {
		errs = append(errs, domain.FieldError{Field: "currentPassword", Message: "required"})
	}

	var policy *domain.ValidationError
	if errors.As(auth.ValidatePasswordPolicy("newPassword", i.NewPassword), &policy) {
		errs = append(errs, policy.Errors...)
	} else if i.NewPassword == i.CurrentPassword {
		errs = append(errs, domain.FieldError{Field: "newPassword", Message: "must differ from the current password"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
