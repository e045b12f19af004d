package user

import (
	"net/mail"
	"strings"

	"github.com/heartmarshall/bookflow-backend/internal/domain"
)

const (
	maxNameLength  = 100
	maxEmailLength = 255
)

// CreateUserInput holds the parameters for registering a staff member.
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	RoleID    int64
}

// Validate checks all fields and collects all errors. The password policy is
// checked separately.
func (i CreateUserInput) Validate() error {
	var errs []domain.FieldError

	errs = checkName(errs, "firstName", i.FirstName)
	errs = checkName(errs, "lastName", i.LastName)
	errs = checkEmail(errs, i.Email)

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}
	if i.RoleID <= 0 {
		errs = append(errs, domain.FieldError{Field: "roleId", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateUserInput holds a partial profile update. Nil fields keep their value.
type UpdateUserInput struct {
	ID        int64
	FirstName *string
	LastName  *string
	Email     *string
	RoleID    *int64
}

// Validate checks the provided fields.
func (i UpdateUserInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "must be a positive id"})
	}
	if i.FirstName == nil && i.LastName == nil && i.Email == nil && i.RoleID == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.FirstName != nil {
		errs = checkName(errs, "firstName", *i.FirstName)
	}
	if i.LastName != nil {
		errs = checkName(errs, "lastName", *i.LastName)
	}
	if i.Email != nil {
		errs = checkEmail(errs, *i.Email)
	}
	if i.RoleID != nil && *i.RoleID <= 0 {
		errs = append(errs, domain.FieldError{Field: "roleId", Message: "must be a positive id"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateUserInput) params() domain.UserUpdateParams {
	return domain.UserUpdateParams{
		FirstName: trimPtr(i.FirstName),
		LastName:  trimPtr(i.LastName),
		Email:     normalizeEmailPtr(i.Email),
		RoleID:    i.RoleID,
	}
}

func checkName(errs []domain.FieldError, field, v string) []domain.FieldError {
	trimmed := strings.TrimSpace(v)
	switch {
	case trimmed == "":
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	case len([]rune(trimmed)) > maxNameLength:
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}

func checkEmail(errs []domain.FieldError, email string) []domain.FieldError {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if len(trimmed) > maxEmailLength {
		return append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}
	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed {
		return append(errs, domain.FieldError{Field: "email", Message: "invalid email format"})
	}
	return errs
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}

func normalizeEmailPtr(s *string) *string {
	if s == nil {
		return nil
	}
	n := strings.ToLower(strings.TrimSpace(*s))
	return &n
}
