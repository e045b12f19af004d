package domain

import "time"

// AnonymousUserID identifies the non-persisted public principal.
const AnonymousUserID int64 = 0

// Role is a row of the roles table.
type Role struct {
	ID          int64
	Name        RoleName
	Description *string
}

// User is a staff member who can sign in.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	RoleID       int64
	RoleName     RoleName
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins first and last name.
func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Principal is the identity resolved from a bearer token.
type Principal struct {
	UserID   int64
	Email    string
	RoleID   int64
	RoleName RoleName
}

// AnonymousPrincipal returns the read-only principal minted for public sessions.
func AnonymousPrincipal() Principal {
	return Principal{UserID: AnonymousUserID, RoleName: RoleReader}
}

// IsAnonymous reports whether p is the public pseudo-principal.
func (p Principal) IsAnonymous() bool {
	return p.UserID == AnonymousUserID || p.RoleName == RoleReader
}

// CanSeeAllStates reports whether p may see books outside the published state.
func (p Principal) CanSeeAllStates() bool {
	return !p.IsAnonymous() && p.RoleName.IsElevated()
}

// UserFilter narrows a user listing. Nil fields do not filter.
type UserFilter struct {
	Active *bool
	RoleID *int64
}

// UserUpdateParams lists user columns to change. Nil means keep.
type UserUpdateParams struct {
	FirstName *string
	LastName  *string
	Email     *string
	RoleID    *int64
	Active    *bool
}
