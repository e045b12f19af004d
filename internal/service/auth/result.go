package auth

import (
	"github.com/heartmarshall/bookflow-backend/internal/auth"
	"github.com/heartmarshall/bookflow-backend/internal/domain"
)

// AuthResult is returned by the login operations. User is nil for
// anonymous sessions.
type AuthResult struct {
	Token     auth.Token
	Principal domain.Principal
	User      *domain.User
}

// MeResult describes the caller. User is nil for anonymous sessions.
type MeResult struct {
	Principal domain.Principal
	User      *domain.User
}
