package middleware

import (
	"net/http"

	"github.com/heartmarshall/bookflow-backend/internal/domain"
)

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain applies mws outermost first: Chain(a, b)(h) is a(b(h)).
// Nil entries are skipped.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] != nil {
				final = mws[i](final)
			}
		}
		return final
	}
}

// Access is the class of callers a route admits.
type Access int

const (
	// Public admits everyone. Requests without a token run as the anonymous
	// Lector principal; a token that is sent must be valid.
	Public Access = iota
	// Signed admits any valid token, anonymous sessions included.
	Signed
	// Staff admits Administrador and Bibliotecario accounts.
	Staff
)

func (a Access) String() string {
	switch a {
	case Public:
		return "public"
	case Signed:
		return "signed"
	case Staff:
		return "staff"
	}
	return "unknown"
}

// Guard returns the authentication stack for a.
func Guard(a Access, validator tokenValidator) Middleware {
	switch a {
	case Signed:
		return Authenticate(validator)
	case Staff:
		return Chain(Authenticate(validator), RequireRole(domain.RoleAdmin, domain.RoleLibrarian))
	default:
		return OptionalAuthenticate(validator)
	}
}
