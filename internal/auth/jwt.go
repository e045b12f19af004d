package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/heartmarshall/bookflow-backend/internal/domain"
)

// JWTManager handles JWT access token generation and validation.
type JWTManager struct {
	secret       []byte
	issuer       string
	accessTTL    time.Duration
	anonymousTTL time.Duration
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, accessTTL, anonymousTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:       []byte(secret),
		issuer:       issuer,
		accessTTL:    accessTTL,
		anonymousTTL: anonymousTTL,
	}
}

// accessClaims extends standard JWT claims with the principal's identity.
type accessClaims struct {
	jwt.RegisteredClaims
	Email    string `json:"email,omitempty"`
	RoleID   int64  `json:"roleId"`
	RoleName string `json:"roleName"`
}

// Token is a signed access token and its lifetime.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// GenerateAccessToken creates a signed HS256 JWT for a persisted user.
func (m *JWTManager) GenerateAccessToken(p domain.Principal) (Token, error) {
	return m.sign(p, m.accessTTL)
}

// GenerateAnonymousToken creates a read-only Lector token. It never
// touches the users table.
func (m *JWTManager) GenerateAnonymousToken() (Token, error) {
	return m.sign(domain.AnonymousPrincipal(), m.anonymousTTL)
}

func (m *JWTManager) sign(p domain.Principal, ttl time.Duration) (Token, error) {
	now := time.Now()
	exp := now.Add(ttl)
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(p.UserID, 10),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email:    p.Email,
		RoleID:   p.RoleID,
		RoleName: string(p.RoleName),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return Token{}, fmt.Errorf("sign token: %w", err)
	}

	return Token{Value: signed, ExpiresAt: exp}, nil
}

// ValidateAccessToken parses and validates a JWT access token.
// Returns the principal carried by the token if valid.
func (m *JWTManager) ValidateAccessToken(tokenString string) (domain.Principal, error) {
	if tokenString == "" {
		return domain.Principal{}, errors.New("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})

	if err != nil {
		return domain.Principal{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return domain.Principal{}, errors.New("invalid token claims")
	}

	if claims.Issuer != m.issuer {
		return domain.Principal{}, fmt.Errorf("invalid issuer: expected %s, got %s", m.issuer, claims.Issuer)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID < 0 {
		return domain.Principal{}, fmt.Errorf("invalid subject %q", claims.Subject)
	}

	role := domain.RoleName(claims.RoleName)
	if !role.IsValid() {
		return domain.Principal{}, fmt.Errorf("invalid role %q", claims.RoleName)
	}

	return domain.Principal{
		UserID:   userID,
		Email:    claims.Email,
		RoleID:   claims.RoleID,
		RoleName: role,
	}, nil
}
