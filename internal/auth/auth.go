package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired   = errors.New("token expired")
	ErrInvalidToken   = errors.New("invalid token")
	ErrEmptySecret    = errors.New("session secret cannot be empty")
	ErrMissingSubject = errors.New("token has no subject")
)

// Identity is the verified external identity attached to a request. Subject
// is the identity provider's stable subject id; Email and FullName may be
// empty when the provider did not share them.
type Identity struct {
	Subject  string
	Email    string
	FullName string
}

// SessionClaims mirrors the session tokens minted by the identity provider.
type SessionClaims struct {
	Email    string `json:"email,omitempty"`
	FullName string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// VerifySession validates an HS256 session token and extracts the identity
// carried in its claims.
func VerifySession(tokenString, secret string) (*Identity, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&SessionClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		},
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}

	return &Identity{
		Subject:  claims.Subject,
		Email:    claims.Email,
		FullName: claims.FullName,
	}, nil
}
