package identity

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Clinician is the signed-in user on whose behalf clinical writes are
// attributed.
type Clinician struct {
	ID   int64
	Name string
	Role string
}

// Provider supplies the current clinician. Implementations may return nil
// when nobody is signed in; callers that require attribution must treat
// nil as a precondition failure rather than panicking.
type Provider interface {
	Current() *Clinician
}

// StaticProvider returns a fixed clinician. Used in development mode and
// in tests.
type StaticProvider struct {
	Clinician *Clinician
}

func (p *StaticProvider) Current() *Clinician {
	return p.Clinician
}

// Claims is the token payload carrying the clinician identity.
type Claims struct {
	ClinicianID int64  `json:"cid"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	jwt.RegisteredClaims
}

// TokenProvider resolves the clinician from a signed HS256 session token.
// The token is verified once at construction; an invalid or expired token
// is rejected up front instead of surfacing later as a nil clinician.
type TokenProvider struct {
	clinician *Clinician
}

func NewTokenProvider(tokenString, secret string) (*TokenProvider, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, fmt.Errorf("parse session token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}
	if claims.ClinicianID == 0 {
		return nil, fmt.Errorf("session token missing clinician id")
	}

	return &TokenProvider{
		clinician: &Clinician{
			ID:   claims.ClinicianID,
			Name: claims.Name,
			Role: claims.Role,
		},
	}, nil
}

func (p *TokenProvider) Current() *Clinician {
	return p.clinician
}
