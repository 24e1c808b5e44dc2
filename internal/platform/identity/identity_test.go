package identity

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestTokenProvider_ValidToken(t *testing.T) {
	signed := signToken(t, "test-secret", Claims{
		ClinicianID: 7,
		Name:        "Dr. Asha Rao",
		Role:        "attending",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	p, err := NewTokenProvider(signed, "test-secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clinician := p.Current()
	if clinician == nil {
		t.Fatal("expected clinician, got nil")
	}
	if clinician.ID != 7 {
		t.Errorf("expected clinician id 7, got %d", clinician.ID)
	}
	if clinician.Name != "Dr. Asha Rao" {
		t.Errorf("unexpected name: %s", clinician.Name)
	}
	if clinician.Role != "attending" {
		t.Errorf("unexpected role: %s", clinician.Role)
	}
}

func TestTokenProvider_WrongSecret(t *testing.T) {
	signed := signToken(t, "test-secret", Claims{ClinicianID: 7})

	_, err := NewTokenProvider(signed, "other-secret")
	if err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestTokenProvider_ExpiredToken(t *testing.T) {
	signed := signToken(t, "test-secret", Claims{
		ClinicianID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	_, err := NewTokenProvider(signed, "test-secret")
	if err == nil {
		t.Error("expected error for expired token")
	}
}

func TestTokenProvider_MissingClinicianID(t *testing.T) {
	signed := signToken(t, "test-secret", Claims{Name: "No ID"})

	_, err := NewTokenProvider(signed, "test-secret")
	if err == nil {
		t.Error("expected error for token without clinician id")
	}
}

func TestStaticProvider(t *testing.T) {
	p := &StaticProvider{Clinician: &Clinician{ID: 1, Name: "Dev User"}}
	if got := p.Current(); got == nil || got.ID != 1 {
		t.Errorf("unexpected clinician: %+v", got)
	}

	empty := &StaticProvider{}
	if got := empty.Current(); got != nil {
		t.Errorf("expected nil clinician, got %+v", got)
	}
}
