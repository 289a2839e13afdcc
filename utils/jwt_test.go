package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{"sub": "u1", "exp": exp.Unix()})

	got, err := TokenExpiry(token)
	if err != nil {
		t.Fatalf("TokenExpiry: %v", err)
	}
	if !got.Equal(exp) {
		t.Errorf("expiry = %v, want %v", got, exp)
	}
}

func TestTokenExpiryMissingClaim(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "u1"})
	if _, err := TokenExpiry(token); err == nil {
		t.Error("expected error for token without exp claim")
	}
}

func TestTokenExpiryGarbage(t *testing.T) {
	if _, err := TokenExpiry("not.a.token"); err == nil {
		t.Error("expected error for unparsable token")
	}
}

func TestTokenSubject(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "u42", "exp": time.Now().Add(time.Hour).Unix()})

	sub, err := TokenSubject(token)
	if err != nil {
		t.Fatalf("TokenSubject: %v", err)
	}
	if sub != "u42" {
		t.Errorf("subject = %q, want u42", sub)
	}
}

func TestTokenSubjectMissing(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
	if _, err := TokenSubject(token); err == nil {
		t.Error("expected error for token without sub claim")
	}
}
