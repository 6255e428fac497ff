package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateToken_RoundTrip(t *testing.T) {
	tokenStr, err := GenerateToken("test-secret", "user-42", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if !token.Valid {
		t.Fatal("token should be valid")
	}
	if claims.Subject != "user-42" {
		t.Errorf("Subject = %q", claims.Subject)
	}

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if ttl != time.Hour {
		t.Errorf("ttl = %v, want 1h", ttl)
	}
}

func TestGenerateToken_WrongKeyFailsValidation(t *testing.T) {
	tokenStr, err := GenerateToken("test-secret", "user-42", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	_, err = jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	if err == nil {
		t.Error("expected signature validation to fail")
	}
}
