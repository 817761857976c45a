package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func newTestAuthenticator() *JWTAuthenticator {
	return NewJWTAuthenticator("access-secret", "refresh-secret", "bizlist", "bizlist", time.Hour, 24*time.Hour)
}

func TestGenerateAndValidateTokens(t *testing.T) {
	a := newTestAuthenticator()

	access, refresh, err := a.GenerateTokens("user-42", "owner@example.com")
	if err != nil {
		t.Fatalf("GenerateTokens: %v", err)
	}

	accessToken, err := a.ValidateAccessToken(access)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	claims, ok := accessToken.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("access claims are not MapClaims")
	}
	if claims["sub"] != "user-42" {
		t.Errorf("sub = %v, want user-42", claims["sub"])
	}
	if claims["email"] != "owner@example.com" {
		t.Errorf("email = %v, want owner@example.com", claims["email"])
	}

	if _, err := a.ValidateRefreshToken(refresh); err != nil {
		t.Fatalf("ValidateRefreshToken: %v", err)
	}
}

func TestTokensAreNotInterchangeable(t *testing.T) {
	a := newTestAuthenticator()

	access, refresh, err := a.GenerateTokens("user-42", "owner@example.com")
	if err != nil {
		t.Fatalf("GenerateTokens: %v", err)
	}

	if _, err := a.ValidateAccessToken(refresh); err == nil {
		t.Error("refresh token validated as access token")
	}
	if _, err := a.ValidateRefreshToken(access); err == nil {
		t.Error("access token validated as refresh token")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	a := NewJWTAuthenticator("access-secret", "refresh-secret", "bizlist", "bizlist", -time.Minute, -time.Minute)

	access, _, err := a.GenerateTokens("user-42", "owner@example.com")
	if err != nil {
		t.Fatalf("GenerateTokens: %v", err)
	}

	if _, err := a.ValidateAccessToken(access); err == nil {
		t.Error("expired token validated")
	}
}
