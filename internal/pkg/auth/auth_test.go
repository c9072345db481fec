package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGenerateAndValidateToken(t *testing.T) {
	m := NewTokenManager("test-key", time.Hour)

	token, err := m.GenerateToken(42)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Id == "" {
		t.Error("token id should be set")
	}
	if ttl := claims.TTL(); ttl <= 0 || ttl > time.Hour {
		t.Errorf("TTL() = %v, want within (0, 1h]", ttl)
	}
}

func TestValidateTokenRejects(t *testing.T) {
	m := NewTokenManager("test-key", time.Hour)
	other := NewTokenManager("other-key", time.Hour)
	expired := NewTokenManager("test-key", -time.Minute)

	foreign, _ := other.GenerateToken(1)
	stale, _ := expired.GenerateToken(1)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "wrong key", token: foreign},
		{name: "expired", token: stale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.ValidateToken(tt.token); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestTokenFromRequest(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if _, err := TokenFromRequest(req); err != ErrNoToken {
		t.Errorf("expected ErrNoToken, got %v", err)
	}

	req.Header.Set("Authorization", "Bearer abc")
	if got, _ := TokenFromRequest(req); got != "abc" {
		t.Errorf("header token = %q, want abc", got)
	}

	req = httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "from-cookie"})
	if got, _ := TokenFromRequest(req); got != "from-cookie" {
		t.Errorf("cookie token = %q, want from-cookie", got)
	}
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if hash == "s3cret!" {
		t.Error("hash equals the password")
	}

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{name: "correct", password: "s3cret!", want: true},
		{name: "wrong", password: "secret", want: false},
		{name: "empty", password: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckPasswordHash(tt.password, hash); got != tt.want {
				t.Errorf("CheckPasswordHash() = %v, want %v", got, tt.want)
			}
		})
	}
}
