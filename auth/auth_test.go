// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "hunter22" {
		t.Error("HashPassword() returned the plaintext")
	}

	// Different salts: two hashes of the same secret must differ
	hash2, _ := HashPassword("hunter22")
	if hash == hash2 {
		t.Error("HashPassword() is deterministic, expected fresh salt per call")
	}

	if !CheckPassword("hunter22", hash) {
		t.Error("CheckPassword() rejected the original password")
	}
	if CheckPassword("hunter23", hash) {
		t.Error("CheckPassword() accepted a wrong password")
	}
	if CheckPassword("hunter22", hash2) != true {
		t.Error("CheckPassword() rejected a second hash of the same password")
	}
}

func TestIssueAndVerifyToken(t *testing.T) {
	tests := []struct {
		name    string
		userID  string
		isAdmin bool
	}{
		{"regular user", "64f1b2c3d4e5f60718293a4b", false},
		{"admin user", "64f1b2c3d4e5f60718293a4c", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := IssueToken(tt.userID, tt.isAdmin, "secret")
			if err != nil {
				t.Fatalf("IssueToken() error = %v", err)
			}

			claims, err := VerifyToken(token, "secret")
			if err != nil {
				t.Fatalf("VerifyToken() error = %v", err)
			}
			if claims.UserID != tt.userID {
				t.Errorf("UserID = %q, want %q", claims.UserID, tt.userID)
			}
			if claims.IsAdmin != tt.isAdmin {
				t.Errorf("IsAdmin = %v, want %v", claims.IsAdmin, tt.isAdmin)
			}
		})
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	token, err := IssueToken("64f1b2c3d4e5f60718293a4b", false, "secret-a")
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}

	if _, err := VerifyToken(token, "secret-b"); err != ErrInvalidToken {
		t.Errorf("VerifyToken() with wrong secret = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	// Build a token whose expiry is already in the past
	claims := Claims{
		UserID: "64f1b2c3d4e5f60718293a4b",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * TokenTTL)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-TokenTTL)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("failed to sign expired token: %v", err)
	}

	if _, err := VerifyToken(expired, "secret"); err != ErrInvalidToken {
		t.Errorf("VerifyToken() with expired token = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyToken_Garbage(t *testing.T) {
	if _, err := VerifyToken("not-a-token", "secret"); err != ErrInvalidToken {
		t.Errorf("VerifyToken() with garbage = %v, want ErrInvalidToken", err)
	}
}

func TestParseBearer(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid bearer", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lowercase scheme", "bearer abc.def.ghi", "abc.def.ghi", false},
		{"no space", "abc.def.ghi", "", true},
		{"wrong scheme", "Basic abc.def.ghi", "", true},
		{"scheme only", "Bearer ", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearer(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBearer(%q) error = %v, wantErr %v", tt.header, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseBearer(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}

func TestCanMutate(t *testing.T) {
	tests := []struct {
		name    string
		claims  *Claims
		ownerID string
		want    bool
	}{
		{"owner", &Claims{UserID: "u1"}, "u1", true},
		{"admin on foreign target", &Claims{UserID: "u2", IsAdmin: true}, "u1", true},
		{"non-owner non-admin", &Claims{UserID: "u2"}, "u1", false},
		{"nil claims", nil, "u1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanMutate(tt.claims, tt.ownerID); got != tt.want {
				t.Errorf("CanMutate() = %v, want %v", got, tt.want)
			}
		})
	}
}
