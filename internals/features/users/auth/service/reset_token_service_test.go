package service

import (
	"errors"
	"testing"
)

func TestResetTokenRoundTrip(t *testing.T) {
	token, err := GenerateResetToken("test-secret", "user-123", "dana@example.com")
	if err != nil {
		t.Fatalf("GenerateResetToken: %v", err)
	}

	userID, email, err := ParseResetToken("test-secret", token)
	if err != nil {
		t.Fatalf("ParseResetToken: %v", err)
	}
	if userID != "user-123" || email != "dana@example.com" {
		t.Errorf("claims = (%s, %s)", userID, email)
	}
}

func TestResetTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateResetToken("secret-a", "user-123", "dana@example.com")
	if err != nil {
		t.Fatalf("GenerateResetToken: %v", err)
	}
	if _, _, err := ParseResetToken("secret-b", token); !errors.Is(err, ErrInvalidResetToken) {
		t.Fatalf("wrong secret accepted: %v", err)
	}
}

func TestResetTokenRejectsGarbage(t *testing.T) {
	if _, _, err := ParseResetToken("test-secret", "not-a-jwt"); !errors.Is(err, ErrInvalidResetToken) {
		t.Fatalf("garbage token accepted: %v", err)
	}
}

func TestGenerateResetTokenNeedsSecret(t *testing.T) {
	if _, err := GenerateResetToken("", "user-123", "dana@example.com"); err == nil {
		t.Fatal("empty secret accepted")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !CheckPassword(hash, "correct horse battery staple") {
		t.Error("valid password rejected")
	}
	if CheckPassword(hash, "wrong password") {
		t.Error("wrong password accepted")
	}
}
