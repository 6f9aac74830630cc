package auth

import (
	"errors"
	"testing"
	"time"

	"fincheck/internal/core"
)

const testSecret = "test-secret-at-least-16-bytes"

func newTestService() *Service {
	return NewService(testSecret, time.Hour, 15*time.Minute)
}

func TestHashAndVerifyPassword(t *testing.T) {
	s := newTestService()

	hash, err := s.HashPassword("hunter22")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "hunter22" {
		t.Fatal("hash must not equal the plaintext")
	}

	if err := s.VerifyPassword(hash, "hunter22"); err != nil {
		t.Fatalf("correct password rejected: %v", err)
	}
	if err := s.VerifyPassword(hash, "wrong"); !errors.Is(err, core.ErrUnauthorized) {
		t.Fatalf("wrong password expected ErrUnauthorized, got %v", err)
	}
	if err := s.VerifyPassword("", "anything"); !errors.Is(err, core.ErrUnauthorized) {
		t.Fatalf("empty hash expected ErrUnauthorized, got %v", err)
	}
}

func TestHashPasswordEmpty(t *testing.T) {
	s := newTestService()
	if _, err := s.HashPassword(""); !errors.Is(err, core.ErrInvalidInput) {
		t.Fatalf("empty password expected ErrInvalidInput, got %v", err)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	s := newTestService()

	token, err := s.IssueToken(42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	userID, err := s.VerifyToken(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if userID != 42 {
		t.Fatalf("expected user 42, got %d", userID)
	}
}

func TestVerifyTokenFailures(t *testing.T) {
	s := newTestService()
	other := NewService("another-secret-16-bytes-long", time.Hour, 15*time.Minute)

	foreign, _ := other.IssueToken(1)
	reset, _ := s.IssueResetToken(1)

	expired := NewService(testSecret, -time.Minute, 15*time.Minute)
	stale, _ := expired.IssueToken(1)

	cases := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.token"},
		{"empty", ""},
		{"wrong secret", foreign},
		{"reset token on access path", reset},
		{"expired", stale},
	}
	for _, tc := range cases {
		if _, err := s.VerifyToken(tc.token); !errors.Is(err, core.ErrUnauthorized) {
			t.Fatalf("%s: expected ErrUnauthorized, got %v", tc.name, err)
		}
	}
}

func TestResetTokenPurpose(t *testing.T) {
	s := newTestService()

	reset, err := s.IssueResetToken(7)
	if err != nil {
		t.Fatalf("issue reset: %v", err)
	}
	userID, err := s.VerifyResetToken(reset)
	if err != nil {
		t.Fatalf("verify reset: %v", err)
	}
	if userID != 7 {
		t.Fatalf("expected user 7, got %d", userID)
	}

	// An access token must not pass reset verification.
	access, _ := s.IssueToken(7)
	if _, err := s.VerifyResetToken(access); !errors.Is(err, core.ErrUnauthorized) {
		t.Fatalf("access token on reset path expected ErrUnauthorized, got %v", err)
	}
}
