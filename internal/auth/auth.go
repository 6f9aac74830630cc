// Package auth covers credential handling: bcrypt password hashing
// and HS256 bearer tokens, including the short-lived password-reset
// variant.
package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"fincheck/internal/core"
)

const purposeReset = "password_reset"

type Service struct {
	secret   []byte
	tokenTTL time.Duration
	resetTTL time.Duration
}

func NewService(secret string, tokenTTL, resetTTL time.Duration) *Service {
	return &Service{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		resetTTL: resetTTL,
	}
}

// HashPassword is the single hashing routine for every code path that
// persists a password.
func (s *Service) HashPassword(password string) (string, error) {
	if password == "" {
		return "", core.Invalid("password required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword compares a stored hash against a candidate password.
// Any mismatch, including an empty stored hash, reports unauthorized.
func (s *Service) VerifyPassword(hash, password string) error {
	if hash == "" {
		return fmt.Errorf("%w: account has no password", core.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return fmt.Errorf("%w: bad credentials", core.ErrUnauthorized)
	}
	return nil
}

type claims struct {
	Purpose string `json:"purpose,omitempty"`
	jwt.RegisteredClaims
}

// IssueToken signs an access token for the given user id.
func (s *Service) IssueToken(userID int64) (string, error) {
	return s.sign(userID, "", s.tokenTTL)
}

// IssueResetToken signs a single-purpose password-reset token. The
// purpose claim keeps it from passing access-token verification.
func (s *Service) IssueResetToken(userID int64) (string, error) {
	return s.sign(userID, purposeReset, s.resetTTL)
}

func (s *Service) sign(userID int64, purpose string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken checks signature and expiry of an access token and
// returns the user id it was issued for.
func (s *Service) VerifyToken(tokenString string) (int64, error) {
	return s.verify(tokenString, "")
}

// VerifyResetToken checks a password-reset token.
func (s *Service) VerifyResetToken(tokenString string) (int64, error) {
	return s.verify(tokenString, purposeReset)
}

func (s *Service) verify(tokenString, purpose string) (int64, error) {
	var c claims
	_, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		return 0, fmt.Errorf("%w: invalid or expired token", core.ErrUnauthorized)
	}
	if c.Purpose != purpose {
		return 0, fmt.Errorf("%w: wrong token purpose", core.ErrUnauthorized)
	}
	userID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, fmt.Errorf("%w: invalid token subject", core.ErrUnauthorized)
	}
	return userID, nil
}
