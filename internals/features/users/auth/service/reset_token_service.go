package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const resetTokenTTL = 15 * time.Minute

var ErrInvalidResetToken = errors.New("invalid or expired reset token")

type resetClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateResetToken signs a short-lived password-reset token for the user.
func GenerateResetToken(secret, userID, email string) (string, error) {
	if secret == "" {
		return "", errors.New("reset token secret not configured")
	}
	claims := resetClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(resetTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseResetToken verifies the token and returns the user id and email it
// was issued for.
func ParseResetToken(secret, token string) (userID, email string, err error) {
	if secret == "" {
		return "", "", ErrInvalidResetToken
	}

	claims := &resetClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return "", "", ErrInvalidResetToken
	}
	return claims.Subject, claims.Email, nil
}
