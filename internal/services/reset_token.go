package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrBadResetToken = errors.New("invalid or expired reset token")

const resetTokenTTL = time.Hour

// ResetTokenService issues and verifies password-reset tokens. Lifetime is
// enforced here, at the issuer, not by the mailer that embeds the token.
type ResetTokenService struct {
	secret []byte
}

func NewResetTokenService(secret string) *ResetTokenService {
	return &ResetTokenService{secret: []byte(secret)}
}

type resetClaims struct {
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

func (s *ResetTokenService) Issue(userID string) (string, error) {
	now := time.Now().UTC()
	claims := resetClaims{
		Purpose: "password_reset",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(resetTokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify returns the user id the token was issued for.
func (s *ResetTokenService) Verify(token string) (string, error) {
	var claims resetClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadResetToken
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid || claims.Purpose != "password_reset" || claims.Subject == "" {
		return "", ErrBadResetToken
	}
	return claims.Subject, nil
}
