package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ResetTokenTTL is how long a password-reset link stays valid.
const ResetTokenTTL = 1 * time.Hour

type ResetTokenClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateResetToken issues a signed, time-limited password-reset token for
// the given user.
func GenerateResetToken(userID uint, email string, secret string) (string, error) {
	if secret == "" {
		return "", errors.New("secret is required for token generation")
	}
	claims := ResetTokenClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ResetTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   "password-reset",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyResetToken validates a password-reset token and returns its claims.
func VerifyResetToken(tokenString, secret string) (*ResetTokenClaims, error) {
	if secret == "" {
		return nil, errors.New("secret is required for token verification")
	}
	claims := &ResetTokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Subject != "password-reset" {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
