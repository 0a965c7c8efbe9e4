// Package auth issues and validates the session tokens carried in the
// client's cookie.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"moodflow/internal/common"
)

// Claims carries the standard registered claims plus the authenticated
// user's ID.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

// GenerateToken signs an HS256 token for userID valid for validityDuration.
func GenerateToken(userID int64, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken parses and validates tokenString, returning the embedded
// user ID. Expired or tampered tokens yield common.ErrorInvalidToken.
func GetUserIDFromToken(tokenString string, secretKey []byte) (int64, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return 0, common.ErrorInvalidToken
	}

	if !token.Valid {
		return 0, common.ErrorInvalidToken
	}

	return claims.UserID, nil
}
