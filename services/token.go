package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/worklifedesks/utils"
)

var ErrInvalidToken = errors.New("invalid token")

// GenerateJWT mints a signed access token carrying the user's email and
// session id.
func GenerateJWT(email, sessionID string) (string, error) {
	expirationTime := time.Now().Add(time.Duration(utils.JWTExpirationTime) * time.Second)

	claims := jwt.MapClaims{
		"email":      email,
		"session_id": sessionID,
		"exp":        expirationTime.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(utils.JWTSecretKey))
}

// ValidateJWT parses and verifies a token, returning the email and
// session id claims.
func ValidateJWT(tokenString string) (email, sessionID string, err error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(utils.JWTSecretKey), nil
	})
	if err != nil || !token.Valid {
		return "", "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", ErrInvalidToken
	}
	email, _ = claims["email"].(string)
	sessionID, _ = claims["session_id"].(string)
	if email == "" {
		return "", "", ErrInvalidToken
	}
	return email, sessionID, nil
}
