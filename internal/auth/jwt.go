// Package auth issues and validates the JWT tokens that identify callers.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenTTL is how long an issued token stays valid.
const tokenTTL = 72 * time.Hour

var jwtSecretKey = []byte("dev-only-secret-change-me")

// SetSecret installs the signing key loaded from configuration.
// Must be called once at startup before any token is issued.
func SetSecret(secret string) {
	if secret != "" {
		jwtSecretKey = []byte(secret)
	}
}

// Identity is the authenticated caller extracted from a token.
type Identity struct {
	UserID string
	Role   string
}

// GenerateToken creates a signed JWT for the given user.
func GenerateToken(userID, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID, // Subject is the user ID
		"role": role,
		"exp":  now.Add(tokenTTL).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecretKey)
}

// ValidateToken parses and validates a JWT token string, returning the
// caller identity when the token is genuine and unexpired.
func ValidateToken(tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Reject tokens signed with anything but our HMAC method.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecretKey, nil
	})
	if err != nil {
		return Identity{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Identity{}, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return Identity{}, errors.New("invalid subject claim")
	}
	role, _ := claims["role"].(string)

	return Identity{UserID: sub, Role: role}, nil
}
