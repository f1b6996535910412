// Package session supplies bearer tokens to the gateway. Token issuance is
// the identity provider's job; the helpers here cover the dev backend and
// tests.
package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenSource yields the current bearer token. An empty string is valid:
// the request still goes out and the backend answers 401, which callers
// treat as "unauthenticated", not as backend-down.
type TokenSource interface {
	Token() string
}

// Static wraps a fixed token string.
type Static string

func (s Static) Token() string { return string(s) }

// Anonymous is the no-session source.
var Anonymous = Static("")

// Mint issues an HS256 token for the dev backend and tests.
func Mint(userID int, role, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Identity extracts the user id and role from a signed token.
func Identity(tokenString, secret string) (int, string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, "", errors.New("invalid token claims")
	}

	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return 0, "", errors.New("invalid user id in token")
	}
	role, _ := claims["role"].(string)

	return int(userIDFloat), role, nil
}
