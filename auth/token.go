package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenTTL is how long an issued token stays valid.
const tokenTTL = 24 * time.Hour

// Claims is the identity embedded in every issued token.
type Claims struct {
	ID       int64
	Username string
}

// IssueToken builds and signs an HS256 JWT carrying the user's id and
// username, expiring tokenTTL from now.
func IssueToken(secret string, c Claims) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"id":       c.ID,
		"username": c.Username,
		"exp":      now.Add(tokenTTL).Unix(),
		"iat":      now.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// VerifyToken parses and validates a token string, returning the embedded
// claims. Tokens signed with anything but HMAC are rejected outright.
func VerifyToken(secret, tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return Claims{}, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, errors.New("invalid token claims")
	}

	id, ok := claims["id"].(float64)
	if !ok {
		return Claims{}, errors.New("invalid token payload")
	}
	username, ok := claims["username"].(string)
	if !ok {
		return Claims{}, errors.New("invalid token payload")
	}

	return Claims{ID: int64(id), Username: username}, nil
}
