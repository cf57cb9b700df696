// Package auth issues and verifies the bearer credentials used by sellers
// and customer accounts.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Actor identifies the authenticated principal carried by a token.
type Actor struct {
	ID   string
	Type string // "seller" or "user"
}

type Tokens struct {
	secret []byte
	ttl    time.Duration
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Tokens{secret: []byte(secret), ttl: ttl}
}

func (t *Tokens) Sign(a Actor) (string, error) {
	claims := jwt.MapClaims{
		"sub":      a.ID,
		"userType": a.Type,
		"exp":      time.Now().Add(t.ttl).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(t.secret)
}

// Verify parses the token and returns the actor it asserts.
func (t *Tokens) Verify(raw string) (Actor, error) {
	tok, err := jwt.Parse(raw, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !tok.Valid {
		return Actor{}, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Actor{}, ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	typ, _ := claims["userType"].(string)
	if sub == "" || typ == "" {
		return Actor{}, ErrInvalidToken
	}
	return Actor{ID: sub, Type: typ}, nil
}
