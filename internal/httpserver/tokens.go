package httpserver

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// errBadToken covers every way a game token can fail to verify.
var errBadToken = errors.New("invalid game token")

// tokens issues and verifies the opaque game_id handed to clients: an HS256
// JWT whose subject is the internal game ID.
type tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func (t tokens) issue(gameID string) (string, error) {
	now := t.now()
	claims := jwt.RegisteredClaims{
		Subject:  gameID,
		IssuedAt: jwt.NewNumericDate(now),
	}
	if t.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(t.ttl))
	}
	ss, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign game token: %w", err)
	}
	return ss, nil
}

func (t tokens) parse(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(t.now))
	if err != nil || !tok.Valid {
		return "", errBadToken
	}
	if claims.Subject == "" {
		return "", errBadToken
	}
	return claims.Subject, nil
}
