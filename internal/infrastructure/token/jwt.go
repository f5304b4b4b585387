package token

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/99minutos/auth-system/internal/core/domain"
)

const defaultTTL = 24 * time.Hour

// JWTGenerator issues HS256-signed access tokens whose subject is the user id.
type JWTGenerator struct {
	secret string
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTGenerator(secret string, ttl time.Duration) *JWTGenerator {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &JWTGenerator{secret: secret, ttl: ttl, now: time.Now}
}

func (g *JWTGenerator) Generate(_ context.Context, userID string) (string, error) {
	if g.secret == "" {
		return "", domain.NewMissingParamError("secret")
	}
	if userID == "" {
		return "", domain.NewMissingParamError("id")
	}

	now := g.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(g.secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// TTL is how long issued tokens stay valid.
func (g *JWTGenerator) TTL() time.Duration {
	return g.ttl
}

// Parse validates an access token signed with secret and returns its subject.
func Parse(accessToken, secret string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(accessToken, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if !tkn.Valid || claims.Subject == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return claims.Subject, nil
}
