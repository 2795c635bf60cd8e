package jwt

import (
	"errors"
	"time"

	"fitbook-storefront/internal/pkg/clock"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Inspector reads the access token issued by the booking backend.
// With a secret the signature is verified; without one the claims are decoded only for their expiry.
type Inspector struct {
	secretKey       []byte
	defaultDuration time.Duration
	clock           clock.Clock
}

func NewInspector(secretKey string, defaultDuration time.Duration, clk clock.Clock) *Inspector {
	var key []byte
	if secretKey != "" {
		key = []byte(secretKey)
	}
	return &Inspector{
		secretKey:       key,
		defaultDuration: defaultDuration,
		clock:           clk,
	}
}

// TTL returns how long the token remains usable. Tokens without exp fall back to the default duration.
func (s *Inspector) TTL(tokenString string) (time.Duration, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return 0, err
	}

	if claims.ExpiresAt == nil {
		return s.defaultDuration, nil
	}

	ttl := claims.ExpiresAt.Sub(s.clock.Now())
	if ttl <= 0 {
		return 0, ErrExpiredToken
	}
	return ttl, nil
}

func (s *Inspector) parse(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}

	if s.secretKey == nil {
		if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
			return nil, ErrInvalidToken
		}
		return claims, nil
	}

	// 有効期限はTTLで自前判定するため、ここではクロックを揃える
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
	)
	token, err := parser.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return s.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
