// Package auth issues and verifies the signed bearer tokens the API uses.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("authorization token required")
)

// TokenTTL is how long issued tokens stay valid.
const TokenTTL = 365 * 24 * time.Hour

// Manager handles token generation and validation with an HS256 secret.
type Manager struct {
	secretKey []byte
	ttl       time.Duration
}

// NewManager creates a Manager signing with secretKey. Tokens expire after ttl.
func NewManager(secretKey string, ttl time.Duration) *Manager {
	return &Manager{secretKey: []byte(secretKey), ttl: ttl}
}

// Issue signs the supplied identity payload wholesale as the token claims,
// the way the /jwt endpoint hands back whatever the client posted, plus an
// expiry claim.
func (m *Manager) Issue(payload map[string]any) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}
	claims["exp"] = jwt.NewNumericDate(time.Now().Add(m.ttl))
	claims["iat"] = jwt.NewNumericDate(time.Now())

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning its claims if valid.
func (m *Manager) Verify(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
