package auth

import (
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// TokenManager issues and validates signed session tokens. Configuration is
// immutable after construction, so concurrent use needs no locking.
type TokenManager struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

var signingMethods = map[string]jwt.SigningMethod{
	"HS256": jwt.SigningMethodHS256,
	"HS384": jwt.SigningMethodHS384,
	"HS512": jwt.SigningMethodHS512,
}

// NewTokenManager builds a manager for the given secret and algorithm. An
// empty secret or an unknown algorithm is a configuration fault; callers are
// expected to treat it as fatal at startup.
func NewTokenManager(secret, algorithm string, ttlMinutes int) (*TokenManager, error) {
	if secret == "" {
		return nil, fmt.Errorf("token manager: secret key was not provided")
	}
	method, ok := signingMethods[algorithm]
	if !ok {
		return nil, fmt.Errorf("token manager: unsupported signing algorithm %q", algorithm)
	}
	if ttlMinutes <= 0 {
		ttlMinutes = 15
	}
	return &TokenManager{
		secret: []byte(secret),
		method: method,
		ttl:    time.Duration(ttlMinutes) * time.Minute,
	}, nil
}

// Issue signs a token carrying the subject and an absolute expiry. A
// non-positive ttl selects the configured default. Timestamps are UTC on both
// the issue and parse sides.
func (tm *TokenManager) Issue(subject string, ttl time.Duration) (string, time.Time, error) {
	if ttl <= 0 {
		ttl = tm.ttl
	}
	now := time.Now().UTC()
	expiresAt := now.Add(ttl)

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(tm.method, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Parse validates signature, signing method and expiry, and returns the
// subject claim. Every failure collapses into ErrInvalidCredentials so an
// attacker cannot distinguish a bad signature from an expired token or a
// missing claim.
func (tm *TokenManager) Parse(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != tm.method {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return tm.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidCredentials
	}
	if claims.Subject == "" {
		return "", ErrInvalidCredentials
	}
	return claims.Subject, nil
}
