package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the session lifetime. There is no server-side revocation; a
// token stays valid until it expires.
const TokenTTL = 24 * time.Hour

type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type TokenService struct {
	Secret []byte
}

func NewTokenService(secret []byte) *TokenService {
	return &TokenService{Secret: secret}
}

// Create signs a session token carrying the username claim.
func (s *TokenService) Create(username string) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
}

// Verify returns the claims for a valid token and nil for anything else:
// bad signature, malformed input, expiry. Callers never see the cause.
func (s *TokenService) Verify(tokenStr string) *Claims {
	var claims Claims
	tkn, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected sign method")
		}
		return s.Secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil
	}
	return &claims
}
