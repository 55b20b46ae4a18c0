// Package auth issues and verifies the identity tokens carried in the
// "token" cookie.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/assignhub/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the caller-supplied payload signed into a token. Its shape is
// not validated; in practice it carries at least an "email" key.
type Identity map[string]any

// Email returns the "email" value of the identity, or "" if absent.
func (i Identity) Email() string {
	email, _ := i["email"].(string)
	return email
}

// Claims are the registered claims plus the embedded identity.
type Claims struct {
	jwt.RegisteredClaims
	Identity Identity `json:"identity"`
}

func GenerateToken(identity Identity, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		Identity: identity,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and expiry of tokenString and returns the
// embedded identity. Expired tokens yield common.ErrTokenExpired, every other
// failure yields common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	if claims.Identity == nil {
		claims.Identity = Identity{}
	}

	return claims.Identity, nil
}

// TokenService binds the signing secret and token lifetime from config.
type TokenService struct {
	secret   []byte
	validity time.Duration
}

func NewTokenService(secretKey string, validity time.Duration) *TokenService {
	return &TokenService{secret: []byte(secretKey), validity: validity}
}

// Validity is the lifetime of issued tokens.
func (s *TokenService) Validity() time.Duration {
	return s.validity
}

func (s *TokenService) Issue(identity Identity) (string, error) {
	return GenerateToken(identity, s.secret, s.validity)
}

func (s *TokenService) Verify(token string) (Identity, error) {
	return ParseToken(token, s.secret)
}
