package security

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	DefaultTokenTTL = 7 * 24 * time.Hour
)

var (
	ErrMissingSecret = errors.New("token secret is required")
	ErrMissingToken  = errors.New("missing bearer token")
	ErrInvalidToken  = errors.New("invalid token")
)

// IssueToken signs an HS256 bearer token whose subject is the profile id.
func IssueToken(secret []byte, profileID string, ttl time.Duration, now time.Time) (string, error) {
	if len(secret) == 0 {
		return "", ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	tokenID, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate token id: %w", err)
	}

	claims := jwt.RegisteredClaims{
		ID:        tokenID.String(),
		Subject:   profileID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseToken verifies a token and returns its subject.
func ParseToken(secret []byte, rawToken string, now time.Time) (string, error) {
	if strings.TrimSpace(rawToken) == "" {
		return "", ErrMissingToken
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	subject := strings.TrimSpace(claims.Subject)
	if subject == "" {
		return "", ErrInvalidToken
	}
	return subject, nil
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, error) {
	value := strings.TrimSpace(header)
	scheme, token, found := strings.Cut(value, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrMissingToken
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}
