package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const localTokenTTL = 24 * time.Hour

// LocalProvider is a single-account provider for running the portal without
// a Cognito user pool.
type LocalProvider struct {
	username     string
	passwordHash []byte
	secret       []byte
	now          func() time.Time
}

func NewLocalProvider(username, passwordHash, secret string) *LocalProvider {
	return &LocalProvider{
		username:     username,
		passwordHash: []byte(passwordHash),
		secret:       []byte(secret),
		now:          time.Now,
	}
}

func (p *LocalProvider) Authenticate(ctx context.Context, username, password string) (string, error) {
	if p.username == "" || len(p.passwordHash) == 0 || len(p.secret) == 0 {
		return "", fmt.Errorf("local identity provider is not configured: %w", ErrAuthProvider)
	}
	if username != p.username {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(p.passwordHash, []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("invalid LOCAL_AUTH_PASSWORD_HASH: %v: %w", err, ErrAuthProvider)
	}

	now := p.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      username,
		"username": username,
		"iat":      now.Unix(),
		"exp":      now.Add(localTokenTTL).Unix(),
	})
	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %v: %w", err, ErrAuthProvider)
	}
	return signed, nil
}
