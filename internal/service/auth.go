package service

import (
	"context"

	"github.com/jeltev/printbaarn/internal/auth"
	"github.com/jeltev/printbaarn/internal/logging"
)

type AuthService struct {
	Creds  auth.Credentials
	Tokens *auth.TokenService
}

// Login verifies the admin credential and issues a session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	if username == "" || password == "" {
		return "", ErrValidation
	}
	if !s.Creds.VerifyLogin(username, password) {
		l.Warn("login_failed", "status", 401, "reason", "invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := s.Tokens.Create(s.Creds.Username)
	if err != nil {
		l.Error("login_failed", "status", 500, "reason", "cannot sign token", "error", err)
		return "", err
	}

	l.Info("login_successful")
	return token, nil
}
