package service

import (
	"context"
	"encoding/base64"

	"github.com/jeltev/printbaarn/internal/auth"
	"github.com/jeltev/printbaarn/internal/config"
	"github.com/jeltev/printbaarn/internal/hash"
	"github.com/jeltev/printbaarn/internal/logging"
	"github.com/jeltev/printbaarn/internal/transport"
)

// SettingsService rewrites the .env file for credential and mail settings.
// Changes take effect after a restart; the running process keeps the config
// it booted with.
type SettingsService struct {
	EnvFile string
	Creds   auth.Credentials
}

// ChangePassword verifies the current password, hashes the new one and
// stores it base64-wrapped. Returns the new wrapped hash so the admin UI can
// show it.
func (s *SettingsService) ChangePassword(ctx context.Context, currentPassword, newPassword string) (string, error) {
	l := logging.FromContext(ctx).With("svc", "settings.password")

	if currentPassword == "" || newPassword == "" {
		return "", ErrValidation
	}
	if !hash.CheckPassword(s.Creds.PasswordHash, currentPassword) {
		l.Warn("change_rejected", "reason", "current password mismatch")
		return "", ErrInvalidCredentials
	}

	newHash, err := hash.HashPassword(newPassword)
	if err != nil {
		l.Error("hash_failed", "error", err)
		return "", err
	}
	wrapped := base64.StdEncoding.EncodeToString([]byte(newHash))

	if err := config.UpdateEnvFile(s.EnvFile, map[string]string{
		"ADMIN_PASSWORD_HASH_BASE64": wrapped,
	}); err != nil {
		l.Error("env_write_failed", "error", err)
		return "", err
	}

	l.Info("password_changed")
	return wrapped, nil
}

// UpdateEmailSettings stores the outbound mail configuration.
func (s *SettingsService) UpdateEmailSettings(ctx context.Context, req transport.EmailSettingsRequest) error {
	l := logging.FromContext(ctx).With("svc", "settings.email")

	if req.OrderEmail == "" || req.SMTPHost == "" || req.SMTPPort == "" || req.SMTPUser == "" || req.SMTPPass == "" {
		return ErrValidation
	}

	if err := config.UpdateEnvFile(s.EnvFile, map[string]string{
		"ORDER_EMAIL": req.OrderEmail,
		"SMTP_HOST":   req.SMTPHost,
		"SMTP_PORT":   req.SMTPPort,
		"SMTP_USER":   req.SMTPUser,
		"SMTP_PASS":   req.SMTPPass,
	}); err != nil {
		l.Error("env_write_failed", "error", err)
		return err
	}

	l.Info("email_settings_saved")
	return nil
}
