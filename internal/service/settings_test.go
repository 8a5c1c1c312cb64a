package service

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeltev/printbaarn/internal/auth"
	"github.com/jeltev/printbaarn/internal/hash"
	"github.com/jeltev/printbaarn/internal/transport"
)

func newSettingsService(t *testing.T, currentPassword string) *SettingsService {
	t.Helper()

	h, err := hash.HashPassword(currentPassword)
	require.NoError(t, err)

	return &SettingsService{
		EnvFile: filepath.Join(t.TempDir(), ".env"),
		Creds:   auth.Credentials{Username: "admin", PasswordHash: h},
	}
}

func TestChangePassword_WritesBase64Hash(t *testing.T) {
	t.Parallel()

	svc := newSettingsService(t, "oud-wachtwoord")

	wrapped, err := svc.ChangePassword(context.Background(), "oud-wachtwoord", "nieuw-wachtwoord")
	require.NoError(t, err)

	decoded, err := base64.StdEncoding.DecodeString(wrapped)
	require.NoError(t, err)
	assert.True(t, hash.CheckPassword(string(decoded), "nieuw-wachtwoord"))
	assert.False(t, hash.CheckPassword(string(decoded), "oud-wachtwoord"))

	data, err := os.ReadFile(svc.EnvFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ADMIN_PASSWORD_HASH_BASE64="+wrapped)
}

func TestChangePassword_WrongCurrentPassword(t *testing.T) {
	t.Parallel()

	svc := newSettingsService(t, "oud-wachtwoord")

	_, err := svc.ChangePassword(context.Background(), "fout", "nieuw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, statErr := os.Stat(svc.EnvFile)
	assert.True(t, os.IsNotExist(statErr), "env file must stay untouched on rejection")
}

func TestChangePassword_EmptyFields(t *testing.T) {
	t.Parallel()

	svc := newSettingsService(t, "oud-wachtwoord")
	ctx := context.Background()

	_, err := svc.ChangePassword(ctx, "", "nieuw")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.ChangePassword(ctx, "oud-wachtwoord", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateEmailSettings_WritesAllKeys(t *testing.T) {
	t.Parallel()

	svc := newSettingsService(t, "x")

	err := svc.UpdateEmailSettings(context.Background(), transport.EmailSettingsRequest{
		OrderEmail: "bestellingen@example.com",
		SMTPHost:   "smtp.example.com",
		SMTPPort:   "465",
		SMTPUser:   "mailer",
		SMTPPass:   "geheim",
	})
	require.NoError(t, err)

	data, err := os.ReadFile(svc.EnvFile)
	require.NoError(t, err)
	content := string(data)

	for _, line := range []string{
		"ORDER_EMAIL=bestellingen@example.com",
		"SMTP_HOST=smtp.example.com",
		"SMTP_PORT=465",
		"SMTP_USER=mailer",
		"SMTP_PASS=geheim",
	} {
		assert.True(t, strings.Contains(content, line), "missing %q", line)
	}
}

func TestUpdateEmailSettings_RejectsPartialInput(t *testing.T) {
	t.Parallel()

	svc := newSettingsService(t, "x")

	err := svc.UpdateEmailSettings(context.Background(), transport.EmailSettingsRequest{
		OrderEmail: "bestellingen@example.com",
		SMTPHost:   "smtp.example.com",
	})
	assert.ErrorIs(t, err, ErrValidation)
}
