package auth

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeltev/printbaarn/internal/config"
	"github.com/jeltev/printbaarn/internal/hash"
)

func TestAdminCredentials_PlainHash(t *testing.T) {
	t.Parallel()

	cfg := config.Config{
		AdminUsername:     "admin",
		AdminPasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
	}

	creds, err := AdminCredentials(cfg)
	require.NoError(t, err)
	assert.Equal(t, "admin", creds.Username)
	assert.Equal(t, cfg.AdminPasswordHash, creds.PasswordHash)
}

func TestAdminCredentials_Base64WinsOverPlain(t *testing.T) {
	t.Parallel()

	cfg := config.Config{
		AdminUsername:     "jelte",
		AdminPasswordHash: "plain-should-lose",
		AdminPasswordB64:  base64.StdEncoding.EncodeToString([]byte("$2a$10$wrappedhash")),
	}

	creds, err := AdminCredentials(cfg)
	require.NoError(t, err)
	assert.Equal(t, "jelte", creds.Username)
	assert.Equal(t, "$2a$10$wrappedhash", creds.PasswordHash)
}

func TestAdminCredentials_InvalidBase64(t *testing.T) {
	t.Parallel()

	cfg := config.Config{
		AdminUsername:    "admin",
		AdminPasswordB64: "%%% not base64 %%%",
	}

	_, err := AdminCredentials(cfg)
	require.Error(t, err)
}

func TestAdminCredentials_MissingHashFails(t *testing.T) {
	t.Parallel()

	_, err := AdminCredentials(config.Config{AdminUsername: "admin"})
	require.Error(t, err)
}

func TestCredentials_VerifyLogin(t *testing.T) {
	t.Parallel()

	pwHash, err := hash.HashPassword("correct")
	require.NoError(t, err)

	creds := Credentials{Username: "admin", PasswordHash: pwHash}

	assert.True(t, creds.VerifyLogin("admin", "correct"))
	assert.False(t, creds.VerifyLogin("admin", "wrong"))
	assert.False(t, creds.VerifyLogin("someone", "correct"))
	assert.False(t, creds.VerifyLogin("", ""))
}
