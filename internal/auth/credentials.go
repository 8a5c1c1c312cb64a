package auth

import (
	"encoding/base64"
	"fmt"

	"github.com/jeltev/printbaarn/internal/config"
	"github.com/jeltev/printbaarn/internal/hash"
)

// Credentials is the single admin account, resolved from configuration at
// startup and immutable afterwards.
type Credentials struct {
	Username     string
	PasswordHash string
}

// AdminCredentials prefers the base64-wrapped hash when present; the plain
// variable tends to get mangled by quoting in deploy environments. An empty
// result is an error, not a placeholder.
func AdminCredentials(cfg config.Config) (Credentials, error) {
	passwordHash := cfg.AdminPasswordHash
	if cfg.AdminPasswordB64 != "" {
		decoded, err := base64.StdEncoding.DecodeString(cfg.AdminPasswordB64)
		if err != nil {
			return Credentials{}, fmt.Errorf("decode ADMIN_PASSWORD_HASH_BASE64: %w", err)
		}
		passwordHash = string(decoded)
	}
	if passwordHash == "" {
		return Credentials{}, fmt.Errorf("no admin password hash configured")
	}
	return Credentials{
		Username:     cfg.AdminUsername,
		PasswordHash: passwordHash,
	}, nil
}

// VerifyLogin checks a submitted username/password pair against the admin
// account.
func (c Credentials) VerifyLogin(username, password string) bool {
	if username != c.Username {
		return false
	}
	return hash.CheckPassword(c.PasswordHash, password)
}
