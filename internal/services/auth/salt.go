package auth

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
)

// LoadOrCreateSalt returns the per-install secret used to digest sign-in
// codes. It is created on first run and kept at ~/.agora/auth_salt.
func LoadOrCreateSalt() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(homeDir, ".agora")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	saltPath := filepath.Join(dir, "auth_salt")
	if data, err := os.ReadFile(saltPath); err == nil {
		if salt := strings.TrimSpace(string(data)); salt != "" {
			return salt, nil
		}
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	salt := hex.EncodeToString(raw)

	if err := os.WriteFile(saltPath, []byte(salt+"\n"), 0600); err != nil {
		return "", err
	}
	return salt, nil
}
