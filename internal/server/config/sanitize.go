// Package config defines the server configuration structure.
package config

import "strings"

// Sanitize returns a copy of the config with sensitive fields masked.
//
// This is used for logging configuration without exposing secrets.
func Sanitize(cfg *ServerConfig) *ServerConfig {
	sanitized := *cfg

	if sanitized.Security.Secret != "" {
		sanitized.Security.Secret = maskSecret(sanitized.Security.Secret)
	}

	// Password hashes are not reversible, but they still do not
	// belong in log output.
	if len(sanitized.Users) > 0 {
		users := make([]UserSeed, len(sanitized.Users))
		copy(users, sanitized.Users)
		for i := range users {
			users[i].PasswordHash = "****"
		}
		sanitized.Users = users
	}

	return &sanitized
}

// maskSecret masks a secret value for safe logging.
func maskSecret(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:2] + strings.Repeat("*", len(s)-4) + s[len(s)-2:]
}
