// Package config defines the server configuration structure.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
)

// Verify validates the configuration.
func Verify(cfg *ServerConfig) error {
	if err := verifyServer(&cfg.Server); err != nil {
		return err
	}
	if err := verifySecurity(&cfg.Security); err != nil {
		return err
	}
	return verifyUsers(cfg.Users)
}

func verifyServer(cfg *ServerSection) error {
	if cfg.HTTP.Addr == "" {
		return errors.New("server.http.addr is required")
	}
	if _, _, err := net.SplitHostPort(cfg.HTTP.Addr); err != nil {
		return fmt.Errorf("server.http.addr %q is not a host:port address: %w", cfg.HTTP.Addr, err)
	}

	// TLS cert and key come as a pair, and both must exist on disk.
	if (cfg.HTTP.TLSCertFile == "") != (cfg.HTTP.TLSKeyFile == "") {
		return errors.New("server.http.tls_cert_file and tls_key_file must be set together")
	}
	if cfg.HTTP.TLSCertFile != "" {
		for _, path := range []string{cfg.HTTP.TLSCertFile, cfg.HTTP.TLSKeyFile} {
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("TLS file %q: %w", path, err)
			}
		}
	}

	if cfg.HTTP.GlobalRateLimit < 0 {
		return errors.New("server.http.global_rate_limit must not be negative")
	}

	return nil
}

func verifySecurity(cfg *SecuritySection) error {
	if cfg.Secret == "" {
		return errors.New("security.secret is required")
	}
	if cfg.TokenTTL <= 0 {
		return errors.New("security.token_ttl must be positive")
	}
	if cfg.LoginRateLimit < 0 {
		return errors.New("security.login_rate_limit must not be negative")
	}
	return nil
}

func verifyUsers(users []UserSeed) error {
	if len(users) == 0 {
		return errors.New("at least one user is required")
	}

	seenID := make(map[int64]bool, len(users))
	seenName := make(map[string]bool, len(users))

	for i, user := range users {
		if user.ID <= 0 {
			return fmt.Errorf("users[%d].id must be positive", i)
		}
		if user.Username == "" {
			return fmt.Errorf("users[%d].username is required", i)
		}
		if user.PasswordHash == "" {
			return fmt.Errorf("users[%d].password_hash is required", i)
		}
		if seenID[user.ID] {
			return fmt.Errorf("duplicate user id %d", user.ID)
		}
		if seenName[user.Username] {
			return fmt.Errorf("duplicate username %q", user.Username)
		}
		seenID[user.ID] = true
		seenName[user.Username] = true
	}

	return nil
}
