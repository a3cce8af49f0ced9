// Package config defines the server configuration structure.
package config

import "time"

// ServerConfig is the root configuration for todovault-server.
type ServerConfig struct {
	Server   ServerSection   `koanf:"server"`
	Storage  StorageSection  `koanf:"storage"`
	Security SecuritySection `koanf:"security"`
	Metrics  MetricsSection  `koanf:"metrics"`
	Log      LogSection      `koanf:"log"`
	Users    []UserSeed      `koanf:"users"`
}

// ServerSection configures server endpoints.
type ServerSection struct {
	HTTP HTTPConfig `koanf:"http"`
}

// HTTPConfig configures the HTTP server.
type HTTPConfig struct {
	Addr            string   `koanf:"addr"`
	TLSCertFile     string   `koanf:"tls_cert_file"`
	TLSKeyFile      string   `koanf:"tls_key_file"`
	CORSOrigins     []string `koanf:"cors_origins"`
	GlobalRateLimit int      `koanf:"global_rate_limit"`
}

// StorageSection configures the in-memory stores.
type StorageSection struct {
	// SeedDemo loads a small set of demonstration todos at startup.
	SeedDemo bool `koanf:"seed_demo"`
}

// SecuritySection configures authentication settings.
type SecuritySection struct {
	// Secret signs issued tokens. Changing it invalidates every
	// outstanding token.
	Secret string `koanf:"secret"`

	// TokenTTL is the lifetime of issued tokens.
	TokenTTL time.Duration `koanf:"token_ttl"`

	// LoginRateLimit is login attempts per second allowed per client
	// IP. Zero disables throttling.
	LoginRateLimit int `koanf:"login_rate_limit"`
}

// MetricsSection configures the Prometheus endpoint.
type MetricsSection struct {
	Enabled bool `koanf:"enabled"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// UserSeed is one entry of the credential table. Passwords are stored
// only as bcrypt hashes; the config never carries plaintext.
type UserSeed struct {
	ID           int64  `koanf:"id"`
	Username     string `koanf:"username"`
	PasswordHash string `koanf:"password_hash"`
}
