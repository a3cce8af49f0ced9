// Package config defines the server configuration structure.
package config

import "time"

// Default configuration values.
const (
	DefaultHTTPAddr = "127.0.0.1:5000"

	// DefaultSecret is only suitable for local development. The
	// server logs a warning at startup when it is still in use.
	DefaultSecret = "dev-secret-change-me"

	DefaultTokenTTL       = 24 * time.Hour
	DefaultLoginRateLimit = 5

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// demoPasswordHash is bcrypt("password"), matching the demo accounts
// shipped for local evaluation.
const demoPasswordHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

// Default returns the default server configuration.
func Default() *ServerConfig {
	return &ServerConfig{
		Server: ServerSection{
			HTTP: HTTPConfig{
				Addr: DefaultHTTPAddr,
			},
		},
		Storage: StorageSection{
			SeedDemo: true,
		},
		Security: SecuritySection{
			Secret:         DefaultSecret,
			TokenTTL:       DefaultTokenTTL,
			LoginRateLimit: DefaultLoginRateLimit,
		},
		Metrics: MetricsSection{
			Enabled: true,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Users: []UserSeed{
			{ID: 1, Username: "admin", PasswordHash: demoPasswordHash},
			{ID: 2, Username: "user", PasswordHash: demoPasswordHash},
		},
	}
}
