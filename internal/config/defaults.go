package config

import "time"

const (
	DefaultTokenIssuer     = "notes-and-tags"
	DefaultTokenDuration   = 15 * time.Minute
	DefaultLogLevel        = "debug"
	DefaultHTTPAddress     = "localhost:8080"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultAdapterTimeout  = 10 * time.Second
)

// defaults returns the lowest-priority configuration layer. Argon2id costs
// follow the OWASP recommendation (1 pass, 64 MiB, 4 lanes).
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			PasswordHashing: PasswordHashing{
				Time:    1,
				Memory:  64 * 1024,
				Threads: 4,
				KeyLen:  32,
				SaltLen: 16,
			},
			LogLevel: DefaultLogLevel,
			Version:  "dev",
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultAdapterTimeout,
		},
	}
}
