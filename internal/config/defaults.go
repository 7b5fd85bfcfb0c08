package config

import "time"

// Default values applied before any other configuration source.
const (
	DefaultHTTPAddress         = "0.0.0.0:8080"
	DefaultRequestTimeout      = 90 * time.Second
	DefaultTokenExpirySeconds  = 86400
	DefaultTokenIssuer         = "brand-snap"
	DefaultBcryptCost          = 10
	DefaultMaxOpenConns        = 10
	DefaultSynthesizerEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash-image:generateContent"
	DefaultSynthesizerTimeout  = 60 * time.Second
	DefaultAppVersion          = "dev"
	DefaultEnvFilePath         = ".env"
	DefaultLogLevel            = "debug"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:    DefaultAppVersion,
			BcryptCost: DefaultBcryptCost,
			LogLevel:   DefaultLogLevel,
		},
		Auth: Auth{
			TokenExpirySeconds: DefaultTokenExpirySeconds,
			TokenIssuer:        DefaultTokenIssuer,
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns: DefaultMaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Synthesizer: Synthesizer{
			Endpoint: DefaultSynthesizerEndpoint,
			Timeout:  DefaultSynthesizerTimeout,
		},
	}
}
