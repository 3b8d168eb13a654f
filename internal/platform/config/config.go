package config

import (
	"os"
	"time"
)

// Server captures process level configuration.
type Server struct {
	Addr            string
	Env             string
	CookieHashKey   []byte
	CookieBlockKey  []byte
	TokenSigningKey string
	TokenTTL        time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("OFDB_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	env := os.Getenv("OFDB_ENV")
	if env == "" {
		env = "development"
	}

	hashKey := os.Getenv("OFDB_COOKIE_HASH_KEY")
	if hashKey == "" {
		// Use a default for development - should be overridden in production
		hashKey = "dev-cookie-hash-key-change-in-prod"
	}
	// Optional; without a block key cookies are signed but not encrypted.
	blockKey := os.Getenv("OFDB_COOKIE_BLOCK_KEY")

	signingKey := os.Getenv("OFDB_TOKEN_SIGNING_KEY")
	if signingKey == "" {
		signingKey = "dev-secret-key-change-in-production"
	}

	tokenTTL := 7 * 24 * time.Hour
	if raw := os.Getenv("OFDB_TOKEN_TTL"); raw != "" {
		if ttl, err := time.ParseDuration(raw); err == nil {
			tokenTTL = ttl
		}
	}

	cfg := Server{
		Addr:            addr,
		Env:             env,
		CookieHashKey:   []byte(hashKey),
		TokenSigningKey: signingKey,
		TokenTTL:        tokenTTL,
	}
	if blockKey != "" {
		cfg.CookieBlockKey = []byte(blockKey)
	}
	return cfg
}
