package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Backend selectors.
const (
	IdentityStatic = "static"
	IdentityMongo  = "mongo"

	SessionMemory = "memory"
	SessionRedis  = "redis"

	AuditLog   = "log"
	AuditMongo = "mongo"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Session SessionConfig
	Audit   AuditConfig

	Mongo MongoConfig
	Redis RedisConfig
}

type SessionConfig struct {
	Secret       string        `env:"SESSION_SECRET"`
	LoginDelay   time.Duration `env:"LOGIN_DELAY,     default=800ms"`
	Identity     string        `env:"IDENTITY_SOURCE, default=static"`
	Backend      string        `env:"SESSION_BACKEND, default=memory"`
	SecureCookie bool          `env:"COOKIE_SECURE,   default=false"`
}

type AuditConfig struct {
	Sink    string `env:"AUDIT_SINK,    default=log"`
	Workers int    `env:"AUDIT_WORKERS, default=4"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=clinic_portal"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects unknown backend selectors and unusable values.
func (c *Config) Validate() error {
	switch c.Session.Identity {
	case IdentityStatic, IdentityMongo:
	default:
		return fmt.Errorf("config: IDENTITY_SOURCE must be %q or %q, got %q", IdentityStatic, IdentityMongo, c.Session.Identity)
	}
	switch c.Session.Backend {
	case SessionMemory, SessionRedis:
	default:
		return fmt.Errorf("config: SESSION_BACKEND must be %q or %q, got %q", SessionMemory, SessionRedis, c.Session.Backend)
	}
	switch c.Audit.Sink {
	case AuditLog, AuditMongo:
	default:
		return fmt.Errorf("config: AUDIT_SINK must be %q or %q, got %q", AuditLog, AuditMongo, c.Audit.Sink)
	}
	if c.Session.LoginDelay < 0 {
		return fmt.Errorf("config: LOGIN_DELAY must not be negative")
	}
	if c.Audit.Workers <= 0 {
		return fmt.Errorf("config: AUDIT_WORKERS must be positive")
	}
	if c.Env == "production" && c.Session.Secret == "" {
		return fmt.Errorf("config: SESSION_SECRET is required in production")
	}
	return nil
}

// UsesMongo reports whether any component is backed by MongoDB.
func (c *Config) UsesMongo() bool {
	return c.Session.Identity == IdentityMongo || c.Audit.Sink == AuditMongo
}

// UsesRedis reports whether sessions are persisted in Redis.
func (c *Config) UsesRedis() bool {
	return c.Session.Backend == SessionRedis
}
