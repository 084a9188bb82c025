// Package config provides configuration management for CharterDesk.
//
// Configuration is loaded from:
// 1. config.yaml file (optional)
// 2. Environment variables (standard names like DATABASE_URL, SERVER_PORT)
// 3. Default values
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config is the root configuration structure.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Log      LogConfig      `mapstructure:"log"`
	River    RiverConfig    `mapstructure:"river"`
	Worker   WorkerConfig   `mapstructure:"worker"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Dev      DevConfig      `mapstructure:"dev"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	OpenAPISpec     string        `mapstructure:"openapi_spec"`
}

// DatabaseConfig contains PostgreSQL connection settings.
// One shared pgx pool backs Ent and River.
type DatabaseConfig struct {
	URL string `mapstructure:"url"`

	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"sslmode"`

	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `mapstructure:"max_conn_idle_time"`

	AutoMigrate bool `mapstructure:"auto_migrate"`
}

// DSN returns the PostgreSQL connection string.
// Priority: DATABASE_URL > constructed from individual fields.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, sslmode,
	)
}

// AuthConfig contains identity settings. Exactly one provider: local
// email/password with bcrypt hashes and HS256 bearer tokens.
type AuthConfig struct {
	JWTSecret      string         `mapstructure:"jwt_secret"`
	JWTIssuer      string         `mapstructure:"jwt_issuer"`
	TokenLifetime  time.Duration  `mapstructure:"token_lifetime"`
	InvitationTTL  time.Duration  `mapstructure:"invitation_ttl"`
	ResetTokenTTL  time.Duration  `mapstructure:"reset_token_ttl"`
	PasswordPolicy PasswordPolicy `mapstructure:"password_policy"`
}

// PasswordPolicy defines password validation rules.
type PasswordPolicy struct {
	MinLength        int  `mapstructure:"min_length"`
	RequireUppercase bool `mapstructure:"require_uppercase"`
	RequireLowercase bool `mapstructure:"require_lowercase"`
	RequireDigit     bool `mapstructure:"require_digit"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// RiverConfig contains River Queue settings.
type RiverConfig struct {
	MaxWorkers                  int           `mapstructure:"max_workers"`
	CompletedJobRetentionPeriod time.Duration `mapstructure:"completed_job_retention_period"`
	TokenRetention              time.Duration `mapstructure:"token_retention"`
}

// WorkerConfig contains worker pool settings.
type WorkerConfig struct {
	GeneralPoolSize int `mapstructure:"general_pool_size"`
	ReindexPoolSize int `mapstructure:"reindex_pool_size"`
}

// CORSConfig contains CORS settings for the SPA origin.
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// DevConfig toggles development-only behavior.
type DevConfig struct {
	// ExposeResetTokens returns password-reset tokens in API responses.
	// Email delivery is an external collaborator; in production the token
	// leaves only via the mail provider.
	ExposeResetTokens bool `mapstructure:"expose_reset_tokens"`
}

var (
	bootstrapLoggerOnce sync.Once
	bootstrapLogger     *zap.Logger
)

// Load reads configuration from file and environment variables.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/charterdesk")

	// Environment variable override, no prefix: DATABASE_URL, SERVER_PORT,
	// LOG_LEVEL; nested keys map as database.max_conns → DATABASE_MAX_CONNS.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Config file is optional, use defaults and env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.ensureSecrets(); err != nil {
		return nil, fmt.Errorf("ensure secrets: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Validate checks for critical configuration errors.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret must not be empty")
	}
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters")
	}
	if c.Auth.PasswordPolicy.MinLength < 8 {
		return fmt.Errorf("auth.password_policy.min_length must be at least 8")
	}
	return nil
}

// ensureSecrets auto-generates a JWT secret on first boot if missing.
func (c *Config) ensureSecrets() error {
	if c.Auth.JWTSecret == "" {
		secret, err := generateSecureRandomHex(32)
		if err != nil {
			return fmt.Errorf("auto-generate jwt secret: %w", err)
		}
		c.Auth.JWTSecret = secret
		logBootstrapWarn(
			"auto-generated jwt_secret; set AUTH_JWT_SECRET env var for persistence across restarts",
			zap.Int("length", len(secret)),
		)
	}
	return nil
}

func logBootstrapWarn(msg string, fields ...zap.Field) {
	bootstrapLoggerOnce.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)

		l, err := cfg.Build()
		if err != nil {
			bootstrapLogger = zap.NewNop()
			return
		}
		bootstrapLogger = l
	})

	bootstrapLogger.Warn(msg, fields...)
}

// generateSecureRandomHex produces a hex-encoded string of n random bytes.
func generateSecureRandomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("crypto/rand: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func setDefaults(v *viper.Viper) {
	// Server
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "30s")
	v.SetDefault("server.openapi_spec", "api/openapi.yaml")

	// Database
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "charterdesk")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "charterdesk")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 50)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.max_conn_lifetime", "1h")
	v.SetDefault("database.max_conn_idle_time", "10m")
	v.SetDefault("database.auto_migrate", false)

	// Auth
	v.SetDefault("auth.jwt_issuer", "charterdesk")
	v.SetDefault("auth.token_lifetime", "24h")
	v.SetDefault("auth.invitation_ttl", "168h") // 7 days
	v.SetDefault("auth.reset_token_ttl", "1h")
	v.SetDefault("auth.password_policy.min_length", 10)
	v.SetDefault("auth.password_policy.require_uppercase", false)
	v.SetDefault("auth.password_policy.require_lowercase", false)
	v.SetDefault("auth.password_policy.require_digit", false)

	// Log
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// River
	v.SetDefault("river.max_workers", 10)
	v.SetDefault("river.completed_job_retention_period", "24h")
	v.SetDefault("river.token_retention", "720h") // 30 days past expiry

	// Worker pools
	v.SetDefault("worker.general_pool_size", 100)
	v.SetDefault("worker.reindex_pool_size", 10)

	// CORS
	v.SetDefault("cors.allow_origins", []string{"http://localhost:5173"})

	// Dev
	v.SetDefault("dev.expose_reset_tokens", false)
}
