package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	Log        LogConfig        `mapstructure:"log"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Session    SessionConfig    `mapstructure:"session"`
	Governance GovernanceConfig `mapstructure:"governance"`
	Signing    SigningConfig    `mapstructure:"signing"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host             string        `mapstructure:"host"`
	Port             int           `mapstructure:"port"`
	User             string        `mapstructure:"user"`
	Password         string        `mapstructure:"password"`
	DBName           string        `mapstructure:"dbname"`
	SSLMode          string        `mapstructure:"sslmode"`
	MaxConns         int32         `mapstructure:"max_conns"`
	MinConns         int32         `mapstructure:"min_conns"`
	ConnMaxLifetime  time.Duration `mapstructure:"conn_max_lifetime"`
	StatementTimeout time.Duration `mapstructure:"statement_timeout"` // 0 = server default
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"` // 0 = go-redis default

	DialTimeout time.Duration `mapstructure:"dial_timeout"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// StorageConfig selects the state backend.
type StorageConfig struct {
	Driver string `mapstructure:"driver"` // postgres, memory
}

// SessionConfig identifies the signed-in member this engine instance acts for.
// One process serves one session; it is never a mutable global.
type SessionConfig struct {
	MemberID string `mapstructure:"member_id"`
	DeviceID string `mapstructure:"device_id"`
}

type GovernanceConfig struct {
	HealthCheckCooldown    time.Duration `mapstructure:"health_check_cooldown"`
	HealthReminderInterval time.Duration `mapstructure:"health_reminder_interval"`
	PendingTTL             time.Duration `mapstructure:"pending_ttl"` // 0 = proposals never expire
	HandledEventCacheTTL   time.Duration `mapstructure:"handled_event_cache_ttl"`
	PushChannel            string        `mapstructure:"push_channel"`
}

// SigningConfig points at the native signing engine. An empty BaseURL selects
// the log-only signer used in development.
type SigningConfig struct {
	BaseURL string          `mapstructure:"base_url"`
	Timeout time.Duration   `mapstructure:"timeout"`
	Retries []time.Duration `mapstructure:"retries"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: GOV_.
// Nested keys use underscore: GOV_DATABASE_HOST, GOV_GOVERNANCE_PENDING_TTL, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "wallet_governance")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("database.statement_timeout", "15s")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 0)
	v.SetDefault("redis.dial_timeout", "5s")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "wallet-governance")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("storage.driver", "postgres")
	v.SetDefault("session.member_id", "")
	v.SetDefault("session.device_id", "")
	v.SetDefault("governance.health_check_cooldown", "24h")
	v.SetDefault("governance.health_reminder_interval", "720h")
	v.SetDefault("governance.pending_ttl", "0s")
	v.SetDefault("governance.handled_event_cache_ttl", "72h")
	v.SetDefault("governance.push_channel", "governance:push")
	v.SetDefault("signing.base_url", "")
	v.SetDefault("signing.timeout", "10s")
	v.SetDefault("signing.retries", []string{"200ms", "1s", "3s"})

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: GOV_DATABASE_HOST -> database.host
	v.SetEnvPrefix("GOV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required; env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case "postgres", "memory":
	default:
		return fmt.Errorf("unsupported storage driver %q", c.Storage.Driver)
	}
	if c.Governance.PendingTTL < 0 {
		return fmt.Errorf("governance.pending_ttl must not be negative")
	}
	return nil
}
