package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	Server     ServerConfig
	TLS        TLSConfig
	Log        LogConfig
	Store      StoreConfig
	Database   DatabaseConfig
	Cache      CacheConfig
	Validation ValidationConfig
	RateLimit  RateLimitConfig
	Metrics    MetricsConfig
	Pprof      PprofConfig
}

type ServerConfig struct {
	Host           string `env:"SERVER_HOST" envDefault:"localhost"`
	Port           int    `env:"SERVER_PORT" envDefault:"8080"`
	MaxConnections int    `env:"SERVER_MAX_CONNECTIONS" envDefault:"0"`
	// PublicOrigin replaces the request origin in shortened links when set,
	// e.g. "https://sho.rt" behind a proxy that rewrites Host.
	PublicOrigin string `env:"PUBLIC_ORIGIN"`
}

type TLSConfig struct {
	Enabled  bool   `env:"TLS_ENABLED" envDefault:"false"`
	Port     int    `env:"TLS_PORT" envDefault:"8443"`
	CertFile string `env:"TLS_CERT_FILE"`
	KeyFile  string `env:"TLS_KEY_FILE"`
}

type LogConfig struct {
	Level slog.Level `env:"LOG_LEVEL" envDefault:"info"`
}

type StoreConfig struct {
	Driver        string        `env:"STORE_DRIVER" envDefault:"postgres"`
	LinkTTL       time.Duration `env:"LINK_TTL" envDefault:"24h"`
	SweepInterval time.Duration `env:"STORE_SWEEP_INTERVAL" envDefault:"10m"`
}

type DatabaseConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	DBName   string `env:"POSTGRES_DB" envDefault:"shorty"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	MaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"20"`
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

type CacheConfig struct {
	Enabled     bool          `env:"CACHE_ENABLED" envDefault:"true"`
	MaxSizePow2 int           `env:"CACHE_MAX_SIZE_POW2" envDefault:"24"`
	TTL         time.Duration `env:"CACHE_TTL" envDefault:"1h"`
}

type ValidationConfig struct {
	MaxRequestBodySize string `env:"VALIDATION_MAX_REQUEST_BODY_SIZE" envDefault:"4K"`
	AllowPrivateIPs    bool   `env:"VALIDATION_ALLOW_PRIVATE_IPS" envDefault:"true"`
}

type RateLimitConfig struct {
	RPS           float64 `env:"RATE_LIMIT_RPS" envDefault:"100"`
	Burst         int     `env:"RATE_LIMIT_BURST" envDefault:"200"`
	ExpireMinutes int     `env:"RATE_LIMIT_EXPIRE_MINUTES" envDefault:"3"`
	BypassSecret  string  `env:"RATE_LIMIT_BYPASS_SECRET"`
}

type MetricsConfig struct {
	Enabled        bool `env:"METRICS_ENABLED" envDefault:"false"`
	BufferSize     int  `env:"METRICS_BUFFER_SIZE" envDefault:"10000"`
	FlushInterval  int  `env:"METRICS_FLUSH_INTERVAL_MS" envDefault:"1000"`
	FlushThreshold int  `env:"METRICS_FLUSH_THRESHOLD" envDefault:"1000"`
}

type PprofConfig struct {
	Enabled bool   `env:"PPROF_ENABLED" envDefault:"false"`
	Secret  string `env:"PPROF_SECRET"`
}

// Load reads configuration from the environment. A .env file in the working
// directory, if present, is loaded first; variables already set win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case StoreDriverPostgres, StoreDriverMemory:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if c.Store.LinkTTL <= 0 {
		return errors.New("link ttl must be positive")
	}
	if c.Store.SweepInterval <= 0 {
		return errors.New("store sweep interval must be positive")
	}
	if c.Metrics.Enabled && (c.Metrics.FlushInterval <= 0 || c.Metrics.FlushThreshold <= 0) {
		return errors.New("metrics flush interval and threshold must be positive")
	}
	if c.TLS.Enabled && (c.TLS.CertFile == "" || c.TLS.KeyFile == "") {
		return errors.New("tls enabled but cert or key file is missing")
	}
	if c.Pprof.Enabled && c.Pprof.Secret == "" {
		return errors.New("pprof enabled but PPROF_SECRET is empty")
	}
	if c.Metrics.Enabled && c.Store.Driver != StoreDriverPostgres {
		return errors.New("metrics require the postgres store driver")
	}
	return nil
}
