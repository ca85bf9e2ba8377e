package config

import (
	"time"
)

// Database drivers supported by DatabaseConfig.Driver.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	Review    ReviewConfig    `yaml:"review"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds store connection settings. For the sqlite driver DSN
// is the database file path (or ":memory:"); pool settings apply to postgres.
type DatabaseConfig struct {
	Driver          string        `yaml:"driver"             env:"DATABASE_DRIVER"             env-default:"postgres"`
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds access token settings. Tokens are issued by the identity
// service; this service only validates them.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"hidayah"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ReviewConfig holds review engine limits and SM-2 parameters.
type ReviewConfig struct {
	DefaultDueLimit    int           `yaml:"default_due_limit"    env:"REVIEW_DEFAULT_DUE_LIMIT"    env-default:"20"`
	MaxDueLimit        int           `yaml:"max_due_limit"        env:"REVIEW_MAX_DUE_LIMIT"        env-default:"200"`
	MaxConflictRetries int           `yaml:"max_conflict_retries" env:"REVIEW_MAX_CONFLICT_RETRIES" env-default:"3"`
	ConflictBackoff    time.Duration `yaml:"conflict_backoff"     env:"REVIEW_CONFLICT_BACKOFF"     env-default:"10ms"`

	InitialEaseFactor float64 `yaml:"initial_ease_factor" env:"SM2_INITIAL_EASE"     env-default:"2.5"`
	MinEaseFactor     float64 `yaml:"min_ease_factor"     env:"SM2_MIN_EASE"         env-default:"1.3"`
	PassingQuality    int     `yaml:"passing_quality"     env:"SM2_PASSING_QUALITY"  env-default:"3"`
	FirstInterval     int     `yaml:"first_interval"      env:"SM2_FIRST_INTERVAL"   env-default:"1"`
	SecondInterval    int     `yaml:"second_interval"     env:"SM2_SECOND_INTERVAL"  env-default:"6"`

	MasteryMinSuccessRate  float64 `yaml:"mastery_min_success_rate"  env:"SM2_MASTERY_SUCCESS_RATE" env-default:"90"`
	MasteryMinReviews      int     `yaml:"mastery_min_reviews"       env:"SM2_MASTERY_REVIEWS"      env-default:"10"`
	MasteryMinIntervalDays int     `yaml:"mastery_min_interval_days" env:"SM2_MASTERY_INTERVAL"     env-default:"30"`
}

// RateLimitConfig holds per-client request rate limits.
type RateLimitConfig struct {
	Enabled           bool    `yaml:"enabled"             env:"RATE_LIMIT_ENABLED" env-default:"true"`
	RequestsPerSecond float64 `yaml:"requests_per_second" env:"RATE_LIMIT_RPS"     env-default:"10"`
	Burst             int     `yaml:"burst"               env:"RATE_LIMIT_BURST"   env-default:"30"`
}
