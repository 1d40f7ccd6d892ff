package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Ingest   IngestConfig   `yaml:"ingest"`
	Review   ReviewConfig   `yaml:"review"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// IngestConfig holds persistence-gateway settings for lesson ingestion.
// RetryAttempts counts retries after the first try, so 2 means at most
// three store calls per candidate.
type IngestConfig struct {
	RetryAttempts int           `yaml:"retry_attempts" env:"INGEST_RETRY_ATTEMPTS" env-default:"2"`
	RetryDelay    time.Duration `yaml:"retry_delay"    env:"INGEST_RETRY_DELAY"    env-default:"250ms"`
}

// ReviewConfig holds review-session settings.
type ReviewConfig struct {
	QueueLimit int `yaml:"queue_limit" env:"REVIEW_QUEUE_LIMIT" env-default:"200"`
}
