package config

import (
	"os"
	"strings"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultMaxRequestBodySize = "100KB"
	defaultAccessTokenTTL     = time.Hour
	defaultStoreTimeout       = 5 * time.Second
	defaultPaymentTimeout     = 10 * time.Second
	defaultPaymentCurrency    = "usd"
	defaultLockTTL            = 30 * time.Second
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Store bounds every persistence call
	Store *StoreConfig `json:"store" yaml:"store"`

	// Payment configures the external payment processor
	Payment *PaymentConfig `json:"payment" yaml:"payment"`

	// Redis backs the per-booking payment lock; optional
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for booking receipts
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Worker configures the event consumer process
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	AccessTokenTTL time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
}

// StoreConfig defines persistence call limits
type StoreConfig struct {
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// SlowQueryThreshold marks queries logged as slow. Zero keeps the GORM logger default.
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`

	// AutoMigrate applies the embedded schema on startup
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// PaymentConfig defines the payment processor settings
type PaymentConfig struct {
	// Provider name; only "stripe" is supported
	Provider    string        `json:"provider" yaml:"provider"`
	SecretKey   string        `json:"secretKey" yaml:"secretKey"`
	Currency    string        `json:"currency" yaml:"currency"`
	MethodTypes []string      `json:"methodTypes" yaml:"methodTypes"`
	Timeout     time.Duration `json:"timeout" yaml:"timeout"`
}

// RedisConfig defines the Redis connection used for distributed locks
type RedisConfig struct {
	Addr     string        `json:"addr" yaml:"addr"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	LockTTL  time.Duration `json:"lockTTL" yaml:"lockTTL"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local", "google" or "kafka"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Topic ID (google topic or kafka topic)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Comma separated broker list (for kafka provider)
	KafkaBrokers string `json:"kafkaBrokers" yaml:"kafkaBrokers"`
}

// WorkerConfig defines the worker HTTP server and the kafka consumer
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`

	// Kafka consumer group (for kafka provider)
	ConsumerGroup string `json:"consumerGroup" yaml:"consumerGroup"`
	// Number of goroutines handling fetched messages
	Concurrency int `json:"concurrency" yaml:"concurrency"`
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv(os.Getenv)
	}

	return cfg, nil
}

// applyDefaults fills optional sections so consumers never see nil or zero limits.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}

	if cfg.Store == nil {
		cfg.Store = &StoreConfig{}
	}
	if cfg.Store.Timeout <= 0 {
		cfg.Store.Timeout = defaultStoreTimeout
	}

	if cfg.Payment == nil {
		cfg.Payment = &PaymentConfig{}
	}
	if cfg.Payment.Timeout <= 0 {
		cfg.Payment.Timeout = defaultPaymentTimeout
	}
	if cfg.Payment.Currency == "" {
		cfg.Payment.Currency = defaultPaymentCurrency
	}
	if len(cfg.Payment.MethodTypes) == 0 {
		cfg.Payment.MethodTypes = []string{"card"}
	}

	if cfg.Redis != nil && cfg.Redis.LockTTL <= 0 {
		cfg.Redis.LockTTL = defaultLockTTL
	}
}
