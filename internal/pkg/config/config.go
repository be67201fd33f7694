package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, gateway keys), security settings
// - default: Values common across all environments (timezone, timeout, TTL, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Redis   RedisConfig
	Staging StagingConfig
	Gateway GatewayConfig
	Gift    GiftConfig
	Kafka   KafkaConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Seoul"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Seoul"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// Backend: redis | postgres | memory
type StagingConfig struct {
	Backend       string        `envconfig:"STAGING_BACKEND" default:"redis"`
	TTL           time.Duration `envconfig:"STAGING_TTL" default:"15m"`
	KeyPrefix     string        `envconfig:"STAGING_KEY_PREFIX" default:"payment:staging:"`
	SweepInterval time.Duration `envconfig:"STAGING_SWEEP_INTERVAL" default:"5m"`
}

type GatewayConfig struct {
	BaseURL     string        `envconfig:"GATEWAY_BASE_URL" required:"true"`
	SecretKey   string        `envconfig:"GATEWAY_SECRET_KEY" required:"true"`
	CID         string        `envconfig:"GATEWAY_CID" required:"true"`
	ApprovalURL string        `envconfig:"GATEWAY_APPROVAL_URL" required:"true"`
	CancelURL   string        `envconfig:"GATEWAY_CANCEL_URL" required:"true"`
	FailURL     string        `envconfig:"GATEWAY_FAIL_URL" required:"true"`
	Timeout     time.Duration `envconfig:"GATEWAY_TIMEOUT" default:"10s"`
}

type GiftConfig struct {
	Retention time.Duration `envconfig:"GIFT_RETENTION" default:"4320h"` // 180 days
}

// Brokers empty: escalations are only logged
type KafkaConfig struct {
	Brokers         []string `envconfig:"KAFKA_BROKERS"`
	EscalationTopic string   `envconfig:"KAFKA_ESCALATION_TOPIC" default:"payment.reconciliation"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Seoul",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Seoul",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Staging: StagingConfig{
			Backend:       "memory",
			TTL:           15 * time.Minute,
			KeyPrefix:     "payment:staging:",
			SweepInterval: time.Minute,
		},
		Gateway: GatewayConfig{
			BaseURL:     "http://localhost:18080",
			SecretKey:   "test-gateway-secret",
			CID:         "TC0ONETIME",
			ApprovalURL: "http://localhost:8889/payment/success",
			CancelURL:   "http://localhost:8889/payment/cancel",
			FailURL:     "http://localhost:8889/payment/fail",
			Timeout:     5 * time.Second,
		},
		Gift: GiftConfig{
			Retention: 180 * 24 * time.Hour,
		},
		Kafka: KafkaConfig{
			EscalationTopic: "payment.reconciliation",
		},
	}
}
