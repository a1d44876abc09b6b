package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all process configuration.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	RabbitMQ  RabbitMQConfig
	GRPC      GRPCConfig
	Redis     RedisConfig
	Producer  ProducerConfig
	Paging    PagingConfig
	Telemetry TelemetryConfig
	Log       LogConfig
}

// ServerConfig holds the health/readiness HTTP surface settings.
type ServerConfig struct {
	Host            string
	Port            int
	Environment     string
	ShutdownTimeout time.Duration
}

// DatabaseConfig holds database connection settings. URL is the full
// Postgres connection string and is mandatory.
type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	ConnectTimeout  time.Duration
	LogLevel        string
	AutoMigrate     bool
}

// RabbitMQConfig holds message bus settings. URL is mandatory.
type RabbitMQConfig struct {
	URL             string
	Exchange        string
	Queue           string
	RetryAttempts   int
	MaxRedeliveries int
	ConsumerEnabled bool
}

// GRPCConfig holds inventory RPC client settings. InventoryURL is mandatory.
type GRPCConfig struct {
	InventoryURL   string
	RequestTimeout time.Duration
	ConnectTimeout time.Duration
	Keepalive      time.Duration
}

// RedisConfig holds the optional idempotency-store backend settings.
type RedisConfig struct {
	Enabled        bool
	Host           string
	Port           int
	Password       string
	DB             int
	IdempotencyTTL time.Duration
}

// ProducerConfig holds synthetic order producer settings.
type ProducerConfig struct {
	Enabled              bool
	Interval             time.Duration
	RandomizeInterval    bool
	MinOrdersPerInterval int
	MaxOrdersPerInterval int
	MaxItemsPerOrder     int
}

// PagingConfig holds list-query pagination limits.
type PagingConfig struct {
	DefaultPageSize int
	MaxPageSize     int
}

// TelemetryConfig holds OpenTelemetry configuration.
type TelemetryConfig struct {
	Enabled           bool
	CollectorEndpoint string
	SamplingRatio     float64
	ServiceName       string
	Insecure          bool
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// Load loads configuration from an optional config.toml and environment
// variables. Priority (highest to lowest):
// 1. Environment variables with LOGISTICS_ prefix (e.g. LOGISTICS_DATABASE_URL)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("LOGISTICS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host:            v.GetString("server.host"),
			Port:            v.GetInt("server.port"),
			Environment:     v.GetString("server.environment"),
			ShutdownTimeout: time.Duration(v.GetInt("server.shutdown_timeout_seconds")) * time.Second,
		},
		Database: DatabaseConfig{
			URL:             v.GetString("database.url"),
			MaxOpenConns:    v.GetInt("database.max_open_conns"),
			MaxIdleConns:    v.GetInt("database.max_idle_conns"),
			ConnMaxLifetime: time.Duration(v.GetInt("database.conn_max_lifetime_minutes")) * time.Minute,
			ConnMaxIdleTime: time.Duration(v.GetInt("database.conn_max_idle_minutes")) * time.Minute,
			ConnectTimeout:  time.Duration(v.GetInt("database.connect_timeout_seconds")) * time.Second,
			LogLevel:        v.GetString("database.log_level"),
			AutoMigrate:     v.GetBool("database.auto_migrate"),
		},
		RabbitMQ: RabbitMQConfig{
			URL:             v.GetString("rabbitmq.url"),
			Exchange:        v.GetString("rabbitmq.exchange"),
			Queue:           v.GetString("rabbitmq.queue"),
			RetryAttempts:   v.GetInt("rabbitmq.retry_attempts"),
			MaxRedeliveries: v.GetInt("rabbitmq.max_redeliveries"),
			ConsumerEnabled: v.GetBool("rabbitmq.consumer_enabled"),
		},
		GRPC: GRPCConfig{
			InventoryURL:   v.GetString("grpc.inventory_url"),
			RequestTimeout: time.Duration(v.GetInt("grpc.request_timeout_seconds")) * time.Second,
			ConnectTimeout: time.Duration(v.GetInt("grpc.connect_timeout_seconds")) * time.Second,
			Keepalive:      time.Duration(v.GetInt("grpc.keepalive_seconds")) * time.Second,
		},
		Redis: RedisConfig{
			Enabled:        v.GetBool("redis.enabled"),
			Host:           v.GetString("redis.host"),
			Port:           v.GetInt("redis.port"),
			Password:       v.GetString("redis.password"),
			DB:             v.GetInt("redis.db"),
			IdempotencyTTL: time.Duration(v.GetInt("redis.idempotency_ttl_hours")) * time.Hour,
		},
		Producer: ProducerConfig{
			Enabled:              v.GetBool("producer.enabled"),
			Interval:             time.Duration(v.GetInt("producer.interval_seconds")) * time.Second,
			RandomizeInterval:    v.GetBool("producer.randomize_interval"),
			MinOrdersPerInterval: v.GetInt("producer.min_orders_per_interval"),
			MaxOrdersPerInterval: v.GetInt("producer.max_orders_per_interval"),
			MaxItemsPerOrder:     v.GetInt("producer.max_items_per_order"),
		},
		Paging: PagingConfig{
			DefaultPageSize: v.GetInt("pagination.default_page_size"),
			MaxPageSize:     v.GetInt("pagination.max_page_size"),
		},
		Telemetry: TelemetryConfig{
			Enabled:           v.GetBool("telemetry.enabled"),
			CollectorEndpoint: v.GetString("telemetry.collector_endpoint"),
			SamplingRatio:     v.GetFloat64("telemetry.sampling_ratio"),
			ServiceName:       v.GetString("telemetry.service_name"),
			Insecure:          v.GetBool("telemetry.insecure"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields.
func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Environment == "" {
		cfg.Server.Environment = "development"
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 30 * time.Second
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 30 * time.Minute
	}
	if cfg.Database.ConnMaxIdleTime == 0 {
		cfg.Database.ConnMaxIdleTime = 5 * time.Minute
	}
	if cfg.Database.ConnectTimeout == 0 {
		cfg.Database.ConnectTimeout = 30 * time.Second
	}
	if cfg.Database.LogLevel == "" {
		cfg.Database.LogLevel = "warn"
	}
	if cfg.RabbitMQ.Exchange == "" {
		cfg.RabbitMQ.Exchange = "order_events"
	}
	if cfg.RabbitMQ.Queue == "" {
		cfg.RabbitMQ.Queue = "order_processing"
	}
	if cfg.RabbitMQ.RetryAttempts == 0 {
		cfg.RabbitMQ.RetryAttempts = 3
	}
	if cfg.RabbitMQ.MaxRedeliveries == 0 {
		cfg.RabbitMQ.MaxRedeliveries = 3
	}
	if cfg.GRPC.RequestTimeout == 0 {
		cfg.GRPC.RequestTimeout = 10 * time.Second
	}
	if cfg.GRPC.ConnectTimeout == 0 {
		cfg.GRPC.ConnectTimeout = 5 * time.Second
	}
	if cfg.GRPC.Keepalive == 0 {
		cfg.GRPC.Keepalive = 30 * time.Second
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Redis.IdempotencyTTL == 0 {
		cfg.Redis.IdempotencyTTL = 24 * time.Hour
	}
	if cfg.Producer.Interval == 0 {
		cfg.Producer.Interval = 60 * time.Second
	}
	if cfg.Producer.MinOrdersPerInterval == 0 {
		cfg.Producer.MinOrdersPerInterval = 1
	}
	if cfg.Producer.MaxOrdersPerInterval == 0 {
		cfg.Producer.MaxOrdersPerInterval = 5
	}
	if cfg.Producer.MaxItemsPerOrder == 0 {
		cfg.Producer.MaxItemsPerOrder = 10
	}
	if cfg.Paging.DefaultPageSize == 0 {
		cfg.Paging.DefaultPageSize = 10
	}
	if cfg.Paging.MaxPageSize == 0 {
		cfg.Paging.MaxPageSize = 100
	}
	if cfg.Telemetry.CollectorEndpoint == "" {
		cfg.Telemetry.CollectorEndpoint = "localhost:4317"
	}
	if cfg.Telemetry.SamplingRatio == 0 {
		cfg.Telemetry.SamplingRatio = 1.0
	}
	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = "logistics-engine"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
}

// validate enforces the mandatory keys and bounds.
func (c *Config) validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("database.url is required (set LOGISTICS_DATABASE_URL)")
	}
	if c.RabbitMQ.URL == "" {
		return fmt.Errorf("rabbitmq.url is required (set LOGISTICS_RABBITMQ_URL)")
	}
	if c.GRPC.InventoryURL == "" {
		return fmt.Errorf("grpc.inventory_url is required (set LOGISTICS_GRPC_INVENTORY_URL)")
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("database.max_idle_conns (%d) cannot exceed database.max_open_conns (%d)",
			c.Database.MaxIdleConns, c.Database.MaxOpenConns)
	}
	if c.Producer.MinOrdersPerInterval > c.Producer.MaxOrdersPerInterval {
		return fmt.Errorf("producer.min_orders_per_interval (%d) cannot exceed producer.max_orders_per_interval (%d)",
			c.Producer.MinOrdersPerInterval, c.Producer.MaxOrdersPerInterval)
	}
	if c.Telemetry.SamplingRatio < 0.0 || c.Telemetry.SamplingRatio > 1.0 {
		return fmt.Errorf("telemetry.sampling_ratio must be between 0.0 and 1.0, got %f", c.Telemetry.SamplingRatio)
	}
	return nil
}

// Addr returns the listen address of the health surface.
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Addr returns the host:port address of the Redis backend.
func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}
