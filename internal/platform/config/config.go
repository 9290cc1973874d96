package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTIssuer = "tour-orders-app"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string `validate:"required"`
	Port              string `validate:"required,numeric"`
	IsProduction      bool
	EnableDBCheck     bool
	JWTSecret         string        `validate:"required,min=16"`
	JWTExpiryDuration time.Duration `validate:"gt=0"`
	JWTIssuer         string        `validate:"required"`
	MigrationsPath    string

	CORSAllowedOrigins []string `validate:"min=1"`
	// Formatted as ulule/limiter rates, e.g. "100-M".
	RateLimit      string `validate:"required"`
	LoginRateLimit string `validate:"required"`

	// Order events are only published when at least one broker is configured.
	KafkaBrokers          []string
	KafkaOrderEventsTopic string        `validate:"required_with=KafkaBrokers"`
	KafkaPublishTimeout   time.Duration `validate:"gt=0"`

	ShutdownTimeout time.Duration `validate:"gt=0"`

	BootstrapSupervisorEmail    string `validate:"omitempty,email"`
	BootstrapSupervisorPassword string `validate:"required_with=BootstrapSupervisorEmail,omitempty,min=8"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", defaultJWTIssuer)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("LOGIN_RATE_LIMIT", "10-M")
	viper.SetDefault("KAFKA_BROKERS", "")
	viper.SetDefault("KAFKA_ORDER_EVENTS_TOPIC", "order-events")
	viper.SetDefault("KAFKA_PUBLISH_TIMEOUT", "5s")
	viper.SetDefault("SHUTDOWN_TIMEOUT", "15s")
	viper.SetDefault("BOOTSTRAP_SUPERVISOR_EMAIL", "")
	viper.SetDefault("BOOTSTRAP_SUPERVISOR_PASSWORD", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// e.g. "60m", "1h"
	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
		}
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = defaultJWTIssuer
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")

	cfg.KafkaBrokers = splitList(viper.GetString("KAFKA_BROKERS"))
	cfg.KafkaOrderEventsTopic = viper.GetString("KAFKA_ORDER_EVENTS_TOPIC")
	if len(cfg.KafkaBrokers) == 0 {
		log.Println("Warning: KAFKA_BROKERS not set. Order events will not be published.")
	}
	publishTimeoutStr := viper.GetString("KAFKA_PUBLISH_TIMEOUT")
	cfg.KafkaPublishTimeout, err = time.ParseDuration(publishTimeoutStr)
	if err != nil || cfg.KafkaPublishTimeout <= 0 {
		cfg.KafkaPublishTimeout = 5 * time.Second
		log.Printf("Warning: Invalid value for KAFKA_PUBLISH_TIMEOUT ('%s'). Defaulting to %s.\n", publishTimeoutStr, cfg.KafkaPublishTimeout.String())
	}

	shutdownStr := viper.GetString("SHUTDOWN_TIMEOUT")
	cfg.ShutdownTimeout, err = time.ParseDuration(shutdownStr)
	if err != nil {
		cfg.ShutdownTimeout = 15 * time.Second
		log.Printf("Warning: Invalid value for SHUTDOWN_TIMEOUT ('%s'). Defaulting to %s.\n", shutdownStr, cfg.ShutdownTimeout.String())
	}

	cfg.BootstrapSupervisorEmail = viper.GetString("BOOTSTRAP_SUPERVISOR_EMAIL")
	cfg.BootstrapSupervisorPassword = viper.GetString("BOOTSTRAP_SUPERVISOR_PASSWORD")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded values against their validate tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
