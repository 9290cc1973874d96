package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FromEnv(t *testing.T) {
	viper.Reset()
	t.Setenv("PGSQL_URL", "postgres://u:p@localhost:5432/tours")
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "test-secret-that-is-long-enough")
	t.Setenv("JWT_EXPIRY_DURATION", "30m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.JWTExpiryDuration)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "order-events", cfg.KafkaOrderEventsTopic)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 5*time.Second, cfg.KafkaPublishTimeout)
}

func TestLoadConfig_InvalidDurationFallsBack(t *testing.T) {
	viper.Reset()
	t.Setenv("PGSQL_URL", "postgres://localhost/tours")
	t.Setenv("JWT_EXPIRY_DURATION", "soon")
	t.Setenv("KAFKA_PUBLISH_TIMEOUT", "-1s")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, 5*time.Second, cfg.KafkaPublishTimeout)
}

func TestValidate(t *testing.T) {
	valid := Config{
		DatabaseURL:        "postgres://localhost/tours",
		Port:               "8080",
		JWTSecret:          "0123456789abcdef",
		JWTExpiryDuration:  time.Hour,
		JWTIssuer:          "tour-orders-app",
		CORSAllowedOrigins: []string{"*"},
		RateLimit:          "100-M",
		LoginRateLimit:     "5-M",
		ShutdownTimeout:    time.Second,

		KafkaPublishTimeout: time.Second,
	}
	require.NoError(t, valid.Validate())

	missingDB := valid
	missingDB.DatabaseURL = ""
	assert.Error(t, missingDB.Validate())

	badPort := valid
	badPort.Port = "http"
	assert.Error(t, badPort.Validate())

	noPassword := valid
	noPassword.BootstrapSupervisorEmail = "boss@agency.example"
	assert.Error(t, noPassword.Validate())

	noPassword.BootstrapSupervisorPassword = "long-enough-password"
	assert.NoError(t, noPassword.Validate())
}
