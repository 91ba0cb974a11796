package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	assert.True(t, cfg.EnableMetrics)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("ENABLE_METRICS", "false")

	cfg := Load()

	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.False(t, cfg.EnableMetrics)
}

func TestLoad_InvalidBoolFallsBack(t *testing.T) {
	t.Setenv("ENABLE_METRICS", "not-a-bool")

	assert.True(t, Load().EnableMetrics)
}
