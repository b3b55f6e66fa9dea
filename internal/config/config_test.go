package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("CARRIER_ACCOUNT_NUMBER", "1234567890")
	t.Setenv("CARRIER_API_KEY", "key")
	t.Setenv("CARRIER_API_PASSWORD", "secret")
	t.Setenv("POSTGRES_USER", "postgres")
	t.Setenv("POSTGRES_PASSWORD", "postgres")
}

func TestNew_Defaults(t *testing.T) {
	setRequired(t)

	cfg := New()
	require.NoError(t, cfg.Validate())

	assert.True(t, cfg.Carrier.TestMode)
	assert.Equal(t, "legacy", cfg.Carrier.ReconcileMode)
	assert.Equal(t, 15*time.Second, cfg.Carrier.Timeout)
	assert.Equal(t, 1, cfg.Carrier.RetryAttempts)
	assert.Equal(t, "shipment-requests", cfg.Kafka.Topic)
	assert.Equal(t, "shipment-events", cfg.Kafka.EventsTopic)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	assert.True(t, cfg.Postgres.Migrate)
	assert.False(t, cfg.Carrier.QuotePerProduct)
}

func TestNew_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("CARRIER_TEST_MODE", "false")
	t.Setenv("CARRIER_TIMEOUT", "3s")
	t.Setenv("CARRIER_RECONCILE_MODE", "reference")
	t.Setenv("CARRIER_QUOTE_PER_PRODUCT", "true")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("QUOTE_CACHE_CAPACITY", "not-a-number")

	cfg := New()
	require.NoError(t, cfg.Validate())

	assert.False(t, cfg.Carrier.TestMode)
	assert.Equal(t, 3*time.Second, cfg.Carrier.Timeout)
	assert.Equal(t, "reference", cfg.Carrier.ReconcileMode)
	assert.True(t, cfg.Carrier.QuotePerProduct)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 1000, cfg.Cache.Capacity)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing credentials", env: map[string]string{"CARRIER_API_KEY": ""}},
		{name: "unknown reconcile mode", env: map[string]string{"CARRIER_RECONCILE_MODE": "greedy"}},
		{name: "no retry attempts", env: map[string]string{"CARRIER_RETRY_ATTEMPTS": "0"}},
		{name: "bad base url", env: map[string]string{"CARRIER_BASE_URL": "not a url"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setRequired(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			assert.Error(t, New().Validate())
		})
	}
}
