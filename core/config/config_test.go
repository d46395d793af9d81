package config_test

import (
	"testing"

	"retail-storage/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "orders", cfg.Database.OrdersTable)
	assert.Equal(t, "product-images", cfg.Storage.ImageBucket)
	assert.Equal(t, "reports", cfg.Storage.ReportBucket)
	assert.Equal(t, "transactions", cfg.Broker.Queue)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("BROKER_QUEUE", "transactions-test")
	t.Setenv("DATABASE_ORDERS_TABLE", "orders_test")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "transactions-test", cfg.Broker.Queue)
	assert.Equal(t, "orders_test", cfg.Database.OrdersTable)
}
