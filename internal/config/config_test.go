package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 8085

[database]
host = "localhost"
user = "smc"
password = "from-file"
dbname = "order_intake"

[logs]
level = "debug"

[metrics]
enabled = true

[catalog_service]
url = "http://catalog:8080"

[order_service]
url = "http://orders:8080"
timeout = 3
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 8085, cfg.Server.HTTPPort)
	assert.Equal(t, DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DefaultDBPort, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, DefaultServiceName, cfg.Metrics.ServiceName)
	assert.Equal(t, DefaultIntegrationTimeout, cfg.CatalogService.Timeout)
	assert.Equal(t, 3, cfg.OrderService.Timeout)
	assert.Equal(t, DefaultDraftTTLHours, cfg.Drafts.TTLHours)
	assert.Zero(t, cfg.Drafts.PurgeIntervalMinutes)
	assert.Equal(t,
		"host=localhost port=5432 user=smc password=from-file dbname=order_intake sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("ORDER_SERVICE_URL", "http://orders-env:8080")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "http://orders-env:8080", cfg.OrderService.URL)
}

func TestLoad_InvalidPortFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "eighty")

	_, err := Load(writeConfig(t, sampleConfig))
	require.ErrorIs(t, err, ErrInvalidValue)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.ErrorIs(t, err, ErrLoad)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "no catalog source", mutate: func(c *Config) { c.CatalogService.URL = "" }},
		{name: "no order service", mutate: func(c *Config) { c.OrderService.URL = "" }},
		{name: "idle above open", mutate: func(c *Config) { c.Database.MaxIdleConns = 100 }},
		{name: "port out of range", mutate: func(c *Config) { c.Server.HTTPPort = 70000 }},
		{name: "negative purge interval", mutate: func(c *Config) { c.Drafts.PurgeIntervalMinutes = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, sampleConfig))
			require.NoError(t, err)

			tt.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidValue)
		})
	}
}
