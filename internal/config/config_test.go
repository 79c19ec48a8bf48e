package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsAndFile(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8181

[storage]
driver = "redis"

[redis]
addr = "redis:6379"

[[services]]
id = "residencial"
title = "Limpeza Residencial"
price = "R$ 150"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8181, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout, "default kept")
	assert.Equal(t, StorageRedis, cfg.Storage.Driver)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, "cleanpro-bookings", cfg.Redis.Key)
	assert.Equal(t, "555381556144", cfg.WhatsApp.Destination)
	assert.False(t, cfg.RateLimit.TrustForwarded)

	services := cfg.Services()
	require.Len(t, services, 1)
	assert.Equal(t, "Limpeza Residencial", services[0].Title)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8181
`)
	t.Setenv("BOOKING_SERVER_HTTP_PORT", "9090")
	t.Setenv("BOOKING_ADMIN_TOKEN", "s3cret")
	t.Setenv("BOOKING_STORAGE_DRIVER", "postgres")
	t.Setenv("BOOKING_DATABASE_DBNAME", "bookings")
	t.Setenv("BOOKING_RATE_LIMIT_TRUST_FORWARDED", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "s3cret", cfg.Admin.Token)
	assert.Equal(t, StoragePostgres, cfg.Storage.Driver)
	assert.True(t, cfg.RateLimit.TrustForwarded)
	assert.Len(t, cfg.Catalog, 3, "default catalog used when none configured")
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrRead)

	_, err = Load(writeConfig(t, `[server`))
	assert.ErrorIs(t, err, ErrRead)

	_, err = Load(writeConfig(t, "[storage]\ndriver = \"sqlite\"\n"))
	assert.ErrorIs(t, err, ErrValidate)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"empty catalog", func(c *Config) { c.Catalog = nil }},
		{"duplicate service", func(c *Config) { c.Catalog = append(c.Catalog, c.Catalog[0]) }},
		{"bad port", func(c *Config) { c.Server.HTTPPort = 0 }},
		{"empty jsonfile path", func(c *Config) { c.Storage.File = " " }},
		{"empty destination", func(c *Config) { c.WhatsApp.Destination = "" }},
		{"zero rate limit", func(c *Config) { c.RateLimit.Burst = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Catalog = DefaultCatalog()
			tt.modify(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrValidate)
		})
	}

	cfg := Default()
	cfg.Catalog = DefaultCatalog()
	assert.NoError(t, cfg.Validate())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "app", Password: "pw", DBName: "bookings", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=app password=pw dbname=bookings sslmode=disable", d.DSN())
}
