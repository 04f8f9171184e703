package config

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoragePostgres, cfg.Storage)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "USD", cfg.Funding.Currency)
	assert.Equal(t, "1000", cfg.Funding.InitialBalance.String())
	assert.Equal(t, uint(5), cfg.Funding.Compensation.MaxTries)
	assert.Equal(t, 100*time.Millisecond, cfg.Funding.Compensation.InitialInterval)
	assert.False(t, cfg.Psql.RunMigrations)
	assert.Equal(t, 5*time.Second, cfg.Psql.LockTimeout)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("STORAGE", "memory")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("PSQL_MAX_CONNS", "12")
	t.Setenv("PSQL_LOCK_TIMEOUT", "750ms")
	t.Setenv("FUNDING_CURRENCY", "PLN")
	t.Setenv("FUNDING_INITIAL_BALANCE", "250.75")
	t.Setenv("FUNDING_COMPENSATION_MAX_ELAPSED", "1m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.Equal(t, int32(12), cfg.Psql.MaxConns)
	assert.Equal(t, 750*time.Millisecond, cfg.Psql.LockTimeout)
	assert.Equal(t, "PLN", cfg.Funding.Currency)
	assert.Equal(t, "250.75", cfg.Funding.InitialBalance.String())
	assert.Equal(t, time.Minute, cfg.Funding.Compensation.MaxElapsed)
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"storage", "STORAGE", "redis"},
		{"currency", "FUNDING_CURRENCY", "XXZ"},
		{"negative balance", "FUNDING_INITIAL_BALANCE", "-1"},
		{"balance precision", "FUNDING_INITIAL_BALANCE", "1.001"},
		{"balance too large", "FUNDING_INITIAL_BALANCE", "1e12"},
		{"balance huge exponent", "FUNDING_INITIAL_BALANCE", "1e50000000"},
		{"balance syntax", "FUNDING_INITIAL_BALANCE", "lots"},
		{"three-digit currency on postgres", "FUNDING_CURRENCY", "KWD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoggerConfig(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{}
	cfg.Log.Level = "WARN"
	cfg.Log.Format = "JSON"
	assert.Equal(t, slog.LevelWarn, cfg.Log.SlogLevel())

	logger := cfg.Log.New(&buf)
	logger.Info("dropped")
	logger.Warn("kept", slog.Int64("campaign_id", 7))
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"campaign_id":7`)

	cfg.Log.Level = "verbose"
	cfg.Log.Format = "xml"
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
	assert.Equal(t, "text", cfg.Log.SlogFormat())
}
