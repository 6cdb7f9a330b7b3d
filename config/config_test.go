package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 9300, cfg.Server.Port)
	assert.Equal(t, 10, cfg.Scheduler.BatchSize)
	assert.Equal(t, 4, cfg.Scheduler.WorkerLimit)
	assert.Equal(t, time.Minute, cfg.Scheduler.SweepInterval)
	assert.True(t, cfg.Scheduler.Enabled)
	assert.Equal(t, 10*time.Second, cfg.Fetcher.Timeout)
	assert.Equal(t, 20, cfg.Fetcher.FirstFetchLimit)
	assert.Equal(t, 50, cfg.Fetcher.RefreshFetchLimit)
	assert.Equal(t, 5*time.Second, cfg.RateLimit.HostInterval)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("SCHEDULER_BATCH_SIZE", "25")
	t.Setenv("SCHEDULER_ENABLED", "false")
	t.Setenv("FETCHER_TIMEOUT", "3s")
	t.Setenv("DB_HOST", "db.internal")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, 25, cfg.Scheduler.BatchSize)
	assert.False(t, cfg.Scheduler.Enabled)
	assert.Equal(t, 3*time.Second, cfg.Fetcher.Timeout)
	assert.Equal(t, "db.internal", cfg.Database.Host)
}

func TestNewConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		value string
	}{
		{"invalid port", "SERVER_PORT", "0"},
		{"port out of range", "SERVER_PORT", "99999"},
		{"non-numeric port", "SERVER_PORT", "abc"},
		{"zero batch size", "SCHEDULER_BATCH_SIZE", "0"},
		{"negative worker limit", "SCHEDULER_WORKER_LIMIT", "-1"},
		{"invalid duration", "FETCHER_TIMEOUT", "fast"},
		{"zero fetch timeout", "FETCHER_TIMEOUT", "0s"},
		{"invalid bool", "SCHEDULER_ENABLED", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)
			_, err := NewConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoadAlias(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}
