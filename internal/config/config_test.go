package config

import (
	"testing"
	"time"

	"diamonddash/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "GIN_MODE", "DATA_FILE", "DEFAULT_COLUMN", "TABLE_PAGE_SIZE", "METRICS_PORT", "METRICS_ENABLED", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8050", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.GinMode)
	assert.True(t, cfg.Debug())
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "data/diamonds.csv", cfg.Data.File)
	assert.Equal(t, "carat", cfg.Dashboard.DefaultColumn)
	assert.Equal(t, 10, cfg.Dashboard.TablePageSize)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "9090", cfg.Metrics.Port)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("DATA_FILE", "/tmp/stones.xlsx")
	t.Setenv("DEFAULT_COLUMN", "price")
	t.Setenv("TABLE_PAGE_SIZE", "25")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("SHUTDOWN_TIMEOUT", "2s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.False(t, cfg.Debug())
	assert.Equal(t, "/tmp/stones.xlsx", cfg.Data.File)
	assert.Equal(t, "price", cfg.Dashboard.DefaultColumn)
	assert.Equal(t, 25, cfg.Dashboard.TablePageSize)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad gin mode", map[string]string{"GIN_MODE": "loud"}},
		{"zero page size", map[string]string{"TABLE_PAGE_SIZE": "0"}},
		{"port clash", map[string]string{"PORT": "9090", "METRICS_PORT": "9090", "METRICS_ENABLED": "true"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
			assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
		})
	}
}
