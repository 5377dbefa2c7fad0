package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SEED_INVENTORY", "")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, map[string]int{"apple": 29, "bread": 12, "milk": 5}, cfg.SeedInventory)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9191")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SEED_INVENTORY", `{"widget": 7}`)
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "30")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "9191", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, map[string]int{"widget": 7}, cfg.SeedInventory)
}

func TestLoad_RejectsBadSeed(t *testing.T) {
	tests := []struct {
		name string
		seed string
	}{
		{name: "not json", seed: `{"apple": }`},
		{name: "negative quantity", seed: `{"apple": -1}`},
		{name: "empty item name", seed: `{"": 4}`},
		{name: "fractional quantity", seed: `{"apple": 1.5}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("SEED_INVENTORY", tc.seed)

			_, err := Load()

			assert.Error(t, err)
		})
	}
}

func TestLoad_IgnoresInvalidTimeout(t *testing.T) {
	t.Setenv("SEED_INVENTORY", "")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "soon")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}
