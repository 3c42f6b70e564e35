package config_test

import (
	"testing"

	"github.com/linksound/wavekit/internal/config"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, 16000, cfg.SampleRate)
	require.Equal(t, 1, cfg.Channels)
	require.Equal(t, "8080", cfg.MonitorPort)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("WAVEKIT_SAMPLE_RATE", "44100")
	t.Setenv("WAVEKIT_LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, 44100, cfg.SampleRate)
	require.Equal(t, "debug", cfg.LogLevel)
}
