package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadConfigDefaults(t *testing.T) {
	cfg, err := ReadConfig(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestWriteReadConfig(t *testing.T) {
	home := t.TempDir()
	cfg := DefaultConfig()
	cfg.LogLevel = "settlement:debug,*:info"
	cfg.LogFormat = logFormatJSON
	cfg.MetricsFile = "/var/lib/node_exporter/pawswap.prom"
	cfg.Telemetry.SampleRate = 0.25
	require.NoError(t, WriteConfig(home, cfg))

	read, err := ReadConfig(home)
	require.NoError(t, err)
	require.Equal(t, cfg, read)
}

func TestConfigEnvOverride(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, WriteConfig(home, DefaultConfig()))

	t.Setenv("PAWSWAP_LOG_LEVEL", "debug")
	t.Setenv("PAWSWAP_TELEMETRY_SAMPLE_RATE", "0.5")
	cfg, err := ReadConfig(home)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 0.5, cfg.Telemetry.SampleRate)
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DBBackend = "rocksdb"
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.LogFormat = "xml"
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Telemetry.SampleRate = 3
	require.Error(t, cfg.Validate())
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "settlement:loud"
	_, err := newLogger(nil, cfg)
	require.Error(t, err)
}
