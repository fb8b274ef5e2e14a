package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	dbm "github.com/cosmos/cosmos-db"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/paw-chain/pawswap/app/telemetry"
)

const (
	configDir      = "config"
	configFileName = "config.toml"
	envPrefix      = "PAWSWAP"

	logFormatPlain = "plain"
	logFormatJSON  = "json"
)

// Config is the node configuration read from <home>/config/config.toml.
// Every key can be overridden by a PAWSWAP_ prefixed environment variable,
// with dots replaced by underscores.
type Config struct {
	DBBackend string `mapstructure:"db_backend"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	// MetricsFile, when set, receives the Prometheus text exposition of the
	// process metrics after every transaction, for a node_exporter textfile
	// collector to pick up.
	MetricsFile string           `mapstructure:"metrics_file"`
	Telemetry   telemetry.Config `mapstructure:"telemetry"`
}

// DefaultConfig returns a goleveldb node logging at info.
func DefaultConfig() Config {
	return Config{
		DBBackend: string(dbm.GoLevelDBBackend),
		LogLevel:  "info",
		LogFormat: logFormatPlain,
		Telemetry: telemetry.DefaultConfig(),
	}
}

// Validate checks the backend and log settings.
func (c Config) Validate() error {
	switch dbm.BackendType(c.DBBackend) {
	case dbm.GoLevelDBBackend, dbm.MemDBBackend:
	default:
		return fmt.Errorf("unsupported db_backend %q", c.DBBackend)
	}
	if c.LogFormat != logFormatPlain && c.LogFormat != logFormatJSON {
		return fmt.Errorf("unsupported log_format %q", c.LogFormat)
	}
	return c.Telemetry.Validate()
}

func configPath(home string) string {
	return filepath.Join(home, configDir, configFileName)
}

func newViper(home string) *viper.Viper {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigFile(configPath(home))
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := DefaultConfig()
	v.SetDefault("db_backend", def.DBBackend)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_format", def.LogFormat)
	v.SetDefault("metrics_file", def.MetricsFile)
	v.SetDefault("telemetry.enabled", def.Telemetry.Enabled)
	v.SetDefault("telemetry.otlp_endpoint", def.Telemetry.OTLPEndpoint)
	v.SetDefault("telemetry.sample_rate", def.Telemetry.SampleRate)
	v.SetDefault("telemetry.environment", def.Telemetry.Environment)
	v.SetDefault("telemetry.chain_id", def.Telemetry.ChainID)
	return v
}

// ReadConfig loads the config under home. A missing file yields the defaults
// with any environment overrides applied.
func ReadConfig(home string) (Config, error) {
	v := newViper(home)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to read %s: %w", configPath(home), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	rate, err := cast.ToFloat64E(v.Get("telemetry.sample_rate"))
	if err != nil {
		return Config{}, fmt.Errorf("telemetry.sample_rate: %w", err)
	}
	cfg.Telemetry.SampleRate = rate

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WriteConfig writes cfg to <home>/config/config.toml.
func WriteConfig(home string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Join(home, configDir), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("db_backend", cfg.DBBackend)
	v.Set("log_level", cfg.LogLevel)
	v.Set("log_format", cfg.LogFormat)
	v.Set("metrics_file", cfg.MetricsFile)
	v.Set("telemetry.enabled", cfg.Telemetry.Enabled)
	v.Set("telemetry.otlp_endpoint", cfg.Telemetry.OTLPEndpoint)
	v.Set("telemetry.sample_rate", cfg.Telemetry.SampleRate)
	v.Set("telemetry.environment", cfg.Telemetry.Environment)
	v.Set("telemetry.chain_id", cfg.Telemetry.ChainID)
	if err := v.WriteConfigAs(configPath(home)); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
