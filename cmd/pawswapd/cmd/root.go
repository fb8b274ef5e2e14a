package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"cosmossdk.io/log"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/paw-chain/pawswap/app"
	"github.com/paw-chain/pawswap/app/telemetry"
)

const (
	flagHome        = "home"
	flagLogLevel    = "log-level"
	flagLogFormat   = "log-format"
	flagMetricsFile = "metrics-file"
)

var sdkConfigOnce sync.Once

func initSDKConfig() {
	sdkConfigOnce.Do(app.SetConfig)
}

type nodeKey struct{}

// node carries the per-invocation configuration resolved by the root command.
type node struct {
	home    string
	cfg     Config
	logger  log.Logger
	tracing *telemetry.Provider
}

// NewRootCmd creates the pawswapd root command.
func NewRootCmd() *cobra.Command {
	initSDKConfig()

	rootCmd := &cobra.Command{
		Use:          "pawswapd",
		Short:        "PAW swap settlement node",
		Long:         "pawswapd keeps a custody ledger and constant-product/stable pools on local storage and settles liquidity and swap requests against them atomically.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SetOut(cmd.OutOrStdout())
			cmd.SetErr(cmd.ErrOrStderr())

			home, err := cmd.Flags().GetString(flagHome)
			if err != nil {
				return err
			}
			cfg, err := ReadConfig(home)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed(flagLogLevel) {
				cfg.LogLevel, _ = cmd.Flags().GetString(flagLogLevel)
			}
			if cmd.Flags().Changed(flagLogFormat) {
				cfg.LogFormat, _ = cmd.Flags().GetString(flagLogFormat)
			}
			if cmd.Flags().Changed(flagMetricsFile) {
				cfg.MetricsFile, _ = cmd.Flags().GetString(flagMetricsFile)
			}

			logger, err := newLogger(cmd.ErrOrStderr(), cfg)
			if err != nil {
				return err
			}
			provider, err := telemetry.NewProvider(cfg.Telemetry)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(context.WithValue(ctx, nodeKey{}, &node{
				home:    home,
				cfg:     cfg,
				logger:  logger,
				tracing: provider,
			}))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			n, err := nodeFrom(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return n.tracing.Shutdown(ctx)
		},
	}

	rootCmd.PersistentFlags().String(flagHome, app.DefaultNodeHome, "directory for config and data")
	rootCmd.PersistentFlags().String(flagLogLevel, "", "log level, e.g. info or settlement:debug,*:info (overrides config)")
	rootCmd.PersistentFlags().String(flagLogFormat, "", "log format, plain or json (overrides config)")
	rootCmd.PersistentFlags().String(flagMetricsFile, "", "write Prometheus metrics to this file after each transaction (overrides config)")

	rootCmd.AddCommand(
		InitCmd(),
		AddrCmd(),
		ExportCmd(),
		queryCommand(),
		txCommand(),
	)
	return rootCmd
}

func newLogger(w io.Writer, cfg Config) (log.Logger, error) {
	filter, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	opts := []log.Option{log.FilterOption(filter), log.ColorOption(false)}
	if cfg.LogFormat == logFormatJSON {
		opts = append(opts, log.OutputJSONOption())
	}
	return log.NewLogger(w, opts...), nil
}

func nodeFrom(cmd *cobra.Command) (*node, error) {
	n, ok := cmd.Context().Value(nodeKey{}).(*node)
	if !ok {
		return nil, fmt.Errorf("command context not initialized")
	}
	return n, nil
}

// openApp opens the node database, refusing to run on an uninitialized home.
func openApp(cmd *cobra.Command) (*node, *app.PawSwapApp, error) {
	n, err := nodeFrom(cmd)
	if err != nil {
		return nil, nil, err
	}
	a, err := app.Open(n.logger, n.home, dbm.BackendType(n.cfg.DBBackend))
	if err != nil {
		return nil, nil, err
	}
	if a.LastBlockHeight() == 0 {
		_ = a.Close()
		return nil, nil, fmt.Errorf("home %s is not initialized, run pawswapd init first", n.home)
	}
	return n, a, nil
}

// flushMetrics writes every metric in the default Prometheus registry to the
// configured metrics file.
func (n *node) flushMetrics() {
	if n.cfg.MetricsFile == "" {
		return
	}
	if err := prometheus.WriteToTextfile(n.cfg.MetricsFile, prometheus.DefaultGatherer); err != nil {
		n.logger.Error("failed to write metrics", "file", n.cfg.MetricsFile, "error", err)
	}
}

// resolveAddress accepts a bech32 account address or derives a deterministic
// address from a local account name.
func resolveAddress(s string) (sdk.AccAddress, error) {
	if s == "" {
		return nil, fmt.Errorf("empty account")
	}
	if addr, err := sdk.AccAddressFromBech32(s); err == nil {
		return addr, nil
	}
	return NameAddress(s), nil
}

// NameAddress derives the account address of a local account name.
func NameAddress(name string) sdk.AccAddress {
	return sdk.AccAddress(address.Module(app.Name, []byte(name))[:20])
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
	return err
}
