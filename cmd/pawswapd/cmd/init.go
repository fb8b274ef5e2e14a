package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	dbm "github.com/cosmos/cosmos-db"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/paw-chain/pawswap/app"
)

const (
	flagGenesis            = "genesis"
	flagDBBackend          = "db-backend"
	flagUncorrelatedFeeBps = "uncorrelated-fee-bps"
	flagStableFeeBps       = "stable-fee-bps"
)

// InitCmd writes the node config and loads genesis into a fresh database.
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the node config and state",
		Long: `Write <home>/config/config.toml and load genesis into a fresh database.

Genesis is read from --genesis when given, otherwise the default genesis
(default fee schedule, no pools, empty ledger) is used. The fee flags
override the genesis fee schedule.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := nodeFrom(cmd)
			if err != nil {
				return err
			}
			cfg := n.cfg
			if cmd.Flags().Changed(flagDBBackend) {
				cfg.DBBackend, _ = cmd.Flags().GetString(flagDBBackend)
			}

			genesis := app.NewDefaultGenesisState()
			if path, _ := cmd.Flags().GetString(flagGenesis); path != "" {
				bz, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("failed to read genesis: %w", err)
				}
				genesis = make(app.GenesisState)
				if err := json.Unmarshal(bz, &genesis); err != nil {
					return fmt.Errorf("failed to decode genesis: %w", err)
				}
			}
			genesis, err = applyFeeOverrides(cmd, genesis)
			if err != nil {
				return err
			}

			if err := WriteConfig(n.home, cfg); err != nil {
				return err
			}
			a, err := app.Open(n.logger, n.home, dbm.BackendType(cfg.DBBackend))
			if err != nil {
				return err
			}
			defer a.Close()
			if err := a.InitChain(genesis); err != nil {
				return err
			}

			n.logger.Info("node initialized", "home", n.home, "height", a.LastBlockHeight())
			return printJSON(cmd, genesis)
		},
	}

	cmd.Flags().String(flagGenesis, "", "path to a genesis JSON file")
	cmd.Flags().String(flagDBBackend, string(dbm.GoLevelDBBackend), "database backend")
	cmd.Flags().Uint32(flagUncorrelatedFeeBps, 0, "fee of uncorrelated pools in basis points")
	cmd.Flags().Uint32(flagStableFeeBps, 0, "fee of stable pools in basis points")
	return cmd
}

func applyFeeOverrides(cmd *cobra.Command, genesis app.GenesisState) (app.GenesisState, error) {
	if !cmd.Flags().Changed(flagUncorrelatedFeeBps) && !cmd.Flags().Changed(flagStableFeeBps) {
		return genesis, nil
	}
	custody, exchange, err := genesis.Modules()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed(flagUncorrelatedFeeBps) {
		fee, err := cast.ToUint32E(cmd.Flags().Lookup(flagUncorrelatedFeeBps).Value.String())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", flagUncorrelatedFeeBps, err)
		}
		exchange.Params.UncorrelatedFeeBps = fee
	}
	if cmd.Flags().Changed(flagStableFeeBps) {
		fee, err := cast.ToUint32E(cmd.Flags().Lookup(flagStableFeeBps).Value.String())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", flagStableFeeBps, err)
		}
		exchange.Params.StableFeeBps = fee
	}
	if err := exchange.Params.Validate(); err != nil {
		return nil, err
	}
	return app.NewGenesisState(custody, exchange), nil
}
