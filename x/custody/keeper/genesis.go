package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawswap/x/custody/types"
	sharedtypes "github.com/paw-chain/pawswap/x/shared/types"
)

// InitGenesis loads every holding record from genesis. It always records the
// genesis height, so an empty ledger still commits a non-empty store.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("InitGenesis: %w", err)
	}
	k.setGenesisHeight(ctx)
	for _, b := range genState.Balances {
		account, err := sdk.AccAddressFromBech32(b.Address)
		if err != nil {
			return fmt.Errorf("InitGenesis: %w", err)
		}
		if err := k.Mint(ctx, account, b.Asset, b.Amount); err != nil {
			return fmt.Errorf("InitGenesis: mint %s to %s: %w", b.Asset, b.Address, err)
		}
	}
	k.Logger(ctx).Info("custody genesis initialized", "balances", len(genState.Balances))
	return nil
}

// ExportGenesis returns every holding record.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	genState := types.DefaultGenesis()
	err := k.IterateBalances(ctx, func(account sdk.AccAddress, asset sharedtypes.AssetID, amount math.Int) bool {
		genState.Balances = append(genState.Balances, types.Balance{
			Address: account.String(),
			Asset:   asset,
			Amount:  amount,
		})
		return false
	})
	if err != nil {
		return nil, fmt.Errorf("ExportGenesis: %w", err)
	}
	return genState, nil
}
