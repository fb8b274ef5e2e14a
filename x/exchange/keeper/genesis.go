package keeper

import (
	"context"
	"fmt"

	"github.com/paw-chain/pawswap/x/exchange/types"
)

// InitGenesis stores params and every pool from genesis.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("InitGenesis: %w", err)
	}
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("InitGenesis: set params: %w", err)
	}
	for _, pool := range genState.Pools {
		if err := k.SetPool(ctx, pool); err != nil {
			return fmt.Errorf("InitGenesis: set pool %s: %w", pool.Key, err)
		}
	}
	k.setPoolCount(ctx, uint64(len(genState.Pools)))

	k.Logger(ctx).Info("exchange genesis initialized", "pools", len(genState.Pools))
	return nil
}

// ExportGenesis returns the params and every pool.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("ExportGenesis: %w", err)
	}
	pools, err := k.GetAllPools(ctx)
	if err != nil {
		return nil, fmt.Errorf("ExportGenesis: %w", err)
	}
	if pools == nil {
		pools = []types.Pool{}
	}
	return &types.GenesisState{Params: params, Pools: pools}, nil
}
