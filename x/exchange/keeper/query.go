package keeper

import (
	"context"

	"cosmossdk.io/math"

	"github.com/paw-chain/pawswap/x/exchange/types"
	sharedtypes "github.com/paw-chain/pawswap/x/shared/types"
)

// GetAmountOut quotes the output of selling amountIn of from for to on curve.
func (k Keeper) GetAmountOut(ctx context.Context, curve sharedtypes.Curve, from, to sharedtypes.AssetID, amountIn math.Int) (math.Int, error) {
	pool, err := k.resolvePool(ctx, curve, from, to)
	if err != nil {
		return math.ZeroInt(), err
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}
	reserveIn, reserveOut, err := pool.Reserves(from)
	if err != nil {
		return math.ZeroInt(), err
	}
	return types.AmountOut(curve, params.FeeBps(curve), amountIn, reserveIn, reserveOut)
}

// GetAmountIn quotes the input of from needed to buy amountOut of to on curve.
func (k Keeper) GetAmountIn(ctx context.Context, curve sharedtypes.Curve, from, to sharedtypes.AssetID, amountOut math.Int) (math.Int, error) {
	pool, err := k.resolvePool(ctx, curve, from, to)
	if err != nil {
		return math.ZeroInt(), err
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}
	reserveIn, reserveOut, err := pool.Reserves(from)
	if err != nil {
		return math.ZeroInt(), err
	}
	return types.AmountIn(curve, params.FeeBps(curve), amountOut, reserveIn, reserveOut)
}

// GetReserves returns the (X, Y) reserves of the pool under key.
func (k Keeper) GetReserves(ctx context.Context, key sharedtypes.PoolKey) (math.Int, math.Int, error) {
	pool, err := k.GetPool(ctx, key)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	return pool.ReserveX, pool.ReserveY, nil
}
