package keeper

import (
	"context"

	"cosmossdk.io/math"

	exchangetypes "github.com/paw-chain/pawswap/x/exchange/types"
	"github.com/paw-chain/pawswap/x/settlement/types"
	sharedtypes "github.com/paw-chain/pawswap/x/shared/types"
)

// QuoteSwap returns what Swap would pay out for amountIn of from.
func (k Keeper) QuoteSwap(ctx context.Context, curve sharedtypes.Curve, from, to sharedtypes.AssetID, amountIn math.Int) (math.Int, error) {
	quoter, ok := k.engine.(types.ExchangeQuoter)
	if !ok {
		return math.Int{}, types.ErrQueryUnsupported.Wrap("quote swap")
	}
	return quoter.GetAmountOut(ctx, curve, from, to, amountIn)
}

// QuoteSwapInto returns what SwapInto would spend to buy amountOut of to.
func (k Keeper) QuoteSwapInto(ctx context.Context, curve sharedtypes.Curve, from, to sharedtypes.AssetID, amountOut math.Int) (math.Int, error) {
	quoter, ok := k.engine.(types.ExchangeQuoter)
	if !ok {
		return math.Int{}, types.ErrQueryUnsupported.Wrap("quote swap into")
	}
	return quoter.GetAmountIn(ctx, curve, from, to, amountOut)
}

// Pool returns the engine's state for key.
func (k Keeper) Pool(ctx context.Context, key sharedtypes.PoolKey) (exchangetypes.Pool, error) {
	reader, ok := k.engine.(types.PoolReader)
	if !ok {
		return exchangetypes.Pool{}, types.ErrQueryUnsupported.Wrap("pool")
	}
	return reader.GetPool(ctx, key)
}
