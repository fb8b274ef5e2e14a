package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawswap/x/exchange/types"
	sharedtypes "github.com/paw-chain/pawswap/x/shared/types"
)

// AddLiquidity deposits as much of fundsX and fundsY as the pool's current
// ratio accepts and mints LP credentials for it. fundsX and fundsY come back
// as remainders holding whatever was not taken; either may be empty.
//
// The first deposit into a pool sets its price, mints sqrt(x*y) LP units and
// locks MinimumLiquidity of them inside the pool.
func (k Keeper) AddLiquidity(
	ctx context.Context,
	key sharedtypes.PoolKey,
	fundsX *sharedtypes.Funds, minX math.Int,
	fundsY *sharedtypes.Funds, minY math.Int,
) (remainderX, remainderY, lp *sharedtypes.Funds, err error) {
	if err := key.Validate(); err != nil {
		return nil, nil, nil, err
	}
	if fundsX.Asset() != key.X || fundsY.Asset() != key.Y {
		return nil, nil, nil, sharedtypes.ErrAssetMismatch.Wrapf(
			"pool %s cannot take %s/%s", key, fundsX.Asset(), fundsY.Asset(),
		)
	}
	pool, err := k.GetPool(ctx, key)
	if err != nil {
		return nil, nil, nil, err
	}

	amountX, amountY, err := optimalAmounts(pool, fundsX.Amount(), fundsY.Amount(), minX, minY)
	if err != nil {
		return nil, nil, nil, err
	}

	var minted math.Int
	if pool.IsEmpty() {
		liquidity := types.InitialLiquidity(amountX, amountY)
		if liquidity.LTE(math.NewInt(types.MinimumLiquidity)) {
			return nil, nil, nil, types.ErrInsufficientInitialLiquidity.Wrapf(
				"sqrt(%s*%s)=%s must exceed %d", amountX, amountY, liquidity, types.MinimumLiquidity,
			)
		}
		minted = liquidity.SubRaw(types.MinimumLiquidity)
		pool.LPSupply = liquidity
	} else {
		byX := types.QuoteRatio(amountX, pool.ReserveX, pool.LPSupply)
		byY := types.QuoteRatio(amountY, pool.ReserveY, pool.LPSupply)
		minted = math.MinInt(byX, byY)
		if minted.IsZero() {
			return nil, nil, nil, types.ErrInsufficientLiquidity.Wrapf(
				"deposit %s/%s mints no liquidity in pool %s", amountX, amountY, key,
			)
		}
		pool.LPSupply = pool.LPSupply.Add(minted)
	}

	if err := takeAll(fundsX, amountX); err != nil {
		return nil, nil, nil, err
	}
	if err := takeAll(fundsY, amountY); err != nil {
		return nil, nil, nil, err
	}
	pool.ReserveX = pool.ReserveX.Add(amountX)
	pool.ReserveY = pool.ReserveY.Add(amountY)
	if err := k.SetPool(ctx, pool); err != nil {
		return nil, nil, nil, err
	}

	lp, err = sharedtypes.NewFunds(key.LPAsset(), minted)
	if err != nil {
		return nil, nil, nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLiquidityAdded,
			sdk.NewAttribute(types.AttributeKeyPool, key.String()),
			sdk.NewAttribute(types.AttributeKeyAmountX, amountX.String()),
			sdk.NewAttribute(types.AttributeKeyAmountY, amountY.String()),
			sdk.NewAttribute(types.AttributeKeyLPAmount, minted.String()),
		),
	)
	incrCounter("liquidity_added", key)
	return fundsX, fundsY, lp, nil
}

// RemoveLiquidity burns lp and pays out the pro-rata share of both reserves.
// Fails with ErrSlippageExceeded if either side is below its minimum.
func (k Keeper) RemoveLiquidity(
	ctx context.Context,
	key sharedtypes.PoolKey,
	lp *sharedtypes.Funds,
	minX, minY math.Int,
) (outX, outY *sharedtypes.Funds, err error) {
	if err := key.Validate(); err != nil {
		return nil, nil, err
	}
	if lp.Asset() != key.LPAsset() {
		return nil, nil, sharedtypes.ErrAssetMismatch.Wrapf("pool %s cannot burn %s", key, lp.Asset())
	}
	burn := lp.Amount()
	if !burn.IsPositive() {
		return nil, nil, types.ErrInvalidAmount.Wrap("lp amount must be positive")
	}
	pool, err := k.GetPool(ctx, key)
	if err != nil {
		return nil, nil, err
	}
	if burn.GT(pool.LPSupply.SubRaw(types.MinimumLiquidity)) {
		return nil, nil, types.ErrInsufficientLiquidity.Wrapf("burn %s exceeds unlocked supply of %s", burn, key)
	}

	amountX := types.QuoteRatio(burn, pool.LPSupply, pool.ReserveX)
	amountY := types.QuoteRatio(burn, pool.LPSupply, pool.ReserveY)
	if amountX.LT(minX) {
		return nil, nil, types.ErrSlippageExceeded.Wrapf("x out %s below minimum %s", amountX, minX)
	}
	if amountY.LT(minY) {
		return nil, nil, types.ErrSlippageExceeded.Wrapf("y out %s below minimum %s", amountY, minY)
	}

	if _, err := lp.Consume(); err != nil {
		return nil, nil, err
	}
	pool.ReserveX = pool.ReserveX.Sub(amountX)
	pool.ReserveY = pool.ReserveY.Sub(amountY)
	pool.LPSupply = pool.LPSupply.Sub(burn)
	if err := k.SetPool(ctx, pool); err != nil {
		return nil, nil, err
	}

	if outX, err = sharedtypes.NewFunds(key.X, amountX); err != nil {
		return nil, nil, err
	}
	if outY, err = sharedtypes.NewFunds(key.Y, amountY); err != nil {
		return nil, nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLiquidityRemoved,
			sdk.NewAttribute(types.AttributeKeyPool, key.String()),
			sdk.NewAttribute(types.AttributeKeyAmountX, amountX.String()),
			sdk.NewAttribute(types.AttributeKeyAmountY, amountY.String()),
			sdk.NewAttribute(types.AttributeKeyLPAmount, burn.String()),
		),
	)
	incrCounter("liquidity_removed", key)
	return outX, outY, nil
}

// optimalAmounts picks how much of each desired amount the pool takes: all of
// one side and the ratio-matching amount of the other.
func optimalAmounts(pool types.Pool, desiredX, desiredY, minX, minY math.Int) (math.Int, math.Int, error) {
	if pool.IsEmpty() {
		if desiredX.LT(minX) || desiredY.LT(minY) {
			return math.Int{}, math.Int{}, types.ErrSlippageExceeded.Wrapf(
				"desired %s/%s below minimum %s/%s", desiredX, desiredY, minX, minY,
			)
		}
		return desiredX, desiredY, nil
	}
	if !desiredX.IsPositive() || !desiredY.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrInvalidAmount.Wrap("both deposit amounts must be positive")
	}

	optimalY := types.QuoteRatio(desiredX, pool.ReserveX, pool.ReserveY)
	if optimalY.LTE(desiredY) {
		if optimalY.LT(minY) {
			return math.Int{}, math.Int{}, types.ErrSlippageExceeded.Wrapf("y amount %s below minimum %s", optimalY, minY)
		}
		return desiredX, optimalY, nil
	}

	optimalX := types.QuoteRatio(desiredY, pool.ReserveY, pool.ReserveX)
	if optimalX.LT(minX) {
		return math.Int{}, math.Int{}, types.ErrSlippageExceeded.Wrapf("x amount %s below minimum %s", optimalX, minX)
	}
	return optimalX, desiredY, nil
}

// takeAll moves amount out of funds and into the pool.
func takeAll(funds *sharedtypes.Funds, amount math.Int) error {
	taken, err := funds.Split(amount)
	if err != nil {
		return err
	}
	_, err = taken.Consume()
	return err
}
