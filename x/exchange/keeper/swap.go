package keeper

import (
	"context"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawswap/x/exchange/types"
	sharedtypes "github.com/paw-chain/pawswap/x/shared/types"
)

// SwapExactInput sells the whole of in for asset to on curve and returns at
// least minOut of it, or fails with ErrSlippageExceeded.
func (k Keeper) SwapExactInput(ctx context.Context, curve sharedtypes.Curve, in *sharedtypes.Funds, to sharedtypes.AssetID, minOut math.Int) (*sharedtypes.Funds, error) {
	pool, err := k.resolvePool(ctx, curve, in.Asset(), to)
	if err != nil {
		return nil, err
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	reserveIn, reserveOut, err := pool.Reserves(in.Asset())
	if err != nil {
		return nil, err
	}

	amountOut, err := types.AmountOut(curve, params.FeeBps(curve), in.Amount(), reserveIn, reserveOut)
	if err != nil {
		return nil, err
	}
	if amountOut.LT(minOut) {
		return nil, types.ErrSlippageExceeded.Wrapf("expected at least %s, got %s", minOut, amountOut)
	}
	return k.executeSwap(ctx, pool, params, in, to, amountOut, types.SwapKindExactInput)
}

// SwapExactOutput buys exactly amountOut of asset to, paying from inMax.
// inMax comes back holding the unspent part of the input. Fails with
// ErrInsufficientInputAmount if inMax cannot pay for amountOut.
func (k Keeper) SwapExactOutput(ctx context.Context, curve sharedtypes.Curve, inMax *sharedtypes.Funds, to sharedtypes.AssetID, amountOut math.Int) (remainder, out *sharedtypes.Funds, err error) {
	pool, err := k.resolvePool(ctx, curve, inMax.Asset(), to)
	if err != nil {
		return nil, nil, err
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, nil, err
	}
	reserveIn, reserveOut, err := pool.Reserves(inMax.Asset())
	if err != nil {
		return nil, nil, err
	}

	amountIn, err := types.AmountIn(curve, params.FeeBps(curve), amountOut, reserveIn, reserveOut)
	if err != nil {
		return nil, nil, err
	}
	if amountIn.GT(inMax.Amount()) {
		return nil, nil, types.ErrInsufficientInputAmount.Wrapf(
			"buying %s %s needs %s %s, have %s", amountOut, to, amountIn, inMax.Asset(), inMax.Amount(),
		)
	}

	payment, err := inMax.Split(amountIn)
	if err != nil {
		return nil, nil, err
	}
	out, err = k.executeSwap(ctx, pool, params, payment, to, amountOut, types.SwapKindExactOutput)
	if err != nil {
		return nil, nil, err
	}
	return inMax, out, nil
}

// SwapUnchecked trades the whole of in for exactly declaredOut of asset to.
// The trade is accepted only if the pool ends no worse off than its curve
// requires; asking for more fails with ErrIncorrectSwapAmount.
func (k Keeper) SwapUnchecked(ctx context.Context, curve sharedtypes.Curve, in *sharedtypes.Funds, to sharedtypes.AssetID, declaredOut math.Int) (*sharedtypes.Funds, error) {
	pool, err := k.resolvePool(ctx, curve, in.Asset(), to)
	if err != nil {
		return nil, err
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	_, reserveOut, err := pool.Reserves(in.Asset())
	if err != nil {
		return nil, err
	}
	if !declaredOut.IsPositive() {
		return nil, types.ErrInvalidAmount.Wrap("declared output must be positive")
	}
	if declaredOut.GTE(reserveOut) {
		return nil, types.ErrIncorrectSwapAmount.Wrapf("declared output %s >= reserve %s", declaredOut, reserveOut)
	}
	return k.executeSwap(ctx, pool, params, in, to, declaredOut, types.SwapKindUnchecked)
}

// executeSwap consumes in, pays amountOut of asset to out of the pool and
// persists the new reserves once the curve invariant is verified.
func (k Keeper) executeSwap(
	ctx context.Context,
	pool types.Pool,
	params types.Params,
	in *sharedtypes.Funds,
	to sharedtypes.AssetID,
	amountOut math.Int,
	kind string,
) (*sharedtypes.Funds, error) {
	amountIn := in.Amount()
	if !amountIn.IsPositive() {
		return nil, types.ErrInvalidAmount.Wrap("swap input must be positive")
	}

	key := pool.Key
	nx, ny := pool.ReserveX, pool.ReserveY
	inX, inY := math.ZeroInt(), math.ZeroInt()
	if in.Asset() == key.X {
		nx, ny, inX = nx.Add(amountIn), ny.Sub(amountOut), amountIn
	} else {
		ny, nx, inY = ny.Add(amountIn), nx.Sub(amountOut), amountIn
	}
	if nx.IsNegative() || ny.IsNegative() {
		return nil, types.ErrInsufficientLiquidity.Wrapf("output %s exceeds reserves of %s", amountOut, key)
	}

	if !types.InvariantHolds(key.Curve, params.FeeBps(key.Curve), pool.ReserveX, pool.ReserveY, nx, ny, inX, inY) {
		violation := types.ErrInvariantViolation
		if kind == types.SwapKindUnchecked {
			violation = types.ErrIncorrectSwapAmount
		}
		return nil, errors.Wrapf(violation, "%s %s for %s %s breaks the %s curve of %s",
			amountIn, in.Asset(), amountOut, to, key.Curve, key)
	}

	if _, err := in.Consume(); err != nil {
		return nil, err
	}
	pool.ReserveX, pool.ReserveY = nx, ny
	if err := k.SetPool(ctx, pool); err != nil {
		return nil, err
	}

	out, err := sharedtypes.NewFunds(to, amountOut)
	if err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyPool, key.String()),
			sdk.NewAttribute(types.AttributeKeyKind, kind),
			sdk.NewAttribute(types.AttributeKeyAssetIn, in.Asset().String()),
			sdk.NewAttribute(types.AttributeKeyAssetOut, to.String()),
			sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, amountOut.String()),
		),
	)
	incrCounter("swap", key, kindLabel(kind))
	return out, nil
}
