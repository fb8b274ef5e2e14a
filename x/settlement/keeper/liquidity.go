package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawswap/x/settlement/types"
	sharedtypes "github.com/paw-chain/pawswap/x/shared/types"
)

// RegisterPool asks the engine to create the pool identified by key. No funds move.
func (k Keeper) RegisterPool(ctx context.Context, initiator sdk.AccAddress, key sharedtypes.PoolKey) error {
	if initiator.Empty() {
		return types.ErrInvalidAddress.Wrap("initiator address cannot be empty")
	}
	return k.settle(ctx, types.OpRegisterPool, func(u *unit) error {
		if err := k.engine.CreatePool(u.ctx, initiator, key); err != nil {
			return err
		}
		u.emit(
			sdk.NewAttribute(types.AttributeKeyInitiator, initiator.String()),
			sdk.NewAttribute(types.AttributeKeyPool, key.String()),
		)
		return nil
	})
}

// RegisterPoolAndAddLiquidity registers key and seeds it in one unit. If
// registration fails nothing is withdrawn.
func (k Keeper) RegisterPoolAndAddLiquidity(
	ctx context.Context, initiator sdk.AccAddress, key sharedtypes.PoolKey,
	amountX, minX, amountY, minY math.Int,
) (types.LiquidityAdded, error) {
	if err := validateLiquidityRequest(initiator, amountX, minX, amountY, minY); err != nil {
		return types.LiquidityAdded{}, err
	}

	var result types.LiquidityAdded
	err := k.settle(ctx, types.OpRegisterPoolAndAddLiquidity, func(u *unit) error {
		if err := k.engine.CreatePool(u.ctx, initiator, key); err != nil {
			return err
		}
		var err error
		result, err = k.addLiquidity(u, initiator, key, amountX, minX, amountY, minY)
		return err
	})
	if err != nil {
		return types.LiquidityAdded{}, err
	}
	return result, nil
}

// AddLiquidity withdraws amountX and amountY from initiator, hands both to
// the engine and deposits the unused parts plus the minted LP back to initiator.
func (k Keeper) AddLiquidity(
	ctx context.Context, initiator sdk.AccAddress, key sharedtypes.PoolKey,
	amountX, minX, amountY, minY math.Int,
) (types.LiquidityAdded, error) {
	if err := validateLiquidityRequest(initiator, amountX, minX, amountY, minY); err != nil {
		return types.LiquidityAdded{}, err
	}
	if err := key.Validate(); err != nil {
		return types.LiquidityAdded{}, err
	}

	var result types.LiquidityAdded
	err := k.settle(ctx, types.OpAddLiquidity, func(u *unit) error {
		var err error
		result, err = k.addLiquidity(u, initiator, key, amountX, minX, amountY, minY)
		return err
	})
	if err != nil {
		return types.LiquidityAdded{}, err
	}
	return result, nil
}

func (k Keeper) addLiquidity(
	u *unit, initiator sdk.AccAddress, key sharedtypes.PoolKey,
	amountX, minX, amountY, minY math.Int,
) (types.LiquidityAdded, error) {
	fundsX, err := u.withdraw(initiator, key.X, amountX)
	if err != nil {
		return types.LiquidityAdded{}, err
	}
	fundsY, err := u.withdraw(initiator, key.Y, amountY)
	if err != nil {
		return types.LiquidityAdded{}, err
	}

	remX, remY, lp, err := k.engine.AddLiquidity(u.ctx, key, fundsX, minX, fundsY, minY)
	if err != nil {
		return types.LiquidityAdded{}, err
	}
	if err := u.receive(remX, remY, lp); err != nil {
		return types.LiquidityAdded{}, err
	}

	result := types.LiquidityAdded{
		AmountX:  amountX.Sub(remX.Amount()),
		AmountY:  amountY.Sub(remY.Amount()),
		LPMinted: lp.Amount(),
	}
	for _, funds := range []*sharedtypes.Funds{remX, remY, lp} {
		if err := u.deposit(initiator, funds); err != nil {
			return types.LiquidityAdded{}, err
		}
	}

	u.emit(
		sdk.NewAttribute(types.AttributeKeyInitiator, initiator.String()),
		sdk.NewAttribute(types.AttributeKeyPool, key.String()),
		sdk.NewAttribute(types.AttributeKeyAmountX, result.AmountX.String()),
		sdk.NewAttribute(types.AttributeKeyAmountY, result.AmountY.String()),
		sdk.NewAttribute(types.AttributeKeyLPAmount, result.LPMinted.String()),
	)
	return result, nil
}

// RemoveLiquidity burns lpAmount of key's LP asset held by initiator and
// deposits the released reserves to initiator.
func (k Keeper) RemoveLiquidity(
	ctx context.Context, initiator sdk.AccAddress, key sharedtypes.PoolKey,
	lpAmount, minX, minY math.Int,
) (types.LiquidityRemoved, error) {
	if initiator.Empty() {
		return types.LiquidityRemoved{}, types.ErrInvalidAddress.Wrap("initiator address cannot be empty")
	}
	if err := validateAmounts(primary("lp amount", lpAmount), minimum("min x", minX), minimum("min y", minY)); err != nil {
		return types.LiquidityRemoved{}, err
	}
	if err := key.Validate(); err != nil {
		return types.LiquidityRemoved{}, err
	}

	var result types.LiquidityRemoved
	err := k.settle(ctx, types.OpRemoveLiquidity, func(u *unit) error {
		lp, err := u.withdraw(initiator, key.LPAsset(), lpAmount)
		if err != nil {
			return err
		}
		outX, outY, err := k.engine.RemoveLiquidity(u.ctx, key, lp, minX, minY)
		if err != nil {
			return err
		}
		if err := u.receive(outX, outY); err != nil {
			return err
		}

		result = types.LiquidityRemoved{
			LPBurned: lpAmount,
			AmountX:  outX.Amount(),
			AmountY:  outY.Amount(),
		}
		if err := u.deposit(initiator, outX); err != nil {
			return err
		}
		if err := u.deposit(initiator, outY); err != nil {
			return err
		}

		u.emit(
			sdk.NewAttribute(types.AttributeKeyInitiator, initiator.String()),
			sdk.NewAttribute(types.AttributeKeyPool, key.String()),
			sdk.NewAttribute(types.AttributeKeyLPAmount, lpAmount.String()),
			sdk.NewAttribute(types.AttributeKeyAmountX, result.AmountX.String()),
			sdk.NewAttribute(types.AttributeKeyAmountY, result.AmountY.String()),
		)
		return nil
	})
	if err != nil {
		return types.LiquidityRemoved{}, err
	}
	return result, nil
}

func validateLiquidityRequest(initiator sdk.AccAddress, amountX, minX, amountY, minY math.Int) error {
	if initiator.Empty() {
		return types.ErrInvalidAddress.Wrap("initiator address cannot be empty")
	}
	return validateAmounts(
		primary("amount x", amountX), minimum("min x", minX),
		primary("amount y", amountY), minimum("min y", minY),
	)
}
