package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawswap/x/settlement/types"
	sharedtypes "github.com/paw-chain/pawswap/x/shared/types"
)

// Swap sells exactly coinVal of from for at least coinOutMin of to. The
// output goes to recipient, or to initiator when none is given.
func (k Keeper) Swap(
	ctx context.Context, initiator sdk.AccAddress,
	from, to sharedtypes.AssetID, curve sharedtypes.Curve,
	coinVal, coinOutMin math.Int, recipient types.Recipient,
) (types.SwapSettled, error) {
	receiver, err := validateSwapRequest(initiator, recipient, primary("coin val", coinVal), minimum("coin out min", coinOutMin))
	if err != nil {
		return types.SwapSettled{}, err
	}

	var result types.SwapSettled
	err = k.settle(ctx, types.OpSwap, func(u *unit) error {
		in, err := u.withdraw(initiator, from, coinVal)
		if err != nil {
			return err
		}
		out, err := k.engine.SwapExactInput(u.ctx, curve, in, to, coinOutMin)
		if err != nil {
			return err
		}
		if err := u.receive(out); err != nil {
			return err
		}

		result = types.SwapSettled{
			AmountIn:  coinVal,
			AmountOut: out.Amount(),
			Remainder: math.ZeroInt(),
			Recipient: receiver,
		}
		if err := u.deposit(receiver, out); err != nil {
			return err
		}
		u.emit(swapAttributes(initiator, from, to, curve, result)...)
		return nil
	})
	if err != nil {
		return types.SwapSettled{}, err
	}
	return result, nil
}

// SwapInto buys exactly coinOut of to, spending at most coinValMax of from.
// The output goes to recipient (or initiator); the unspent input always
// returns to initiator.
func (k Keeper) SwapInto(
	ctx context.Context, initiator sdk.AccAddress,
	from, to sharedtypes.AssetID, curve sharedtypes.Curve,
	coinValMax, coinOut math.Int, recipient types.Recipient,
) (types.SwapSettled, error) {
	receiver, err := validateSwapRequest(initiator, recipient, primary("coin val max", coinValMax), primary("coin out", coinOut))
	if err != nil {
		return types.SwapSettled{}, err
	}

	var result types.SwapSettled
	err = k.settle(ctx, types.OpSwapInto, func(u *unit) error {
		inMax, err := u.withdraw(initiator, from, coinValMax)
		if err != nil {
			return err
		}
		remainder, out, err := k.engine.SwapExactOutput(u.ctx, curve, inMax, to, coinOut)
		if err != nil {
			return err
		}
		if err := u.receive(remainder, out); err != nil {
			return err
		}

		result = types.SwapSettled{
			AmountIn:  coinValMax.Sub(remainder.Amount()),
			AmountOut: out.Amount(),
			Remainder: remainder.Amount(),
			Recipient: receiver,
		}
		if err := u.deposit(initiator, remainder); err != nil {
			return err
		}
		if err := u.deposit(receiver, out); err != nil {
			return err
		}
		u.emit(swapAttributes(initiator, from, to, curve, result)...)
		return nil
	})
	if err != nil {
		return types.SwapSettled{}, err
	}
	return result, nil
}

// SwapUnchecked trades exactly coinIn of from for the declared coinOut of
// to. The engine rejects a declared output its curve does not allow.
func (k Keeper) SwapUnchecked(
	ctx context.Context, initiator sdk.AccAddress,
	from, to sharedtypes.AssetID, curve sharedtypes.Curve,
	coinIn, coinOut math.Int, recipient types.Recipient,
) (types.SwapSettled, error) {
	receiver, err := validateSwapRequest(initiator, recipient, primary("coin in", coinIn), primary("coin out", coinOut))
	if err != nil {
		return types.SwapSettled{}, err
	}

	var result types.SwapSettled
	err = k.settle(ctx, types.OpSwapUnchecked, func(u *unit) error {
		in, err := u.withdraw(initiator, from, coinIn)
		if err != nil {
			return err
		}
		out, err := k.engine.SwapUnchecked(u.ctx, curve, in, to, coinOut)
		if err != nil {
			return err
		}
		if err := u.receive(out); err != nil {
			return err
		}

		result = types.SwapSettled{
			AmountIn:  coinIn,
			AmountOut: out.Amount(),
			Remainder: math.ZeroInt(),
			Recipient: receiver,
		}
		if err := u.deposit(receiver, out); err != nil {
			return err
		}
		u.emit(swapAttributes(initiator, from, to, curve, result)...)
		return nil
	})
	if err != nil {
		return types.SwapSettled{}, err
	}
	return result, nil
}

func validateSwapRequest(initiator sdk.AccAddress, recipient types.Recipient, amountIn, amountOut namedAmount) (sdk.AccAddress, error) {
	if initiator.Empty() {
		return nil, types.ErrInvalidAddress.Wrap("initiator address cannot be empty")
	}
	if err := recipient.Validate(); err != nil {
		return nil, err
	}
	if err := validateAmounts(amountIn, amountOut); err != nil {
		return nil, err
	}
	return recipient.Resolve(initiator), nil
}

func swapAttributes(initiator sdk.AccAddress, from, to sharedtypes.AssetID, curve sharedtypes.Curve, result types.SwapSettled) []sdk.Attribute {
	return []sdk.Attribute{
		sdk.NewAttribute(types.AttributeKeyInitiator, initiator.String()),
		sdk.NewAttribute(types.AttributeKeyRecipient, result.Recipient.String()),
		sdk.NewAttribute(types.AttributeKeyAssetIn, from.String()),
		sdk.NewAttribute(types.AttributeKeyAssetOut, to.String()),
		sdk.NewAttribute(types.AttributeKeyCurve, curve.String()),
		sdk.NewAttribute(types.AttributeKeyAmountIn, result.AmountIn.String()),
		sdk.NewAttribute(types.AttributeKeyAmountOut, result.AmountOut.String()),
		sdk.NewAttribute(types.AttributeKeyRemainder, result.Remainder.String()),
	}
}
