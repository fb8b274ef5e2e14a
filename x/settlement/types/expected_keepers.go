package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	exchangetypes "github.com/paw-chain/pawswap/x/exchange/types"
	sharedtypes "github.com/paw-chain/pawswap/x/shared/types"
)

// CustodyKeeper moves funds between account holdings and in-flight bundles.
type CustodyKeeper interface {
	// Withdraw fails with ErrInsufficientBalance if owner holds less than amount.
	Withdraw(ctx context.Context, owner sdk.AccAddress, asset sharedtypes.AssetID, amount math.Int) (*sharedtypes.Funds, error)
	// Deposit consumes funds, creating account's holding record if absent.
	Deposit(ctx context.Context, account sdk.AccAddress, funds *sharedtypes.Funds) error
}

// ExchangeEngine is the pricing and liquidity engine settlement delegates to.
// Every bundle passed in is consumed or handed back; every bundle returned
// must be deposited by the caller.
type ExchangeEngine interface {
	CreatePool(ctx context.Context, creator sdk.AccAddress, key sharedtypes.PoolKey) error

	AddLiquidity(
		ctx context.Context, key sharedtypes.PoolKey,
		fundsX *sharedtypes.Funds, minX math.Int,
		fundsY *sharedtypes.Funds, minY math.Int,
	) (remainderX, remainderY, lp *sharedtypes.Funds, err error)

	RemoveLiquidity(
		ctx context.Context, key sharedtypes.PoolKey,
		lp *sharedtypes.Funds, minX, minY math.Int,
	) (outX, outY *sharedtypes.Funds, err error)

	SwapExactInput(ctx context.Context, curve sharedtypes.Curve, in *sharedtypes.Funds, to sharedtypes.AssetID, minOut math.Int) (*sharedtypes.Funds, error)
	SwapExactOutput(ctx context.Context, curve sharedtypes.Curve, inMax *sharedtypes.Funds, to sharedtypes.AssetID, amountOut math.Int) (remainder, out *sharedtypes.Funds, err error)
	SwapUnchecked(ctx context.Context, curve sharedtypes.Curve, in *sharedtypes.Funds, to sharedtypes.AssetID, declaredOut math.Int) (*sharedtypes.Funds, error)
}

// ExchangeQuoter is implemented by engines that can price a trade without executing it.
type ExchangeQuoter interface {
	GetAmountOut(ctx context.Context, curve sharedtypes.Curve, from, to sharedtypes.AssetID, amountIn math.Int) (math.Int, error)
	GetAmountIn(ctx context.Context, curve sharedtypes.Curve, from, to sharedtypes.AssetID, amountOut math.Int) (math.Int, error)
}

// PoolReader is implemented by engines that expose pool state.
type PoolReader interface {
	GetPool(ctx context.Context, key sharedtypes.PoolKey) (exchangetypes.Pool, error)
}
