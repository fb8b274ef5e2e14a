package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/paw-chain/pawswap/testutil/keeper"
	"github.com/paw-chain/pawswap/x/exchange/keeper"
	"github.com/paw-chain/pawswap/x/exchange/types"
	sharedtypes "github.com/paw-chain/pawswap/x/shared/types"
)

const (
	btc  = sharedtypes.AssetID("BTC")
	usdt = sharedtypes.AssetID("USDT")
	usdc = sharedtypes.AssetID("USDC")
)

var btcUsdt = sharedtypes.NewPoolKey(btc, usdt, sharedtypes.CurveUncorrelated)

func funds(t *testing.T, asset sharedtypes.AssetID, amount int64) *sharedtypes.Funds {
	t.Helper()
	f, err := sharedtypes.NewFunds(asset, math.NewInt(amount))
	require.NoError(t, err)
	return f
}

// seededPool registers btcUsdt with 101 BTC / 10100 USDT.
func seededPool(t *testing.T) (keeper.Keeper, sdk.Context) {
	t.Helper()
	k, ctx := keepertest.ExchangeKeeper(t)
	require.NoError(t, k.CreatePool(ctx, keepertest.TestAddr("creator"), btcUsdt))

	remX, remY, lp, err := k.AddLiquidity(ctx, btcUsdt, funds(t, btc, 101), math.ZeroInt(), funds(t, usdt, 10100), math.ZeroInt())
	require.NoError(t, err)
	require.True(t, remX.IsZero())
	require.True(t, remY.IsZero())
	require.Equal(t, math.NewInt(10), lp.Amount())
	return k, ctx
}

func TestCreatePool(t *testing.T) {
	k, ctx := keepertest.ExchangeKeeper(t)
	creator := keepertest.TestAddr("creator")

	require.NoError(t, k.CreatePool(ctx, creator, btcUsdt))
	require.True(t, k.HasPool(ctx, btcUsdt))
	require.Equal(t, uint64(1), k.GetPoolCount(ctx))

	pool, err := k.GetPool(ctx, btcUsdt)
	require.NoError(t, err)
	require.True(t, pool.IsEmpty())
	require.Equal(t, btcUsdt, pool.Key)

	// same pair on the other curve is a different pool
	stable := sharedtypes.NewPoolKey(btc, usdt, sharedtypes.CurveStable)
	require.NoError(t, k.CreatePool(ctx, creator, stable))
	require.Equal(t, uint64(2), k.GetPoolCount(ctx))
}

func TestCreatePool_Rejections(t *testing.T) {
	k, ctx := keepertest.ExchangeKeeper(t)
	creator := keepertest.TestAddr("creator")
	require.NoError(t, k.CreatePool(ctx, creator, btcUsdt))

	tests := []struct {
		name string
		key  sharedtypes.PoolKey
		err  error
	}{
		{"duplicate", btcUsdt, types.ErrPoolAlreadyExists},
		{"unsorted", sharedtypes.NewPoolKey(usdt, btc, sharedtypes.CurveUncorrelated), types.ErrInvalidAssetOrder},
		{"identical", sharedtypes.NewPoolKey(btc, btc, sharedtypes.CurveUncorrelated), sharedtypes.ErrIdenticalAssets},
		{"no curve", sharedtypes.NewPoolKey(btc, usdc, sharedtypes.CurveUnspecified), sharedtypes.ErrInvalidCurve},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, k.CreatePool(ctx, creator, tc.key), tc.err)
		})
	}
	require.Equal(t, uint64(1), k.GetPoolCount(ctx))
}

func TestGetPool_NotFound(t *testing.T) {
	k, ctx := keepertest.ExchangeKeeper(t)
	_, err := k.GetPool(ctx, btcUsdt)
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}

func TestAddLiquidity_InitialTooSmall(t *testing.T) {
	k, ctx := keepertest.ExchangeKeeper(t)
	require.NoError(t, k.CreatePool(ctx, keepertest.TestAddr("creator"), btcUsdt))

	_, _, _, err := k.AddLiquidity(ctx, btcUsdt, funds(t, btc, 10), math.ZeroInt(), funds(t, usdt, 100), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInsufficientInitialLiquidity)
}

func TestAddLiquidity_ReturnsRemainder(t *testing.T) {
	k, ctx := seededPool(t)

	// pool ratio is 1:100, so 5 BTC only pairs with 500 USDT
	remX, remY, lp, err := k.AddLiquidity(ctx, btcUsdt, funds(t, btc, 5), math.ZeroInt(), funds(t, usdt, 800), math.ZeroInt())
	require.NoError(t, err)
	require.True(t, remX.IsZero())
	require.Equal(t, math.NewInt(300), remY.Amount())
	require.Equal(t, math.NewInt(50), lp.Amount())

	pool, err := k.GetPool(ctx, btcUsdt)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(106), pool.ReserveX)
	require.Equal(t, math.NewInt(10600), pool.ReserveY)
	require.Equal(t, math.NewInt(1060), pool.LPSupply)
}

func TestAddLiquidity_Slippage(t *testing.T) {
	k, ctx := seededPool(t)

	_, _, _, err := k.AddLiquidity(ctx, btcUsdt, funds(t, btc, 5), math.ZeroInt(), funds(t, usdt, 800), math.NewInt(600))
	require.ErrorIs(t, err, types.ErrSlippageExceeded)
}

func TestAddLiquidity_AssetMismatch(t *testing.T) {
	k, ctx := seededPool(t)

	_, _, _, err := k.AddLiquidity(ctx, btcUsdt, funds(t, usdt, 5), math.ZeroInt(), funds(t, btc, 5), math.ZeroInt())
	require.ErrorIs(t, err, sharedtypes.ErrAssetMismatch)
}

func TestRemoveLiquidity(t *testing.T) {
	k, ctx := seededPool(t)

	outX, outY, err := k.RemoveLiquidity(ctx, btcUsdt, funds(t, btcUsdt.LPAsset(), 10), math.NewInt(1), math.NewInt(100))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1), outX.Amount())
	require.Equal(t, math.NewInt(100), outY.Amount())

	pool, err := k.GetPool(ctx, btcUsdt)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(types.MinimumLiquidity), pool.LPSupply)

	// the locked minimum can never be burned
	_, _, err = k.RemoveLiquidity(ctx, btcUsdt, funds(t, btcUsdt.LPAsset(), 1), math.ZeroInt(), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)
}

func TestRemoveLiquidity_Slippage(t *testing.T) {
	k, ctx := seededPool(t)

	lp := funds(t, btcUsdt.LPAsset(), 10)
	_, _, err := k.RemoveLiquidity(ctx, btcUsdt, lp, math.NewInt(2), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrSlippageExceeded)
	require.False(t, lp.Consumed())
}

func TestSwapExactInput(t *testing.T) {
	k, ctx := seededPool(t)

	in := funds(t, btc, 10)
	out, err := k.SwapExactInput(ctx, sharedtypes.CurveUncorrelated, in, usdt, math.NewInt(900))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(907), out.Amount())
	require.Equal(t, usdt, out.Asset())
	require.True(t, in.Consumed())

	pool, err := k.GetPool(ctx, btcUsdt)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(111), pool.ReserveX)
	require.Equal(t, math.NewInt(10100-907), pool.ReserveY)
}

func TestSwapExactInput_ReverseDirection(t *testing.T) {
	k, ctx := seededPool(t)

	out, err := k.SwapExactInput(ctx, sharedtypes.CurveUncorrelated, funds(t, usdt, 1000), btc, math.NewInt(1))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(9), out.Amount())
}

func TestSwapExactInput_Slippage(t *testing.T) {
	k, ctx := seededPool(t)

	in := funds(t, btc, 10)
	_, err := k.SwapExactInput(ctx, sharedtypes.CurveUncorrelated, in, usdt, math.NewInt(908))
	require.ErrorIs(t, err, types.ErrSlippageExceeded)
	require.False(t, in.Consumed())
}

func TestSwapExactInput_UnknownPool(t *testing.T) {
	k, ctx := seededPool(t)

	_, err := k.SwapExactInput(ctx, sharedtypes.CurveStable, funds(t, btc, 10), usdt, math.ZeroInt())
	require.ErrorIs(t, err, types.ErrPoolNotFound)

	_, err = k.SwapExactInput(ctx, sharedtypes.CurveUncorrelated, funds(t, btc, 10), btc, math.ZeroInt())
	require.ErrorIs(t, err, sharedtypes.ErrIdenticalAssets)
}

func TestSwapExactOutput(t *testing.T) {
	k, ctx := seededPool(t)

	inMax := funds(t, btc, 10)
	remainder, out, err := k.SwapExactOutput(ctx, sharedtypes.CurveUncorrelated, inMax, usdt, math.NewInt(700))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(700), out.Amount())
	require.Equal(t, math.NewInt(2), remainder.Amount())
	require.Same(t, inMax, remainder)
}

func TestSwapExactOutput_InsufficientInput(t *testing.T) {
	k, ctx := seededPool(t)

	inMax := funds(t, btc, 7)
	_, _, err := k.SwapExactOutput(ctx, sharedtypes.CurveUncorrelated, inMax, usdt, math.NewInt(700))
	require.ErrorIs(t, err, types.ErrInsufficientInputAmount)
	require.Equal(t, math.NewInt(7), inMax.Amount())
}

func TestSwapUnchecked(t *testing.T) {
	k, ctx := seededPool(t)

	out, err := k.SwapUnchecked(ctx, sharedtypes.CurveUncorrelated, funds(t, btc, 10), usdt, math.NewInt(907))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(907), out.Amount())
}

func TestSwapUnchecked_Overdraw(t *testing.T) {
	k, ctx := seededPool(t)

	in := funds(t, btc, 10)
	_, err := k.SwapUnchecked(ctx, sharedtypes.CurveUncorrelated, in, usdt, math.NewInt(1100))
	require.ErrorIs(t, err, types.ErrIncorrectSwapAmount)
	require.False(t, in.Consumed())

	pool, err := k.GetPool(ctx, btcUsdt)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(101), pool.ReserveX)
	require.Equal(t, math.NewInt(10100), pool.ReserveY)
}

func TestQueries(t *testing.T) {
	k, ctx := seededPool(t)

	out, err := k.GetAmountOut(ctx, sharedtypes.CurveUncorrelated, btc, usdt, math.NewInt(10))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(907), out)

	in, err := k.GetAmountIn(ctx, sharedtypes.CurveUncorrelated, btc, usdt, math.NewInt(700))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(8), in)

	rx, ry, err := k.GetReserves(ctx, btcUsdt)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(101), rx)
	require.Equal(t, math.NewInt(10100), ry)
}

func TestStablePoolSwap(t *testing.T) {
	k, ctx := keepertest.ExchangeKeeper(t)
	key := sharedtypes.NewPoolKey(usdc, usdt, sharedtypes.CurveStable)
	require.NoError(t, k.CreatePool(ctx, keepertest.TestAddr("creator"), key))
	_, _, _, err := k.AddLiquidity(ctx, key, funds(t, usdc, 1_000_000), math.ZeroInt(), funds(t, usdt, 1_000_000), math.ZeroInt())
	require.NoError(t, err)

	out, err := k.SwapExactInput(ctx, sharedtypes.CurveStable, funds(t, usdt, 1000), usdc, math.NewInt(990))
	require.NoError(t, err)
	require.True(t, out.Amount().LT(math.NewInt(1000)))
}

func TestParamsAndGenesis(t *testing.T) {
	k, ctx := seededPool(t)

	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	require.Equal(t, types.DefaultParams(), params)

	params.UncorrelatedFeeBps = 50
	require.NoError(t, k.SetParams(ctx, params))
	require.ErrorIs(t, k.SetParams(ctx, types.Params{}), types.ErrInvalidParams)

	exported, err := k.ExportGenesis(ctx)
	require.NoError(t, err)
	require.Equal(t, uint32(50), exported.Params.UncorrelatedFeeBps)
	require.Len(t, exported.Pools, 1)

	k2, ctx2 := keepertest.ExchangeKeeper(t)
	require.NoError(t, k2.InitGenesis(ctx2, *exported))
	require.Equal(t, uint64(1), k2.GetPoolCount(ctx2))

	pool, err := k2.GetPool(ctx2, btcUsdt)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1010), pool.LPSupply)
}
