package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/paw-chain/pawswap/testutil/keeper"
	exchangetypes "github.com/paw-chain/pawswap/x/exchange/types"
	"github.com/paw-chain/pawswap/x/settlement/types"
	sharedtypes "github.com/paw-chain/pawswap/x/shared/types"
)

func TestMsgServer_PoolLifecycle(t *testing.T) {
	f := keepertest.SettlementKeepers(t)
	alice := keepertest.TestAddr("alice")
	f.Fund(t, alice, btc, 201)
	f.Fund(t, alice, usdt, 20200)

	_, err := f.MsgServer.RegisterPool(f.Ctx, &types.MsgRegisterPool{
		Initiator: alice.String(), X: btc, Y: usdt, Curve: sharedtypes.CurveStable,
	})
	require.NoError(t, err)

	added, err := f.MsgServer.RegisterPoolAndAddLiquidity(f.Ctx, &types.MsgRegisterPoolAndAddLiquidity{
		Initiator: alice.String(), X: btc, Y: usdt, Curve: sharedtypes.CurveUncorrelated,
		AmountX: math.NewInt(101), MinX: math.ZeroInt(), AmountY: math.NewInt(10100), MinY: math.ZeroInt(),
	})
	require.NoError(t, err)
	require.Equal(t, btcUsdt, added.Pool)
	require.Equal(t, math.NewInt(10), added.LPMinted)

	more, err := f.MsgServer.AddLiquidity(f.Ctx, &types.MsgAddLiquidity{
		Initiator: alice.String(), X: btc, Y: usdt, Curve: sharedtypes.CurveUncorrelated,
		AmountX: math.NewInt(100), MinX: math.ZeroInt(), AmountY: math.NewInt(10100), MinY: math.ZeroInt(),
	})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1000), more.LPMinted)
	require.Equal(t, math.NewInt(10000), more.AmountY)

	removed, err := f.MsgServer.RemoveLiquidity(f.Ctx, &types.MsgRemoveLiquidity{
		Initiator: alice.String(), X: btc, Y: usdt, Curve: sharedtypes.CurveUncorrelated,
		LPAmount: math.NewInt(1010), MinX: math.ZeroInt(), MinY: math.ZeroInt(),
	})
	require.NoError(t, err)
	// 1010 of 2010 LP against 201/20100
	require.Equal(t, math.NewInt(101), removed.AmountX)
	require.Equal(t, math.NewInt(10100), removed.AmountY)

	// 100 USDT was returned as the add remainder
	require.Equal(t, math.NewInt(101), f.Balance(alice, btc))
	require.Equal(t, math.NewInt(10200), f.Balance(alice, usdt))
	require.True(t, f.Balance(alice, btcUsdt.LPAsset()).IsZero())
}

func TestMsgServer_Swaps(t *testing.T) {
	f := keepertest.SettlementKeepers(t)
	f.SeedPool(t, btcUsdt, 101, 10100)
	alice := keepertest.TestAddr("alice")
	bob := keepertest.TestAddr("bob")
	f.Fund(t, alice, btc, 30)

	res, err := f.MsgServer.Swap(f.Ctx, &types.MsgSwap{
		Initiator: alice.String(), From: btc, To: usdt, Curve: sharedtypes.CurveUncorrelated,
		CoinVal: math.NewInt(10), CoinOutMin: math.NewInt(900), Recipient: bob.String(),
	})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(907), res.AmountOut)
	require.Equal(t, bob, res.Recipient)
	require.Equal(t, math.NewInt(907), f.Balance(bob, usdt))

	res, err = f.MsgServer.SwapInto(f.Ctx, &types.MsgSwapInto{
		Initiator: alice.String(), From: btc, To: usdt, Curve: sharedtypes.CurveUncorrelated,
		CoinValMax: math.NewInt(10), CoinOut: math.NewInt(100),
	})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100), f.Balance(alice, usdt))
	require.Equal(t, math.NewInt(20).Sub(res.AmountIn), f.Balance(alice, btc))

	_, err = f.MsgServer.SwapUnchecked(f.Ctx, &types.MsgSwapUnchecked{
		Initiator: alice.String(), From: btc, To: usdt, Curve: sharedtypes.CurveUncorrelated,
		CoinIn: math.NewInt(1), CoinOut: math.NewInt(5000),
	})
	require.ErrorIs(t, err, exchangetypes.ErrIncorrectSwapAmount)
	require.Contains(t, err.Error(), "SwapUnchecked:")
}

func TestMsgServer_RejectsInvalidMessages(t *testing.T) {
	f := keepertest.SettlementKeepers(t)
	alice := keepertest.TestAddr("alice")

	_, err := f.MsgServer.Swap(f.Ctx, &types.MsgSwap{
		Initiator: alice.String(), From: btc, To: usdt, Curve: sharedtypes.CurveUncorrelated,
		CoinVal: math.NewInt(10), CoinOutMin: math.ZeroInt(), Recipient: "not-an-address",
	})
	require.ErrorIs(t, err, types.ErrInvalidRecipient)
	require.Contains(t, err.Error(), "Swap: validate:")

	_, err = f.MsgServer.RegisterPool(f.Ctx, &types.MsgRegisterPool{
		Initiator: alice.String(), X: usdt, Y: btc, Curve: sharedtypes.CurveUncorrelated,
	})
	require.ErrorIs(t, err, sharedtypes.ErrInvalidAssetOrder)
}
